package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	likeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prompaty_like_toggles_total",
		Help: "Prompt like toggles by resulting state.",
	}, []string{"state"})

	reactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prompaty_post_reactions_total",
		Help: "Post reactions by branch (add, switch, remove).",
	}, []string{"branch"})

	preferenceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prompaty_preference_failures_total",
		Help: "Failed reads and writes against the visitor preference store.",
	}, []string{"op"})

	contentCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prompaty_content_cache_total",
		Help: "Content cache lookups by result.",
	}, []string{"result"})

	cacheLookupSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "prompaty_content_cache_lookup_seconds",
		Help:    "Latency of content cache lookups.",
		Buckets: prometheus.DefBuckets,
	})
)

func IncLikeToggle(liked bool) {
	if liked {
		likeToggles.WithLabelValues("liked").Inc()
		return
	}
	likeToggles.WithLabelValues("unliked").Inc()
}

func IncReaction(branch string) { reactions.WithLabelValues(branch).Inc() }

func IncPreferenceFailure(op string) { preferenceFailures.WithLabelValues(op).Inc() }

func IncCacheHit()  { contentCache.WithLabelValues("hit").Inc() }
func IncCacheMiss() { contentCache.WithLabelValues("miss").Inc() }

func ObserveCacheLookup(seconds float64) { cacheLookupSeconds.Observe(seconds) }

var httpRequestSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "prompaty_http_request_seconds",
	Help:    "HTTP request latency by method, route and status.",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "route", "status"})

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, route string, status int, seconds float64) {
	httpRequestSeconds.WithLabelValues(method, route, strconv.Itoa(status)).Observe(seconds)
}
