package usecase

import (
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
)

const defaultSessionTTL = 30 * time.Minute

// VisitorSession holds the preference stores and card trackers of one
// visitor. All access goes through its mutex, so a visitor's toggles are
// applied one at a time even when requests overlap.
type VisitorSession struct {
	mu            sync.Mutex
	likes         *LikeStore
	reactions     *ReactionStore
	likeCards     map[string]*PromptLikeTracker
	reactionCards map[string]*PostReactionTracker
}

func newVisitorSession(kv contract.IKeyValueStore, logger usecasecontract.IAppLogger) *VisitorSession {
	return &VisitorSession{
		likes:         NewLikeStore(kv, logger),
		reactions:     NewReactionStore(kv, logger),
		likeCards:     make(map[string]*PromptLikeTracker),
		reactionCards: make(map[string]*PostReactionTracker),
	}
}

func (s *VisitorSession) likeCard(promptID string) *PromptLikeTracker {
	t, ok := s.likeCards[promptID]
	if !ok {
		t = NewPromptLikeTracker(s.likes)
		s.likeCards[promptID] = t
	}
	return t
}

func (s *VisitorSession) reactionCard(postID string) *PostReactionTracker {
	t, ok := s.reactionCards[postID]
	if !ok {
		t = NewPostReactionTracker(s.reactions)
		s.reactionCards[postID] = t
	}
	return t
}

// SessionRegistry keeps visitor sessions alive between requests. A session
// that expires is the server-side equivalent of a page reload: persisted
// preferences survive, card counters re-seed from the baseline.
type SessionRegistry struct {
	scoper   contract.IPreferenceScoper
	logger   usecasecontract.IAppLogger
	sessions *ttlcache.Cache[string, *VisitorSession]

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewSessionRegistry(scoper contract.IPreferenceScoper, logger usecasecontract.IAppLogger, ttl time.Duration) *SessionRegistry {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	sessions := ttlcache.New[string, *VisitorSession](
		ttlcache.WithTTL[string, *VisitorSession](ttl),
	)
	r := &SessionRegistry{scoper: scoper, logger: logger, sessions: sessions, done: make(chan struct{})}
	r.wg.Add(1)
	go r.sweep(sweepInterval(ttl))
	return r
}

func sweepInterval(ttl time.Duration) time.Duration {
	return min(ttl, time.Minute)
}

// sweep evicts expired sessions until Stop is called. Get already hides
// expired entries; the sweep only reclaims their memory.
func (r *SessionRegistry) sweep(interval time.Duration) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.sessions.DeleteExpired()
		case <-r.done:
			return
		}
	}
}

// Session returns the live session for visitorID, creating it on first use.
func (r *SessionRegistry) Session(visitorID string) *VisitorSession {
	if item := r.sessions.Get(visitorID); item != nil {
		return item.Value()
	}
	item, _ := r.sessions.GetOrSet(visitorID, newVisitorSession(r.scoper.ForVisitor(visitorID), r.logger))
	return item.Value()
}

// Forget drops a visitor's session so the next request starts fresh.
func (r *SessionRegistry) Forget(visitorID string) {
	r.sessions.Delete(visitorID)
}

// Stop ends the sweep loop and waits for it to exit. It is safe to call more than once.
func (r *SessionRegistry) Stop() {
	r.stopOnce.Do(func() { close(r.done) })
	r.wg.Wait()
}
