package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
)

// PreferenceBackend selects where visitor preferences are persisted.
type PreferenceBackend string

const (
	PreferenceBackendMemory PreferenceBackend = "memory"
	PreferenceBackendRedis  PreferenceBackend = "redis"
	PreferenceBackendMongo  PreferenceBackend = "mongo"
)

// Config holds application configuration values.
type Config struct {
	Port       string `env:"PORT" envDefault:"8080"`
	AppBaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`
	Debug      bool   `env:"DEBUG" envDefault:"false"`

	// MongoURI enables the MongoDB content repositories when set.
	MongoURI    string `env:"MONGODB_URI"`
	MongoDBName string `env:"MONGODB_DB_NAME" envDefault:"prompaty"`
	// RedisURL enables the content cache and the redis preference backend.
	RedisURL        string        `env:"REDIS_URL"`
	ContentCacheTTL time.Duration `env:"CONTENT_CACHE_TTL" envDefault:"5m"`

	PreferenceBackend PreferenceBackend `env:"PREFERENCE_BACKEND" envDefault:"memory"`
	// TrackerTTL is how long an idle visitor session keeps its seeded counters.
	TrackerTTL time.Duration `env:"TRACKER_TTL" envDefault:"30m"`

	AdminEmail        string        `env:"ADMIN_EMAIL" envDefault:"admin@prompaty.local"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	AdminTokenTTL     time.Duration `env:"ADMIN_TOKEN_TTL" envDefault:"12h"`
	JWTSecret         string        `env:"JWT_SECRET"`

	AIServiceAPIKey string `env:"AI_SERVICE_API_KEY"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	// RateLimit is the number of requests per second allowed per client IP.
	RateLimit       float64       `env:"RATE_LIMIT" envDefault:"20"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.PreferenceBackend {
	case PreferenceBackendMemory:
	case PreferenceBackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("PREFERENCE_BACKEND=redis requires REDIS_URL")
		}
	case PreferenceBackendMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("PREFERENCE_BACKEND=mongo requires MONGODB_URI")
		}
	default:
		return fmt.Errorf("unknown PREFERENCE_BACKEND %q", c.PreferenceBackend)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT must be positive")
	}
	return nil
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetSessionTTL returns how long idle visitor trackers are kept.
func (c *Config) GetSessionTTL() time.Duration {
	return c.TrackerTTL
}

// GetAdminTokenExpiry returns the lifetime of admin access tokens.
func (c *Config) GetAdminTokenExpiry() time.Duration {
	return c.AdminTokenTTL
}

func (c *Config) GetAIServiceAPIKey() string {
	return c.AIServiceAPIKey
}
