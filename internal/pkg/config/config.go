package config

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	EventWorkers int `env:"EVENT_WORKERS, default=8"`

	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	CookieName string        `env:"SESSION_COOKIE,   default=webEcotoken"`
	TTL        time.Duration `env:"SESSION_TTL,      default=360h"`
	Secure     bool          `env:"SESSION_SECURE,   default=true"`
	SameSite   string        `env:"SESSION_SAMESITE, default=none"`
}

type MongoConfig struct {
	URI         string `env:"MONGO_URI,       default=mongodb://localhost:27017"`
	Database    string `env:"MONGO_DB,        default=webeco"`
	MaxPoolSize uint64 `env:"MONGO_MAX_POOL,  default=0"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	DB       int    `env:"REDIS_DB,   default=0"`
	PoolSize int    `env:"REDIS_POOL, default=0"`
}

// SameSiteMode maps the configured SameSite policy string to the
// net/http constant. Unrecognised values fall back to None, matching
// the cross-site storefront default.
func (s SessionConfig) SameSiteMode() http.SameSite {
	switch strings.ToLower(strings.TrimSpace(s.SameSite)) {
	case "lax":
		return http.SameSiteLaxMode
	case "strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteNoneMode
	}
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
