package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Store    StoreConfig    `yaml:"store"`
	PageHost PageHostConfig `yaml:"page_host"`
	Auth     AuthConfig     `yaml:"auth"`
	Sync     SyncConfig     `yaml:"sync"`
	Cache    CacheConfig    `yaml:"cache"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"120"`
}

// StoreConfig holds connection settings for the REST table store.
type StoreConfig struct {
	BaseURL string        `yaml:"base_url" env:"STORE_BASE_URL" env-required:"true"`
	APIKey  string        `yaml:"api_key"  env:"STORE_API_KEY"  env-required:"true"`
	Timeout time.Duration `yaml:"timeout"  env:"STORE_TIMEOUT"  env-default:"15s"`
}

// PageHostConfig holds connection settings for the external content host.
type PageHostConfig struct {
	BaseURL string        `yaml:"base_url" env:"PAGE_HOST_BASE_URL" env-required:"true"`
	Token   string        `yaml:"token"    env:"PAGE_HOST_TOKEN"`
	Timeout time.Duration `yaml:"timeout"  env:"PAGE_HOST_TIMEOUT"  env-default:"10s"`
}

// AuthConfig holds verification settings for platform-issued actor tokens.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"platform"`
}

// SyncConfig holds reconciliation settings.
type SyncConfig struct {
	AuditRetention int `yaml:"audit_retention" env:"SYNC_AUDIT_RETENTION" env-default:"50"`
}

// CacheConfig holds the profile snapshot cache settings.
type CacheConfig struct {
	ProfileTTL      time.Duration `yaml:"profile_ttl"      env:"CACHE_PROFILE_TTL"      env-default:"5m"`
	ProfileCapacity int           `yaml:"profile_capacity" env:"CACHE_PROFILE_CAPACITY" env-default:"1024"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
