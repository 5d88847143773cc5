package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/hardlevel/hardlevel-core/internal/adapters/cache"
	"github.com/hardlevel/hardlevel-core/internal/adapters/database"
	"github.com/hardlevel/hardlevel-core/pkg/logger"
)

// Prefix is prepended to every variable, e.g. HARDLEVEL_HTTP_PORT.
const Prefix = "HARDLEVEL"

type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP
	HTTPPort         int           `envconfig:"HTTP_PORT" default:"8080"`
	HTTPReadTimeout  time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"10s"`
	HTTPWriteTimeout time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"90s"`
	CORSOrigin       string        `envconfig:"CORS_ORIGIN" default:"*"`

	// Storage
	DBDriver          string        `envconfig:"DB_DRIVER" default:"sqlite"`
	SQLitePath        string        `envconfig:"SQLITE_PATH" default:"data/hardlevel.db"`
	PostgresDSN       string        `envconfig:"POSTGRES_DSN"`
	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"25"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`

	// Redis is optional; an empty host disables caching and rate limiting.
	RedisHost     string        `envconfig:"REDIS_HOST"`
	RedisPort     string        `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL      time.Duration `envconfig:"CACHE_TTL" default:"30m"`

	RateLimitRequests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"100"`
	RateLimitWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`

	// Auth
	JWTSecret         string        `envconfig:"JWT_SECRET"`
	JWTIssuer         string        `envconfig:"JWT_ISSUER" default:"hardlevel"`
	JWTTTL            time.Duration `envconfig:"JWT_TTL" default:"24h"`
	OwnerPasswordHash string        `envconfig:"OWNER_PASSWORD_HASH"`

	// AI provider, any OpenAI-compatible endpoint.
	AIBaseURL    string        `envconfig:"AI_BASE_URL" default:"https://api.openai.com/v1"`
	AIAPIKey     string        `envconfig:"AI_API_KEY"`
	AIImageModel string        `envconfig:"AI_IMAGE_MODEL" default:"dall-e-3"`
	AIChatModel  string        `envconfig:"AI_CHAT_MODEL" default:"gpt-4o-mini"`
	AITimeout    time.Duration `envconfig:"AI_TIMEOUT" default:"60s"`

	// Logging
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`
	LogFile     string `envconfig:"LOG_FILE"`
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case database.DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
		}
	case database.DriverPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}

	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	if c.OwnerPasswordHash == "" {
		return fmt.Errorf("OWNER_PASSWORD_HASH is required (generate one with `hardlevel hash-password`)")
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT: %d", c.HTTPPort)
	}
	if c.RateLimitRequests <= 0 || c.RateLimitWindow <= 0 {
		return fmt.Errorf("rate limit requests and window must be positive")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// HTTPAddr returns the listen address for the API server.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func (c *Config) Redis() cache.Options {
	return cache.Options{
		Host:     c.RedisHost,
		Port:     c.RedisPort,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	}
}

func (c *Config) Pool() database.PoolConfig {
	return database.PoolConfig{
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,
	}
}

func (c *Config) Logger() logger.Config {
	return logger.Config{
		Level:    c.LogLevel,
		Encoding: c.LogEncoding,
		FilePath: c.LogFile,
	}
}
