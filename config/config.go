package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DefaultJWTSecret is only acceptable outside production; ValidateConfig rejects it there.
const DefaultJWTSecret = "gramin-dev-secret"

// Config holds all configuration for the application
type Config struct {
	Env Environment `env:"-"`

	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Features  FeatureConfig
	RateLimit RateLimitConfig

	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	// MobileManifestPath points at the YAML packaging manifest served to the webview.
	MobileManifestPath string `env:"MOBILE_MANIFEST_PATH" env-default:"mobile.yaml"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host            string        `env:"SERVER_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"SERVER_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:8080,http://localhost:5173,capacitor://localhost,https://localhost"`
}

// DatabaseConfig holds PostgreSQL settings
type DatabaseConfig struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER" env-default:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" env-default:"gramin_samriddhi"`
	SSLMode  string `env:"DB_SSL_MODE" env-default:"disable"`

	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" env-default:"25"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"5m"`
}

// RedisConfig holds redis settings. Redis is optional; an empty URL and host disables it.
type RedisConfig struct {
	URL      string `env:"REDIS_URL"`
	Host     string `env:"REDIS_HOST"`
	Port     string `env:"REDIS_PORT" env-default:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

// Enabled reports whether a redis endpoint was configured
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Host != ""
}

// AuthConfig holds token and session settings
type AuthConfig struct {
	JWTSecret     string        `env:"JWT_SECRET"`
	TokenTTL      time.Duration `env:"JWT_TTL" env-default:"24h"`
	SessionSecret string        `env:"SESSION_SECRET"`
	SecureCookies bool          `env:"SESSION_SECURE_COOKIES" env-default:"false"`
}

// FeatureConfig holds the knobs of the mocked analysis screens
type FeatureConfig struct {
	DetectionDelay      time.Duration `env:"DETECTION_DELAY" env-default:"3s"`
	RecommendationDelay time.Duration `env:"RECOMMENDATION_DELAY" env-default:"2s"`
	MaxImageBytes       int64         `env:"MAX_IMAGE_BYTES" env-default:"10485760"`
}

// RateLimitConfig limits the simulated-analysis endpoints per user
type RateLimitConfig struct {
	Window         time.Duration `env:"RATE_LIMIT_WINDOW" env-default:"1h"`
	AnalysisLimit  int           `env:"RATE_LIMIT_ANALYSIS" env-default:"30"`
	RecommendLimit int           `env:"RATE_LIMIT_RECOMMEND" env-default:"30"`
}

// LoadConfig builds the configuration from .env, the process environment and secret files
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	// A missing .env is normal in containers.
	if env != Production {
		_ = godotenv.Load()
	}

	cfg := &Config{Env: env}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	loadSecrets(cfg)

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadSecrets fills sensitive values from Docker secrets when the environment left them empty
func loadSecrets(cfg *Config) {
	if cfg.Database.Password == "" {
		cfg.Database.Password = readSecret("db_password")
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = readSecret("jwt_secret")
	}
	if cfg.Auth.SessionSecret == "" {
		cfg.Auth.SessionSecret = readSecret("session_secret")
	}
	if cfg.Redis.Password == "" {
		cfg.Redis.Password = readSecret("redis_password")
	}

	if cfg.Env != Production && cfg.Env != CI {
		if cfg.Auth.JWTSecret == "" {
			cfg.Auth.JWTSecret = DefaultJWTSecret
		}
		if cfg.Auth.SessionSecret == "" {
			cfg.Auth.SessionSecret = cfg.Auth.JWTSecret
		}
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	data, err := os.ReadFile(filepath.Join(secretsDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// DSN returns the PostgreSQL connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// URL returns the connection string in URL form, as the migrate CLI expects
func (d DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

// Addr returns the HTTP listen address
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}
