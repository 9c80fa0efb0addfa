package config

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("CI", "")
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "farmer")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "gramin")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("DETECTION_DELAY", "150ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "capacitor://localhost,http://localhost:3000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Env)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "5433", cfg.Database.Port)
	assert.Equal(t, "farmer", cfg.Database.User)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "gramin", cfg.Database.Name)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "test-secret", cfg.Auth.SessionSecret)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 150*time.Millisecond, cfg.Features.DetectionDelay)
	assert.Equal(t, []string{"capacitor://localhost", "http://localhost:3000"}, cfg.Server.AllowedOrigins)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "JWT_SECRET", "SESSION_SECRET", "REDIS_URL", "REDIS_HOST", "DETECTION_DELAY", "RECOMMENDATION_DELAY", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("APP_ENV", "development")
	t.Setenv("CI", "")
	t.Setenv("SECRETS_DIR", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "gramin_samriddhi", cfg.Database.Name)
	assert.Equal(t, DefaultJWTSecret, cfg.Auth.JWTSecret)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 3*time.Second, cfg.Features.DetectionDelay)
	assert.Equal(t, 2*time.Second, cfg.Features.RecommendationDelay)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadConfigReadsSecrets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db_password"), []byte("from-file\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("jwt-from-file"), 0o600))

	t.Setenv("APP_ENV", "development")
	t.Setenv("CI", "")
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Database.Password)
	assert.Equal(t, "jwt-from-file", cfg.Auth.JWTSecret)
}

func TestValidateConfigProduction(t *testing.T) {
	cfg := &Config{Env: Production}
	cfg.Server.Port = "8080"
	cfg.Database.Host = "db"
	cfg.Database.Name = "gramin"
	cfg.Features.MaxImageBytes = 1024
	cfg.Auth.TokenTTL = time.Hour
	cfg.Auth.JWTSecret = DefaultJWTSecret

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "SESSION_SECRET")
	assert.Contains(t, err.Error(), "SESSION_SECURE_COOKIES")
	assert.Contains(t, err.Error(), "CORS_ALLOWED_ORIGINS")

	cfg.Server.AllowedOrigins = []string{"capacitor://localhost"}
	cfg.Database.Password = "pw"
	cfg.Auth.JWTSecret = "prod-secret"
	cfg.Auth.SessionSecret = "prod-session"
	cfg.Auth.SecureCookies = true
	assert.NoError(t, ValidateConfig(cfg))
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "true")
	t.Setenv("APP_ENV", "production")
	assert.Equal(t, CI, GetEnvironment())

	t.Setenv("CI", "")
	assert.Equal(t, Production, GetEnvironment())

	t.Setenv("APP_ENV", "")
	assert.Equal(t, Development, GetEnvironment())
}

func TestLoadMobileManifest(t *testing.T) {
	manifest, err := LoadMobileManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultMobileManifest(), manifest)

	path := filepath.Join(t.TempDir(), "mobile.yaml")
	content := "app_id: app.example.farmer\nserver:\n  url: https://dev.example.com\nsplash_screen:\n  background_color: '#000000'\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	manifest, err = LoadMobileManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "app.example.farmer", manifest.AppID)
	assert.Equal(t, "https://dev.example.com", manifest.Server.URL)
	assert.Equal(t, "#000000", manifest.Splash.BackgroundColor)
	// untouched fields keep their defaults
	assert.Equal(t, "gramin-samriddhi", manifest.AppName)
	assert.Equal(t, 3000, manifest.Splash.LaunchShowDuration)
}

func TestLoadMobileManifestInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mobile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app_id: [unterminated"), 0o600))

	_, err := LoadMobileManifest(path)
	assert.Error(t, err)
}

func TestDatabaseURLEscapesCredentials(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5432",
		User:     "gramin",
		Password: "p@ss/w#rd?x",
		Name:     "gramin",
		SSLMode:  "disable",
	}

	u, err := url.Parse(d.URL())
	require.NoError(t, err)
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db.internal:5432", u.Host)
	assert.Equal(t, "gramin", u.User.Username())
	password, ok := u.User.Password()
	require.True(t, ok)
	assert.Equal(t, "p@ss/w#rd?x", password)
	assert.Equal(t, "/gramin", u.Path)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
}
