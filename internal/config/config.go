package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the server configuration read from the environment and .env files.
type Config struct {
	Port int

	// DatabaseURL selects Postgres. When empty the SQLite file at SQLitePath is used.
	DatabaseURL  string
	SQLitePath   string
	DBAutoCreate bool
	AutoMigrate  bool

	AccessTokenSecret string
	AccessTokenTTL    time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CORSAllowedOrigins []string

	LogLevel  string
	LogFormat string
	GinMode   string
}

// Load reads configuration with this precedence: environment, .env.local, .env, defaults.
func Load() (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Port:               v.GetInt("PORT"),
		DatabaseURL:        strings.TrimSpace(v.GetString("DATABASE_URL")),
		SQLitePath:         v.GetString("SQLITE_PATH"),
		DBAutoCreate:       v.GetBool("DB_AUTO_CREATE"),
		AutoMigrate:        v.GetBool("AUTO_MIGRATE"),
		AccessTokenSecret:  v.GetString("ACCESS_TOKEN_SECRET"),
		AccessTokenTTL:     v.GetDuration("ACCESS_TOKEN_TTL"),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		RedisDB:            v.GetInt("REDIS_DB"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		LogLevel:           strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:          strings.ToLower(v.GetString("LOG_FORMAT")),
		GinMode:            v.GetString("GIN_MODE"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 3000)
	v.SetDefault("SQLITE_PATH", filepath.Join(os.TempDir(), "starwars.db"))
	v.SetDefault("DB_AUTO_CREATE", false)
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("ACCESS_TOKEN_TTL", 24*time.Hour)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("GIN_MODE", "release")
}

// loadEnvFiles loads .env.local before .env; godotenv never overrides a variable
// that is already set, so the first file wins.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// UsesPostgres reports whether DatabaseURL points at Postgres.
func (c *Config) UsesPostgres() bool {
	return c.DatabaseURL != ""
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate checks the settings needed to serve HTTP.
func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if c.AccessTokenSecret == "" {
		errs = append(errs, errors.New("ACCESS_TOKEN_SECRET environment variable is required"))
	}
	if c.AccessTokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("ACCESS_TOKEN_TTL must be positive, got %s", c.AccessTokenTTL))
	}
	if c.UsesPostgres() && !strings.HasPrefix(c.DatabaseURL, "postgres://") && !strings.HasPrefix(c.DatabaseURL, "postgresql://") {
		errs = append(errs, errors.New("DATABASE_URL must be a postgres:// or postgresql:// URL"))
	}
	if !c.UsesPostgres() && c.SQLitePath == "" {
		errs = append(errs, errors.New("SQLITE_PATH is required when DATABASE_URL is not set"))
	}
	return errors.Join(errs...)
}
