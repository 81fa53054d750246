package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName      string
	AppEnv       string
	AppPort      string
	DatabaseURL  string
	SQLitePath   string
	RedisURL     string
	JWTSecret    string
	JWTTTL       time.Duration
	AuthRequired bool
	MetaCacheTTL time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and an
// optional .env file. DatabaseURL selects Postgres; when empty the service
// falls back to the SQLite file, which is how the original deployment ran.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("GOMIS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "GOMIS API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("sqlite.path", "gomis.db")
	v.SetDefault("jwt.ttl", "24h")
	v.SetDefault("auth.required", false)
	v.SetDefault("meta.cache_ttl", "5m")

	jwtTTL, err := time.ParseDuration(v.GetString("jwt.ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid jwt ttl: %w", err)
	}

	metaTTL, err := time.ParseDuration(v.GetString("meta.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid meta cache ttl: %w", err)
	}

	cfg := Config{
		AppName:      v.GetString("app.name"),
		AppEnv:       v.GetString("app.env"),
		AppPort:      v.GetString("app.port"),
		DatabaseURL:  v.GetString("database.url"),
		SQLitePath:   v.GetString("sqlite.path"),
		RedisURL:     v.GetString("redis.url"),
		JWTSecret:    v.GetString("jwt.secret"),
		JWTTTL:       jwtTTL,
		AuthRequired: v.GetBool("auth.required"),
		MetaCacheTTL: metaTTL,
	}

	if cfg.AuthRequired && cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided when auth is required")
	}

	return cfg, nil
}
