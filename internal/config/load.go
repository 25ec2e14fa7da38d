package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default values applied when the environment does not override them.
const (
	defaultPort                 = 8080
	defaultLogLevel             = "info"
	defaultEnv                  = EnvProduction
	defaultAccessTokenLifetime  = 3600    // 1 hour
	defaultRefreshTokenLifetime = 2592000 // 30 days
)

// Load reads configuration from an optional .env file and from environment
// variables with the ARTICLE_ prefix (e.g. ARTICLE_DATABASE_URL,
// ARTICLE_AUTH_JWT_SECRET). Environment variables take precedence.
// Returns a validated Config or an error.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment is authoritative anyway.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.log_level", defaultLogLevel)
	v.SetDefault("server.env", defaultEnv)
	v.SetDefault("auth.access_token_lifetime_seconds", defaultAccessTokenLifetime)
	v.SetDefault("auth.refresh_token_lifetime_seconds", defaultRefreshTokenLifetime)
	v.SetDefault("auth.bcrypt_cost", 0) // 0 means the bcrypt library default

	v.SetEnvPrefix("ARTICLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about, so bind the
	// ones without defaults explicitly.
	for _, key := range []string{"database.url", "auth.jwt_secret"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
