package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Identity provider names accepted in IDENTITY_PROVIDER.
const (
	ProviderLocal  = "local"
	ProviderGoTrue = "gotrue"
)

// Config holds everything main needs to wire the API.
type Config struct {
	Port    string
	GinMode string

	// DatabaseDSN selects the MySQL store when set; the in-memory store is used otherwise.
	DatabaseDSN string

	JWTSecret string
	JWTTTL    time.Duration

	IdentityProvider string
	SupabaseURL      string
	SupabaseAnonKey  string
	IdentityTimeout  time.Duration

	CORSAllowedOrigins []string
}

// Load reads the .env file (if any) and the process environment.
func Load() (*Config, error) {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, applying defaults.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Port:             get("PORT", "8080"),
		GinMode:          get("GIN_MODE", "debug"),
		DatabaseDSN:      get("DB_DSN_PRIMARY", ""),
		JWTSecret:        get("JWT_SECRET", ""),
		IdentityProvider: strings.ToLower(get("IDENTITY_PROVIDER", ProviderLocal)),
		SupabaseURL:      strings.TrimRight(get("SUPABASE_URL", ""), "/"),
		SupabaseAnonKey:  get("SUPABASE_ANON_KEY", ""),
	}

	var err error
	if cfg.JWTTTL, err = time.ParseDuration(get("JWT_TTL", "72h")); err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	if cfg.IdentityTimeout, err = time.ParseDuration(get("IDENTITY_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("invalid IDENTITY_TIMEOUT: %w", err)
	}

	for _, origin := range strings.Split(get("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.IdentityProvider {
	case ProviderLocal:
		if c.JWTSecret == "" {
			return errors.New("JWT_SECRET is required for the local identity provider")
		}
	case ProviderGoTrue:
		if c.SupabaseURL == "" || c.SupabaseAnonKey == "" {
			return errors.New("SUPABASE_URL and SUPABASE_ANON_KEY are required for the gotrue identity provider")
		}
	default:
		return fmt.Errorf("unknown IDENTITY_PROVIDER %q", c.IdentityProvider)
	}
	return nil
}

// AllowAllOrigins reports whether CORS should accept any origin. An empty
// list means any origin too.
func (c *Config) AllowAllOrigins() bool {
	if len(c.CORSAllowedOrigins) == 0 {
		return true
	}
	return len(c.CORSAllowedOrigins) == 1 && c.CORSAllowedOrigins[0] == "*"
}
