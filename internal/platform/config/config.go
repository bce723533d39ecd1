package config

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// External collaborator endpoints
	TransactionStoreURL string `validate:"required,url"`
	CompanyProfileURL   string `validate:"required,url"`
	ClassifierURL       string `validate:"omitempty,url"`

	// UpstreamTimeout bounds every call to a collaborator.
	UpstreamTimeout time.Duration

	// CORSAllowedOrigins is the comma-separated origin allowlist.
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("TRANSACTION_STORE_URL", "http://localhost:8081")
	viper.SetDefault("COMPANY_PROFILE_URL", "http://localhost:8082")
	viper.SetDefault("CLASSIFIER_URL", "")
	viper.SetDefault("UPSTREAM_TIMEOUT", "10s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:                viper.GetString("PORT"),
		IsProduction:        viper.GetBool("IS_PRODUCTION"),
		TransactionStoreURL: viper.GetString("TRANSACTION_STORE_URL"),
		CompanyProfileURL:   viper.GetString("COMPANY_PROFILE_URL"),
		ClassifierURL:       viper.GetString("CLASSIFIER_URL"),
	}

	if cfg.ClassifierURL == "" {
		log.Println("Warning: CLASSIFIER_URL not set. Uncategorized transactions will be excluded with a warning.")
	}

	timeoutStr := viper.GetString("UPSTREAM_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for UPSTREAM_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
		}
	}
	cfg.UpstreamTimeout = timeout

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
