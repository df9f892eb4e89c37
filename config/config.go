package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	MongoURI          string
	MongoDB           string
	MongoTransactions bool
	JWTSecret         string
	// Store is "mongo" or "memory".
	Store          string
	TiersFile      string
	SMTP           SMTP
	LogLevel       string
	LogFormat      string
	CORSOrigins    string
	RequestTimeout time.Duration
}

type SMTP struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

// Enabled reports whether mail should go out over SMTP.
func (s SMTP) Enabled() bool { return s.Host != "" }

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// LoadConfig reads .env when present, then the environment.
func LoadConfig() (Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "5000"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "contentflow"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		Store:       getEnv("STORE", "mongo"),
		TiersFile:   getEnv("TIERS_FILE", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		SMTP: SMTP{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnv("SMTP_PORT", "587"),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
		},
	}

	var err error
	if cfg.MongoTransactions, err = strconv.ParseBool(getEnv("MONGO_TRANSACTIONS", "false")); err != nil {
		return Config{}, fmt.Errorf("MONGO_TRANSACTIONS: %w", err)
	}
	if cfg.RequestTimeout, err = time.ParseDuration(getEnv("REQUEST_TIMEOUT", "15s")); err != nil {
		return Config{}, fmt.Errorf("REQUEST_TIMEOUT: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Store {
	case "mongo":
		if c.MongoURI == "" || c.MongoDB == "" {
			return errors.New("MONGO_URI and MONGO_DB are required for the mongo store")
		}
	case "memory":
	default:
		return fmt.Errorf("STORE must be mongo or memory, got %q", c.Store)
	}
	if c.RequestTimeout < 0 {
		return errors.New("REQUEST_TIMEOUT must not be negative")
	}
	return nil
}
