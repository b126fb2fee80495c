package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with environment variables, loading a .env file
// first if one exists in the working directory.
//
// Recognized variables:
//
//	PATIENTS_API_URL       backend base URL
//	PATIENTS_API_TIMEOUT   request timeout (seconds or a Go duration)
//	PATIENTS_SESSION_STORE session store DSN
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.ServerBaseURL = getEnv("PATIENTS_API_URL", cfg.ServerBaseURL)
	cfg.RequestTimeout = getDuration("PATIENTS_API_TIMEOUT", cfg.RequestTimeout)
	cfg.SessionStorePath = getEnv("PATIENTS_SESSION_STORE", cfg.SessionStorePath)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Second
		}
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		fmt.Fprintf(os.Stderr, "invalid duration for %s=%q, using default %s\n", key, v, def)
	}
	return def
}
