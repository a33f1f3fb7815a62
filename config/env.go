package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	_ = godotenv.Load()
	// If .env is missing, ignore error (env vars can be set by other means)
	log.Println("Environment variables loaded (if .env present)")
}

// GetEnv returns the value of key, or def when unset or blank.
func GetEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func GetEnvInt(key string, def int) int {
	if v, err := strconv.Atoi(GetEnv(key, "")); err == nil {
		return v
	}
	return def
}

func GetEnvBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(GetEnv(key, "")); err == nil {
		return v
	}
	return def
}

// GetEnvDuration parses Go durations ("1500ms", "30m").
func GetEnvDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(GetEnv(key, "")); err == nil {
		return v
	}
	return def
}
