package env

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from a .env file without overriding ones that
// are already set. ENV_PATH takes precedence over defaultPath. A missing
// file is only an error in local mode (env "local" or empty).
func LoadDotEnv(env string, defaultPath string) error {
	envPath := Get("ENV_PATH", defaultPath)

	err := godotenv.Load(envPath)
	if err == nil {
		slog.Debug("Loaded .env", "path", envPath)
		return nil
	}
	if env == "local" || env == "" {
		return err
	}

	slog.Debug("Skipping .env ...", "env", env, "path", envPath)
	return nil
}

// Get returns the value of key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetBool parses key with strconv.ParseBool. Unset or malformed values
// yield fallback.
func GetBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("Ignoring malformed boolean", "key", key, "value", v)
		return fallback
	}
	return b
}
