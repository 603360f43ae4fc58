package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvDebug      = "debug"
	EnvProduction = "production"
)

type EnvConfig struct {
	APP_ENV            string
	LAYOUT_CONFIG_PATH string
	LOG_FILE_PATH      string
}

var DefaultEnvConfig EnvConfig

// LoadEnvConfig reads process configuration from a .env file (when present)
// and the environment. APP_ENV selects which sheet-identifier aliases apply.
func LoadEnvConfig() error {
	// A missing .env file is fine; real environments set variables directly.
	_ = godotenv.Load()

	DefaultEnvConfig = EnvConfig{
		APP_ENV:            getEnv("APP_ENV", EnvDebug),
		LAYOUT_CONFIG_PATH: getEnv("LAYOUT_CONFIG_PATH", "layout.yaml"),
		LOG_FILE_PATH:      getEnv("LOG_FILE_PATH", ""),
	}

	if DefaultEnvConfig.APP_ENV != EnvDebug && DefaultEnvConfig.APP_ENV != EnvProduction {
		return fmt.Errorf("unknown APP_ENV %q (want %q or %q)",
			DefaultEnvConfig.APP_ENV, EnvDebug, EnvProduction)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
