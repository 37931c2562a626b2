package config

import (
	"log/slog"

	"github.com/joho/godotenv"
)

// envFiles are probed in order; the first one that loads wins. Values
// already present in the environment are never overwritten by godotenv.
var envFiles = []string{".env", ".env.local"}

// loadDotEnv loads environment variables from a local .env file so that
// ${VAR} references in the config file resolve. A missing .env is normal.
func loadDotEnv() {
	for _, path := range envFiles {
		if err := godotenv.Load(path); err == nil {
			slog.Debug("Loaded environment variables", "file", path)
			return
		}
	}
}
