package env

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from .env files without
// overriding variables already set. ENV_PATH, a comma separated list,
// replaces defaultPaths. A missing file is an error only when env is
// "local" or unset.
func LoadDotEnv(env string, defaultPaths ...string) error {
	paths := append([]string(nil), defaultPaths...)
	if envPath := os.Getenv("ENV_PATH"); envPath != "" {
		paths = strings.Split(envPath, ",")
	} else {
		slog.Info("ENV_PATH is not set, using default paths", "defaultPaths", defaultPaths)
	}

	for i, p := range paths {
		paths[i] = filepath.Clean(strings.TrimSpace(p))
	}

	err := godotenv.Load(paths...)
	if err != nil {
		if env == "local" || env == "" {
			slog.Error("Failed to load environment variables in local mode", "error", err)
			return err
		}
		slog.Debug("Skipping .env ...", "env", env)
	}

	return nil
}
