package env

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file without
// overriding variables that are already set. ENV_PATH, when set, replaces
// defaultPath and must point at an existing file; a missing default file is
// skipped.
func LoadDotEnv(defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	explicit := envPath != ""
	if !explicit {
		envPath = defaultPath
	}
	if envPath == "" {
		return nil
	}

	err := godotenv.Load(envPath)
	if err == nil {
		slog.Debug("Loaded .env", "path", envPath)
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		slog.Debug("Skipping .env ...", "path", envPath)
		return nil
	}
	return err
}
