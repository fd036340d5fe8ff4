package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"

	foundation "git.home.luguber.info/inful/ghsummary/internal/foundation/errors"
)

// envFiles are tried in order; existing process variables always win.
var envFiles = []string{".env", ".env.local"}

// LoadEnvFiles loads every present .env file and returns the ones it read.
// Missing files are skipped; unreadable or malformed files are an error.
func LoadEnvFiles() ([]string, error) {
	var loaded []string
	for _, name := range envFiles {
		if _, err := os.Stat(name); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return loaded, foundation.WrapError(err, foundation.CategoryConfig, "failed to load environment file").
				Fatal().
				WithContext("path", name).
				Build()
		}
		loaded = append(loaded, name)
	}
	return loaded, nil
}
