package config

import (
	"fmt"
	"os"

	"dirlist/internal/fs"
)

// Config holds the settings for one dirlist run.
type Config struct {
	Dir        string        // Directory to list
	ExitScheme fs.ExitScheme // Exit code convention for a complete listing
}

// Load reads configuration from environment variables with defaults.
// Command line flags override these values.
func Load() (*Config, error) {
	scheme, err := fs.ParseExitScheme(envOrDefault("DIRLIST_EXIT_CODES", string(fs.SchemeLegacy)))
	if err != nil {
		return nil, fmt.Errorf("DIRLIST_EXIT_CODES: %w", err)
	}

	return &Config{
		Dir:        envOrDefault("DIRLIST_DIR", "."),
		ExitScheme: scheme,
	}, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
