package config

import (
	"testing"

	"dirlist/internal/fs"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DIRLIST_DIR", "")
	t.Setenv("DIRLIST_EXIT_CODES", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Dir != "." {
		t.Errorf("expected dir ., got %s", cfg.Dir)
	}
	if cfg.ExitScheme != fs.SchemeLegacy {
		t.Errorf("expected legacy exit scheme, got %s", cfg.ExitScheme)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DIRLIST_DIR", "/var/tmp")
	t.Setenv("DIRLIST_EXIT_CODES", "conventional")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Dir != "/var/tmp" {
		t.Errorf("expected dir /var/tmp, got %s", cfg.Dir)
	}
	if cfg.ExitScheme != fs.SchemeConventional {
		t.Errorf("expected conventional exit scheme, got %s", cfg.ExitScheme)
	}
}

func TestLoadInvalidScheme(t *testing.T) {
	t.Setenv("DIRLIST_EXIT_CODES", "bogus")

	if _, err := Load(); err == nil {
		t.Error("expected error for unknown exit scheme")
	}
}
