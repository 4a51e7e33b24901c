package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dirlist/internal/fs"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunListsDirectory(t *testing.T) {
	t.Setenv("DIRLIST_EXIT_CODES", "")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	code, stdout, _ := runCLI(t, "--dir", dir)
	if code != fs.ExitNotFound {
		t.Errorf("Expected exit code %d, got %d", fs.ExitNotFound, code)
	}

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 entry lines, got %q", stdout)
	}
	names := make(map[string]bool)
	for _, line := range lines {
		if !strings.HasPrefix(line, "entry: ") {
			t.Errorf("Unexpected line %q", line)
		}
		fields := strings.SplitN(line, " ", 3)
		names[fields[len(fields)-1]] = true
	}
	for _, name := range []string{".", "..", "a.txt"} {
		if !names[name] {
			t.Errorf("Missing entry %q in %q", name, stdout)
		}
	}
}

func TestRunOpenFailure(t *testing.T) {
	code, stdout, _ := runCLI(t, "--dir", filepath.Join(t.TempDir(), "missing"))
	if code != fs.ExitError {
		t.Errorf("Expected exit code %d, got %d", fs.ExitError, code)
	}
	if stdout != "dirp: NULL" {
		t.Errorf("Expected %q, got %q", "dirp: NULL", stdout)
	}
}

func TestRunDirFromEnv(t *testing.T) {
	t.Setenv("DIRLIST_DIR", t.TempDir())
	t.Setenv("DIRLIST_EXIT_CODES", "conventional")

	code, stdout, _ := runCLI(t)
	if code != fs.ExitOK {
		t.Errorf("Expected exit code %d, got %d", fs.ExitOK, code)
	}
	// An empty directory still holds "." and "..".
	if strings.Count(stdout, "entry: ") != 2 {
		t.Errorf("Expected 2 entry lines, got %q", stdout)
	}
}

func TestRunFlagOverridesEnv(t *testing.T) {
	t.Setenv("DIRLIST_EXIT_CODES", "conventional")

	code, _, _ := runCLI(t, "-C", t.TempDir(), "--exit-codes", "legacy")
	if code != fs.ExitNotFound {
		t.Errorf("Expected exit code %d, got %d", fs.ExitNotFound, code)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"positional argument", []string{"somewhere"}},
		{"unknown flag", []string{"--recursive"}},
		{"unknown scheme", []string{"--exit-codes", "posix"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)
			if code != fs.ExitError {
				t.Errorf("Expected exit code %d, got %d", fs.ExitError, code)
			}
			if strings.Contains(stdout, "entry: ") {
				t.Errorf("Nothing should be listed, got %q", stdout)
			}
			if !strings.HasPrefix(stderr, "Error: ") {
				t.Errorf("Expected error on stderr, got %q", stderr)
			}
		})
	}
}
