package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCleanAndExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %s", err)
	}
	t.Setenv("DANACTL_TEST_DIR", "/var/tmp")

	tests := []struct {
		path     string
		expected string
	}{
		{path: "~/logs", expected: filepath.Join(homeDir, "logs")},
		{path: "$DANACTL_TEST_DIR/logs/", expected: filepath.Clean("/var/tmp/logs")},
		{path: "a/../b", expected: "b"},
	}

	for _, test := range tests {
		got := cleanAndExpandPath(test.path)
		if got != test.expected {
			t.Errorf("cleanAndExpandPath(%q): got %q, want %q", test.path, got, test.expected)
		}
	}
}

func TestResolveLoggingRejectsInvalidLevel(t *testing.T) {
	logFlags := &LogFlags{DebugLevel: "loud"}
	if err := logFlags.ResolveLogging(); err == nil {
		t.Fatalf("expected an error for an invalid debug level")
	}
}
