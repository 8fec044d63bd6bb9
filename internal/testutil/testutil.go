// Package testutil provides test utilities and mock implementations.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteConfigFile writes content as a properties file inside a fresh
// temporary directory and returns its path
func WriteConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "buttons.properties")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	return path
}
