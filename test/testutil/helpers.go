// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

// ProjectPath returns the absolute path of a file relative to the module root.
func ProjectPath(t *testing.T, elem ...string) string {
	t.Helper()

	// Get the path of this file to find the module root
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	return filepath.Join(append([]string{projectRoot}, elem...)...)
}

// FixturePath returns the path of the bundled Amadeus flight offers fixture.
func FixturePath(t *testing.T) string {
	t.Helper()
	return ProjectPath(t, "data", "flight_offers.json")
}

// LoadFixture loads the bundled Amadeus flight offers fixture.
func LoadFixture(t *testing.T) []byte {
	t.Helper()

	data, err := os.ReadFile(FixturePath(t))
	if err != nil {
		t.Fatalf("Failed to load fixture: %v", err)
	}
	return data
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for building partial filter updates in tests.
func Ptr[T any](v T) *T {
	return &v
}
