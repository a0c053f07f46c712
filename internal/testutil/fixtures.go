// Package testutil locates and loads test fixtures shared by several packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDataPath returns the absolute path of the repository testdata/ directory,
// searching upwards from the working directory.
func TestDataPath() string {
	wd, _ := os.Getwd()
	for {
		p := filepath.Join(wd, "testdata")
		if _, err := os.Stat(p); err == nil {
			return p
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			panic("could not find testdata directory")
		}
		wd = parent
	}
}

// SiriFixture returns the path of testdata/siri/name.
func SiriFixture(name string) string {
	return filepath.Join(TestDataPath(), "siri", name)
}

// LoadSiri reads testdata/siri/name.
func LoadSiri(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(SiriFixture(name))
	if err != nil {
		t.Fatalf("failed to load SIRI fixture %s: %v", name, err)
	}
	return string(b)
}
