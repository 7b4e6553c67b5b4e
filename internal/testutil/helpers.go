// Package testutil provides shared helpers for writing terminology CSV
// fixtures in tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a test file with content, creating parent directories
// as needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// WriteCSV writes a terminology CSV fixture into dir under the given name
// and returns its full path.
func WriteCSV(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	WriteFile(t, path, content)
	return path
}

// SampleCSV is a small terminology fixture matching the built-in sample
// table layout.
const SampleCSV = `id,term,translation,domain,language
1,artificial intelligence,inteligencia artificial,general,en
2,machine learning,aprendizaje automático,general,en
3,neural network,red neuronal,general,en
4,distance learning,educación a distancia,education,en
5,supply chain,cadena de suministro,commerce,en
`
