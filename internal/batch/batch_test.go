package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "batch.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write batch file: %v", err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []Entry
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "only whitespace",
			fileContent: "   \n\t\r\n   ",
			want:        nil,
		},
		{
			name:        "texts with blank lines",
			fileContent: "Machine learning is everywhere\n\nThe supply chain broke\n",
			want: []Entry{
				{Text: "Machine learning is everywhere", Line: 1},
				{Text: "The supply chain broke", Line: 3},
			},
		},
		{
			name:        "comments skipped",
			fileContent: "# heading\nHello world\n  # indented comment\n",
			want: []Entry{
				{Text: "Hello world", Line: 2},
			},
		},
		{
			name:        "surrounding whitespace trimmed",
			fileContent: "  Hello world  \n",
			want: []Entry{
				{Text: "Hello world", Line: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(writeBatchFile(t, tt.fileContent))
			if err != nil {
				t.Fatalf("ReadFile failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadFile = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile("/nonexistent/batch.txt")
	if err == nil {
		t.Error("Expected error for missing batch file")
	}
}
