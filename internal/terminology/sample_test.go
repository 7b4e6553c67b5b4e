package terminology

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestCreateSample(t *testing.T) {
	sample := CreateSample()

	if len(sample) != 5 {
		t.Fatalf("Expected 5 sample terms, got %d", len(sample))
	}

	domains := map[string]int{}
	for _, term := range sample {
		domains[term.Domain]++
		if term.Language != "en" {
			t.Errorf("Sample term %d has language %q, want \"en\"", term.ID, term.Language)
		}
	}

	want := map[string]int{"general": 3, "education": 1, "commerce": 1}
	if !reflect.DeepEqual(domains, want) {
		t.Errorf("Sample domains = %v, want %v", domains, want)
	}
}

func TestSaveSample_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample_terminology.csv")

	if err := SaveSample(path); err != nil {
		t.Fatalf("SaveSample failed: %v", err)
	}

	manager, err := NewManager(path)
	if err != nil {
		t.Fatalf("Failed to reload saved sample: %v", err)
	}

	if !reflect.DeepEqual(manager.OrderedTerms(), CreateSample()) {
		t.Errorf("Reloaded sample = %v, want %v", manager.OrderedTerms(), CreateSample())
	}
}

func TestSaveSample_InvalidPath(t *testing.T) {
	err := SaveSample("/nonexistent/dir/sample.csv")
	if err == nil {
		t.Error("Expected error for unwritable path")
	}
}

func TestSaveSample_OptionsScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample_terminology.csv")

	if err := SaveSample(path); err != nil {
		t.Fatalf("SaveSample failed: %v", err)
	}

	options, err := ListAvailableOptions(path)
	if err != nil {
		t.Fatalf("ListAvailableOptions failed: %v", err)
	}

	wantDomains := []string{"commerce", "education", "general"}
	if !reflect.DeepEqual(options.Domains, wantDomains) {
		t.Errorf("Domains = %v, want %v", options.Domains, wantDomains)
	}
	if !reflect.DeepEqual(options.Languages, []string{"en"}) {
		t.Errorf("Languages = %v, want [en]", options.Languages)
	}
	if options.TermCount != 5 {
		t.Errorf("TermCount = %d, want 5", options.TermCount)
	}
}
