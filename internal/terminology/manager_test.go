package terminology

import (
	"errors"
	"path/filepath"
	"testing"

	"codeberg.org/snonux/terminex/internal/testutil"
)

func TestNewManager_EmptySource(t *testing.T) {
	manager, err := NewManager("")
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if manager.Len() != 0 {
		t.Errorf("Expected empty terminology set, got %d terms", manager.Len())
	}

	if manager.Language() != "en" {
		t.Errorf("Expected default language 'en', got %q", manager.Language())
	}
}

func TestNewManager_MissingSource(t *testing.T) {
	_, err := NewManager("/nonexistent/terminologies.csv")
	if err == nil {
		t.Fatal("Expected error for missing source")
	}

	if !errors.Is(err, ErrMissingSource) {
		t.Errorf("Expected ErrMissingSource, got: %v", err)
	}
}

func TestNewManager_SingleFile(t *testing.T) {
	path := testutil.WriteCSV(t, t.TempDir(), "terms.csv", testutil.SampleCSV)

	manager, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if manager.Len() != 5 {
		t.Errorf("Expected 5 terms, got %d", manager.Len())
	}

	terms := manager.Terms()
	term, ok := terms[2]
	if !ok {
		t.Fatal("Expected term with id 2")
	}
	if term.Term != "machine learning" {
		t.Errorf("Expected term 'machine learning', got %q", term.Term)
	}
	if term.Translation != "aprendizaje automático" {
		t.Errorf("Expected translation 'aprendizaje automático', got %q", term.Translation)
	}
	if term.Domain != "general" {
		t.Errorf("Expected domain 'general', got %q", term.Domain)
	}
	if term.Language != "en" {
		t.Errorf("Expected language 'en', got %q", term.Language)
	}
}

func TestNewManager_TermTextNormalized(t *testing.T) {
	csv := "id,term,translation\n1,  Machine Learning ,aprendizaje automático\n"
	path := testutil.WriteCSV(t, t.TempDir(), "terms.csv", csv)

	manager, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	term := manager.Terms()[1]
	if term.Term != "machine learning" {
		t.Errorf("Expected lowercased trimmed term, got %q", term.Term)
	}
}

func TestNewManager_DefaultColumns(t *testing.T) {
	csv := "id,term,translation\n1,invoice,factura\n"
	path := testutil.WriteCSV(t, t.TempDir(), "terms.csv", csv)

	manager, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	term := manager.Terms()[1]
	if term.Domain != DefaultDomain {
		t.Errorf("Expected default domain %q, got %q", DefaultDomain, term.Domain)
	}
	if term.Language != DefaultLanguage {
		t.Errorf("Expected default language %q, got %q", DefaultLanguage, term.Language)
	}
}

func TestNewManager_LanguageFromFilename(t *testing.T) {
	csv := "id,term,translation\n1,rechnung,factura\n"
	path := testutil.WriteCSV(t, t.TempDir(), "terminologies_de.csv", csv)

	manager, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if manager.Language() != "de" {
		t.Errorf("Expected language 'de' from filename, got %q", manager.Language())
	}
	if term := manager.Terms()[1]; term.Language != "de" {
		t.Errorf("Expected term language 'de', got %q", term.Language)
	}
}

func TestNewManager_LanguageColumnWins(t *testing.T) {
	csv := "id,term,translation,domain,language\n1,invoice,factura,commerce,FR\n"
	path := testutil.WriteCSV(t, t.TempDir(), "terminologies_de.csv", csv)

	manager, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if term := manager.Terms()[1]; term.Language != "fr" {
		t.Errorf("Expected lowercased language 'fr' from column, got %q", term.Language)
	}
}

func TestNewManager_Directory(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteCSV(t, dir, "terminologies_de.csv", "id,term,translation\n1,invoice,rechnung\n")
	testutil.WriteCSV(t, dir, "terminologies_fr.csv", "id,term,translation\n2,invoice,facture\n")
	testutil.WriteFile(t, filepath.Join(dir, "notes.txt"), "not a csv")

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if manager.Len() != 2 {
		t.Errorf("Expected 2 terms from directory, got %d", manager.Len())
	}

	terms := manager.Terms()
	if terms[1].Language != "de" {
		t.Errorf("Expected first file language 'de', got %q", terms[1].Language)
	}
	if terms[2].Language != "fr" {
		t.Errorf("Expected second file language 'fr', got %q", terms[2].Language)
	}
}

func TestNewManager_MissingRequiredColumn(t *testing.T) {
	csv := "id,term\n1,invoice\n"
	path := testutil.WriteCSV(t, t.TempDir(), "terms.csv", csv)

	_, err := NewManager(path)
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("Expected ErrMalformedRecord for missing column, got: %v", err)
	}
}

func TestNewManager_EmptyRequiredField(t *testing.T) {
	csv := "id,term,translation\n1,invoice,\n"
	path := testutil.WriteCSV(t, t.TempDir(), "terms.csv", csv)

	_, err := NewManager(path)
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("Expected ErrMalformedRecord for empty translation, got: %v", err)
	}
}

func TestNewManager_InvalidID(t *testing.T) {
	csv := "id,term,translation\nabc,invoice,factura\n"
	path := testutil.WriteCSV(t, t.TempDir(), "terms.csv", csv)

	_, err := NewManager(path)
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("Expected ErrMalformedRecord for invalid id, got: %v", err)
	}
}

func TestNewManager_DuplicateID(t *testing.T) {
	csv := "id,term,translation\n1,invoice,factura\n1,receipt,recibo\n"
	path := testutil.WriteCSV(t, t.TempDir(), "terms.csv", csv)

	_, err := NewManager(path)
	if !errors.Is(err, ErrDuplicateTermID) {
		t.Errorf("Expected ErrDuplicateTermID, got: %v", err)
	}
}

func TestNewManager_MissingIDAutoAssigned(t *testing.T) {
	csv := "term,translation\ninvoice,factura\nreceipt,recibo\n"
	path := testutil.WriteCSV(t, t.TempDir(), "terms.csv", csv)

	manager, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	terms := manager.Terms()
	if terms[1].Term != "invoice" || terms[2].Term != "receipt" {
		t.Errorf("Expected sequential ids for rows without an id column, got %v", terms)
	}
}

func TestOrderedTerms_PreservesSourceOrder(t *testing.T) {
	csv := "id,term,translation\n30,gamma,c\n10,alpha,a\n20,beta,b\n"
	path := testutil.WriteCSV(t, t.TempDir(), "terms.csv", csv)

	manager, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	ordered := manager.OrderedTerms()
	want := []int{30, 10, 20}
	for i, term := range ordered {
		if term.ID != want[i] {
			t.Errorf("OrderedTerms[%d].ID = %d, want %d", i, term.ID, want[i])
		}
	}
}

func TestTerms_ReturnsCopy(t *testing.T) {
	path := testutil.WriteCSV(t, t.TempDir(), "terms.csv", testutil.SampleCSV)

	manager, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	terms := manager.Terms()
	terms[1] = Term{ID: 1, Term: "modified"}

	if manager.Terms()[1].Term == "modified" {
		t.Error("Terminology set was modified through returned map")
	}
}
