package terminology

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Term is one terminology entry: a source-language term and its controlled
// translation, tagged with a free-text domain and a language code.
type Term struct {
	ID          int    `json:"id"`
	Term        string `json:"term"`
	Translation string `json:"translation"`
	Domain      string `json:"domain"`
	Language    string `json:"language"`
}

// Sentinel errors for terminology loading. Callers can test with errors.Is.
var (
	ErrMissingSource   = errors.New("terminology source not found")
	ErrMalformedRecord = errors.New("malformed terminology record")
	ErrDuplicateTermID = errors.New("duplicate term id")
	ErrUnknownFormat   = errors.New("unknown export format")
)

// DefaultDomain is used when a CSV has no domain column.
const DefaultDomain = "general"

// DefaultLanguage is used when the language can neither be read from the
// CSV nor inferred from the filename.
const DefaultLanguage = "en"

// filenameLanguagePattern extracts a language code from files named like
// terminologies_de.csv.
var filenameLanguagePattern = regexp.MustCompile(`(?i)terminologies_([a-z]+)\.csv$`)

// Manager holds a terminology set loaded from a CSV file or a directory of
// CSV files. Terms are immutable after load.
type Manager struct {
	source   string
	terms    map[int]Term
	order    []int          // insertion order of term IDs, for round-trip export
	byText   map[string]int // lowercased term text -> ID
	language string
}

// NewManager loads terminology from the given source path. The source may be
// a single CSV file or a directory containing CSV files. An empty source
// yields a Manager with an empty terminology set.
func NewManager(source string) (*Manager, error) {
	m := &Manager{
		source: source,
		terms:  make(map[int]Term),
		byText: make(map[string]int),
	}

	if source == "" {
		return m, nil
	}

	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingSource, source)
	}

	if info.IsDir() {
		if err := m.loadDirectory(source); err != nil {
			return nil, err
		}
	} else {
		if err := m.loadFile(source); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// loadDirectory loads every .csv file in the directory, in name order.
func (m *Manager) loadDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrMissingSource, dir)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".csv") {
			continue
		}
		if err := m.loadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}

	return nil
}

// loadFile loads terminology rows from a single CSV file.
func (m *Manager) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrMissingSource, path)
	}
	defer f.Close()

	fileLanguage := DefaultLanguage
	if match := filenameLanguagePattern.FindStringSubmatch(filepath.Base(path)); match != nil {
		fileLanguage = strings.ToLower(match[1])
	}

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil // empty file, nothing to load
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedRecord, path, err)
	}

	columns := make(map[string]int)
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"term", "translation"} {
		if _, ok := columns[required]; !ok {
			return fmt.Errorf("%w: %s: missing %q column", ErrMalformedRecord, path, required)
		}
	}

	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return fmt.Errorf("%w: %s line %d: %v", ErrMalformedRecord, path, line, err)
		}

		term, err := m.parseRow(row, columns, fileLanguage)
		if err != nil {
			return fmt.Errorf("%w: %s line %d: %v", ErrMalformedRecord, path, line, err)
		}

		if _, exists := m.terms[term.ID]; exists {
			return fmt.Errorf("%w: %s line %d: id %d", ErrDuplicateTermID, path, line, term.ID)
		}

		m.terms[term.ID] = term
		m.order = append(m.order, term.ID)
		m.byText[term.Term] = term.ID
	}

	m.language = fileLanguage
	return nil
}

// parseRow builds a Term from one CSV row, applying the defaults for absent
// domain and language columns.
func (m *Manager) parseRow(row []string, columns map[string]int, fileLanguage string) (Term, error) {
	field := func(name string) (string, bool) {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	text, _ := field("term")
	translation, _ := field("translation")
	if text == "" {
		return Term{}, errors.New("empty term")
	}
	if translation == "" {
		return Term{}, errors.New("empty translation")
	}

	id := len(m.terms) + 1
	if raw, ok := field("id"); ok && raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return Term{}, fmt.Errorf("invalid id %q", raw)
		}
		id = parsed
	}

	domain := DefaultDomain
	if d, ok := field("domain"); ok && d != "" {
		domain = d
	}

	language := fileLanguage
	if l, ok := field("language"); ok && l != "" {
		language = strings.ToLower(l)
	}

	return Term{
		ID:          id,
		Term:        strings.ToLower(text),
		Translation: translation,
		Domain:      domain,
		Language:    language,
	}, nil
}

// Terms returns the loaded terminology keyed by term ID. The returned map is
// a copy to keep the loaded set immutable.
func (m *Manager) Terms() map[int]Term {
	result := make(map[int]Term, len(m.terms))
	for id, term := range m.terms {
		result[id] = term
	}
	return result
}

// OrderedTerms returns the loaded terms in source order.
func (m *Manager) OrderedTerms() []Term {
	result := make([]Term, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.terms[id])
	}
	return result
}

// Len returns the number of loaded terms.
func (m *Manager) Len() int {
	return len(m.terms)
}

// Language returns the language of the most recently loaded terminology
// file, or the default when nothing has been loaded.
func (m *Manager) Language() string {
	if m.language == "" {
		return DefaultLanguage
	}
	return m.language
}

// Source returns the path the terminology was loaded from.
func (m *Manager) Source() string {
	return m.source
}
