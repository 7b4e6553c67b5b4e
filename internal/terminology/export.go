package terminology

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Export output formats.
const (
	FormatJSON    = "json"
	FormatCSV     = "csv"
	FormatRecords = "records"
)

// ExportFilter restricts which terms are exported. Empty fields match
// everything; non-empty fields are exact, case-sensitive matches.
type ExportFilter struct {
	Domain   string
	Language string
}

// ExportRecords loads the terminology at source and returns the matching
// terms in source order, for in-process consumption.
func ExportRecords(source string, filter ExportFilter) ([]Term, error) {
	manager, err := NewManager(source)
	if err != nil {
		return nil, err
	}
	return manager.FilteredTerms(filter), nil
}

// Export loads the terminology at source and serializes the matching terms.
// Format json yields a 2-space-indented array with non-ASCII characters
// preserved literally; format csv yields a header row plus one row per term,
// or the empty string when nothing matches.
func Export(source, format string, filter ExportFilter) (string, error) {
	records, err := ExportRecords(source, filter)
	if err != nil {
		return "", err
	}

	switch format {
	case FormatJSON:
		return marshalJSON(records)
	case FormatCSV:
		return marshalCSV(records)
	case FormatRecords:
		return "", fmt.Errorf("%w: %q is for in-process use, call ExportRecords", ErrUnknownFormat, format)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FilteredTerms returns the terms matching the filter, in source order.
func (m *Manager) FilteredTerms(filter ExportFilter) []Term {
	records := make([]Term, 0, len(m.order))
	for _, id := range m.order {
		term := m.terms[id]
		if filter.Domain != "" && term.Domain != filter.Domain {
			continue
		}
		if filter.Language != "" && term.Language != filter.Language {
			continue
		}
		records = append(records, term)
	}
	return records
}

func marshalJSON(records []Term) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return "", fmt.Errorf("failed to encode terminology as JSON: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func marshalCSV(records []Term) (string, error) {
	if len(records) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader()); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(csvRow(record)); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return buf.String(), nil
}

func csvHeader() []string {
	return []string{"id", "term", "translation", "domain", "language"}
}

func csvRow(term Term) []string {
	return []string{
		strconv.Itoa(term.ID),
		term.Term,
		term.Translation,
		term.Domain,
		term.Language,
	}
}
