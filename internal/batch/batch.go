// Package batch reads translation input files: one source text per line,
// with blank lines and # comments skipped.
package batch

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Entry is one text to translate from a batch file.
type Entry struct {
	Text string
	Line int // line number in the batch file, for error reporting
}

// ReadFile reads source texts from a batch file.
func ReadFile(filename string) ([]Entry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		entries = append(entries, Entry{Text: text, Line: line})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return entries, nil
}
