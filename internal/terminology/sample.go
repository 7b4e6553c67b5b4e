package terminology

import (
	"encoding/csv"
	"fmt"
	"os"
)

// DefaultSamplePath is where SaveSample writes when no path is given.
const DefaultSamplePath = "sample_terminology.csv"

// CreateSample returns a fixed five-row English-source terminology table
// for testing and demonstration.
func CreateSample() []Term {
	return []Term{
		{ID: 1, Term: "artificial intelligence", Translation: "inteligencia artificial", Domain: "general", Language: "en"},
		{ID: 2, Term: "machine learning", Translation: "aprendizaje automático", Domain: "general", Language: "en"},
		{ID: 3, Term: "neural network", Translation: "red neuronal", Domain: "general", Language: "en"},
		{ID: 4, Term: "distance learning", Translation: "educación a distancia", Domain: "education", Language: "en"},
		{ID: 5, Term: "supply chain", Translation: "cadena de suministro", Domain: "commerce", Language: "en"},
	}
}

// SaveSample writes the sample terminology table to a CSV file at path.
// Write failures propagate to the caller.
func SaveSample(path string) error {
	if path == "" {
		path = DefaultSamplePath
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sample terminology file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(csvHeader()); err != nil {
		return fmt.Errorf("failed to write sample header: %w", err)
	}
	for _, term := range CreateSample() {
		if err := writer.Write(csvRow(term)); err != nil {
			return fmt.Errorf("failed to write sample row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write sample terminology: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close sample terminology file: %w", err)
	}

	fmt.Printf("Sample terminology saved to: %s\n", path)
	return nil
}
