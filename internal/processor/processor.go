package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/snonux/terminex/internal/batch"
	"codeberg.org/snonux/terminex/internal/memory"
	"codeberg.org/snonux/terminex/internal/terminology"
	"codeberg.org/snonux/terminex/internal/translation"
)

// Options configures a translation run.
type Options struct {
	Terminology string // terminology CSV file or directory

	Engine      string
	OpenAIKey   string
	OpenAIModel string
	GeminiKey   string
	GeminiModel string

	SourceLang string
	PivotLang  string
	TargetLang string

	MemoryPath string // SQLite translation memory, empty to disable
	OutputDir  string // save results here, empty to skip
	BatchFile  string
}

// Processor handles the main translation logic
type Processor struct {
	opts       Options
	manager    *terminology.Manager
	translator *translation.Translator
	memory     *memory.Store
}

// New creates a new translation processor
func New(opts Options) (*Processor, error) {
	manager, err := terminology.NewManager(opts.Terminology)
	if err != nil {
		return nil, err
	}

	engine, err := translation.NewEngine(&translation.Config{
		Engine:      opts.Engine,
		OpenAIKey:   opts.OpenAIKey,
		OpenAIModel: opts.OpenAIModel,
		GeminiKey:   opts.GeminiKey,
		GeminiModel: opts.GeminiModel,
	})
	if err != nil {
		return nil, err
	}

	p := &Processor{opts: opts, manager: manager}

	var mem translation.Memory
	if opts.MemoryPath != "" {
		store, err := memory.Open(opts.MemoryPath)
		if err != nil {
			return nil, err
		}
		p.memory = store
		mem = store
	}

	p.translator = translation.NewTranslator(manager, engine, mem)
	return p, nil
}

// ProcessText translates a single text and prints the result.
func (p *Processor) ProcessText(ctx context.Context, text string) error {
	result, err := p.translator.Translate(ctx, text, p.opts.SourceLang, p.opts.PivotLang, p.opts.TargetLang)
	if err != nil {
		return err
	}

	printResult(result)

	if p.opts.OutputDir != "" {
		if err := os.MkdirAll(p.opts.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := translation.SaveResult(p.opts.OutputDir, result); err != nil {
			return err
		}
		fmt.Printf("\nResult saved to: %s\n", p.opts.OutputDir)
	}

	return nil
}

// ProcessBatch translates every text in the batch file, continuing past
// per-entry failures.
func (p *Processor) ProcessBatch(ctx context.Context) error {
	entries, err := batch.ReadFile(p.opts.BatchFile)
	if err != nil {
		return err
	}

	if p.opts.OutputDir != "" {
		if err := os.MkdirAll(p.opts.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	processedCount := 0
	errorCount := 0

	for i, entry := range entries {
		fmt.Printf("\nProcessing %d/%d: %s\n", i+1, len(entries), entry.Text)

		result, err := p.translator.Translate(ctx, entry.Text, p.opts.SourceLang, p.opts.PivotLang, p.opts.TargetLang)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error translating line %d: %v\n", entry.Line, err)
			errorCount++
			continue
		}

		printResult(result)
		processedCount++

		if p.opts.OutputDir != "" {
			path := filepath.Join(p.opts.OutputDir, fmt.Sprintf("translation_%03d.txt", entry.Line))
			if err := translation.SaveResultAs(path, result); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
		}
	}

	fmt.Printf("\n=== Batch Translation Summary ===\n")
	fmt.Printf("Total texts: %d\n", len(entries))
	fmt.Printf("Translated: %d\n", processedCount)
	if errorCount > 0 {
		fmt.Printf("Errors: %d\n", errorCount)
	}

	return nil
}

// Close releases the translation memory, if one is open.
func (p *Processor) Close() error {
	if p.memory != nil {
		return p.memory.Close()
	}
	return nil
}

func printResult(result *translation.Result) {
	fmt.Printf("Original:      %s\n", result.Original)
	fmt.Printf("Intermediate:  %s\n", result.Intermediate)
	fmt.Printf("Final:         %s\n", result.Final)
	fmt.Printf("Substitutions: %d\n", result.Substitutions)
}
