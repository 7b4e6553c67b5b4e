package translation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/snonux/terminex/internal/terminology"
)

// Memory is a persistent translation store consulted before calling the
// engine. Implemented by the memory package.
type Memory interface {
	Get(engine, sourceLang, targetLang, text string) (string, bool, error)
	Put(engine, sourceLang, targetLang, text, translation string) error
}

// Result is the outcome of one terminology-aware translation.
type Result struct {
	Original      string // input text as supplied
	Intermediate  string // pivot-language text, placeholders still in place
	Final         string // target-language text with terminology restored
	Substitutions int    // number of terminology placeholders applied
}

// Translator performs pivot translations with terminology substitution.
type Translator struct {
	manager *terminology.Manager
	engine  Engine
	cache   *TranslationCache
	memory  Memory
}

// NewTranslator creates a translator over the given terminology set and
// engine. memory may be nil.
func NewTranslator(manager *terminology.Manager, engine Engine, memory Memory) *Translator {
	return &Translator{
		manager: manager,
		engine:  engine,
		cache:   NewTranslationCache(),
		memory:  memory,
	}
}

// Translate translates text from sourceLang to targetLang through the pivot
// language. Known terminology is replaced with placeholders before the
// engine sees the text and restored afterwards with its controlled
// translations, preserving the original casing.
func (t *Translator) Translate(ctx context.Context, text, sourceLang, pivotLang, targetLang string) (*Result, error) {
	preprocessed, subs := t.manager.Preprocess(text)

	intermediate := preprocessed
	if sourceLang != pivotLang {
		translated, err := t.translateText(ctx, preprocessed, sourceLang, pivotLang)
		if err != nil {
			return nil, fmt.Errorf("pivot translation failed: %w", err)
		}
		intermediate = translated
	}

	final := intermediate
	if pivotLang != targetLang {
		translated, err := t.translateText(ctx, intermediate, pivotLang, targetLang)
		if err != nil {
			return nil, fmt.Errorf("target translation failed: %w", err)
		}
		final = translated
	}

	return &Result{
		Original:      text,
		Intermediate:  intermediate,
		Final:         t.manager.Postprocess(final, subs),
		Substitutions: len(subs),
	}, nil
}

// translateText performs one engine call, consulting the in-process cache
// and the persistent memory first.
func (t *Translator) translateText(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	key := cacheKey(t.engine.Name(), sourceLang, targetLang, text)

	if translation, ok := t.cache.Get(key); ok {
		return translation, nil
	}

	if t.memory != nil {
		translation, ok, err := t.memory.Get(t.engine.Name(), sourceLang, targetLang, text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: translation memory lookup failed: %v\n", err)
		} else if ok {
			t.cache.Add(key, translation)
			return translation, nil
		}
	}

	translation, err := t.engine.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		return "", err
	}

	t.cache.Add(key, translation)
	if t.memory != nil {
		if err := t.memory.Put(t.engine.Name(), sourceLang, targetLang, text, translation); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to store translation in memory: %v\n", err)
		}
	}

	return translation, nil
}

// SaveResult saves a translation result to translation.txt in the output
// directory.
func SaveResult(outputDir string, result *Result) error {
	return SaveResultAs(filepath.Join(outputDir, "translation.txt"), result)
}

// SaveResultAs saves a translation result to the given file.
func SaveResultAs(path string, result *Result) error {
	content := fmt.Sprintf("original: %s\nintermediate: %s\nfinal: %s\nsubstitutions: %d\n",
		result.Original, result.Intermediate, result.Final, result.Substitutions)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write translation file: %w", err)
	}

	return nil
}
