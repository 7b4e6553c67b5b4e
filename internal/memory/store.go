package memory

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS translations (
    engine          TEXT NOT NULL,
    source_lang     TEXT NOT NULL,
    target_lang     TEXT NOT NULL,
    source_text     TEXT NOT NULL,
    translated_text TEXT NOT NULL,
    created_at      TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (engine, source_lang, target_lang, source_text)
)`

// Store is a SQLite-backed translation memory.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) a translation memory database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open translation memory: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create translation memory schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Get looks up a stored translation. The second return value reports whether
// an entry was found.
func (s *Store) Get(engine, sourceLang, targetLang, text string) (string, bool, error) {
	var translation string
	err := s.db.QueryRow(
		`SELECT translated_text FROM translations
		 WHERE engine = ? AND source_lang = ? AND target_lang = ? AND source_text = ?`,
		engine, sourceLang, targetLang, text,
	).Scan(&translation)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("translation memory lookup failed: %w", err)
	}

	return translation, true, nil
}

// Put stores a translation, replacing any previous entry for the same key.
func (s *Store) Put(engine, sourceLang, targetLang, text, translation string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO translations
		 (engine, source_lang, target_lang, source_text, translated_text)
		 VALUES (?, ?, ?, ?, ?)`,
		engine, sourceLang, targetLang, text, translation,
	)
	if err != nil {
		return fmt.Errorf("failed to store translation: %w", err)
	}
	return nil
}

// Len returns the number of stored translations.
func (s *Store) Len() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM translations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count translations: %w", err)
	}
	return count, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
