package translation

import "fmt"

// TranslationCache stores engine results in memory for batch operations.
type TranslationCache struct {
	translations map[string]string
}

// NewTranslationCache creates a new translation cache.
func NewTranslationCache() *TranslationCache {
	return &TranslationCache{
		translations: make(map[string]string),
	}
}

// cacheKey builds the lookup key for one engine call.
func cacheKey(engine, sourceLang, targetLang, text string) string {
	return fmt.Sprintf("%s|%s|%s|%s", engine, sourceLang, targetLang, text)
}

// Add adds a translation to the cache.
func (tc *TranslationCache) Add(key, translation string) {
	tc.translations[key] = translation
}

// Get retrieves a translation from the cache.
func (tc *TranslationCache) Get(key string) (string, bool) {
	translation, ok := tc.translations[key]
	return translation, ok
}

// GetAll returns all cached translations.
func (tc *TranslationCache) GetAll() map[string]string {
	// Return a copy to prevent external modification
	result := make(map[string]string)
	for k, v := range tc.translations {
		result[k] = v
	}
	return result
}
