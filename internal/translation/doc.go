// Package translation provides terminology-aware machine translation through
// external translation engines (OpenAI, Gemini). Source text is preprocessed
// into placeholder form, translated via an intermediate pivot language, and
// postprocessed so controlled terminology lands in the final text. Engine
// calls go through a circuit breaker; results are cached in memory and
// optionally in a persistent translation memory.
package translation
