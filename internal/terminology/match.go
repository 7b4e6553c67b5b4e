package terminology

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// stopwords is a small English stopword list used when matching phrases
// against terminology, mirroring the loose phrase matching of glossary
// lookups ("the machine learning" still matches "machine learning").
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"but": {}, "by": {}, "for": {}, "from": {}, "has": {}, "have": {},
	"he": {}, "her": {}, "his": {}, "in": {}, "is": {}, "it": {}, "its": {},
	"of": {}, "on": {}, "or": {}, "our": {}, "she": {}, "that": {},
	"the": {}, "their": {}, "them": {}, "these": {}, "they": {}, "this": {},
	"to": {}, "was": {}, "were": {}, "will": {}, "with": {}, "your": {},
}

// Substitution records one placeholder inserted by Preprocess.
type Substitution struct {
	Placeholder string // e.g. "<3>"
	Term        Term
	Original    string // the matched text as it appeared in the input
}

// FindTerm looks up a phrase in the terminology. It tries an exact match on
// the lowercased phrase first, then a stopword-stripped variant.
func (m *Manager) FindTerm(phrase string) (Term, bool) {
	normalized := strings.ToLower(strings.TrimSpace(phrase))

	if id, ok := m.byText[normalized]; ok {
		return m.terms[id], true
	}

	stripped := stripStopwords(normalized)
	if stripped != "" && stripped != normalized {
		if id, ok := m.byText[stripped]; ok {
			return m.terms[id], true
		}
	}

	return Term{}, false
}

// stripStopwords removes stopwords from a phrase.
func stripStopwords(phrase string) string {
	words := strings.Fields(phrase)
	kept := words[:0]
	for _, word := range words {
		if _, ok := stopwords[word]; !ok {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, " ")
}

// match is one accepted term occurrence within the input text.
type match struct {
	start, end int
	term       Term
}

// Preprocess replaces occurrences of known terms in text with <id>
// placeholders. Longer terms win over shorter ones; matches never overlap.
// The returned substitutions carry the original matched text so Postprocess
// can restore its casing.
func (m *Manager) Preprocess(text string) (string, []Substitution) {
	if len(m.terms) == 0 {
		return text, nil
	}

	// Longest term first so "machine learning model" beats "machine learning".
	ordered := m.OrderedTerms()
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Term) > len(ordered[j].Term)
	})

	taken := make([]bool, len(text))
	var matches []match

	for _, term := range ordered {
		// \b is ASCII-only in RE2, so word boundaries are checked manually to
		// keep non-ASCII terms matchable.
		pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term.Term))
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			if !onWordBoundary(text, loc[0], loc[1]) {
				continue
			}
			if overlaps(taken, loc[0], loc[1]) {
				continue
			}
			for i := loc[0]; i < loc[1]; i++ {
				taken[i] = true
			}
			matches = append(matches, match{start: loc[0], end: loc[1], term: term})
		}
	}

	if len(matches) == 0 {
		return text, nil
	}

	// Substitutions in document order; replacement from the end backwards so
	// earlier offsets stay valid.
	sort.Slice(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	subs := make([]Substitution, len(matches))
	for i, mt := range matches {
		subs[i] = Substitution{
			Placeholder: fmt.Sprintf("<%d>", mt.term.ID),
			Term:        mt.term,
			Original:    text[mt.start:mt.end],
		}
	}

	result := text
	for i := len(matches) - 1; i >= 0; i-- {
		mt := matches[i]
		result = result[:mt.start] + subs[i].Placeholder + result[mt.end:]
	}

	return result, subs
}

// onWordBoundary reports whether text[start:end] is not glued to a letter or
// digit on either side.
func onWordBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func overlaps(taken []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if taken[i] {
			return true
		}
	}
	return false
}

// Postprocess replaces placeholders in text with the controlled translations,
// preserving the casing pattern of the originally matched text.
func (m *Manager) Postprocess(text string, subs []Substitution) string {
	result := text
	for _, sub := range subs {
		result = strings.Replace(result, sub.Placeholder, matchCase(sub.Original, sub.Term.Translation), 1)
	}
	return result
}

// matchCase applies the casing pattern of original to translation.
func matchCase(original, translation string) string {
	if original == "" || translation == "" {
		return translation
	}
	if original == strings.ToUpper(original) && strings.ContainsFunc(original, unicode.IsLetter) {
		return strings.ToUpper(translation)
	}
	first := []rune(original)[0]
	if unicode.IsUpper(first) {
		runes := []rune(translation)
		runes[0] = unicode.ToUpper(runes[0])
		return string(runes)
	}
	return translation
}
