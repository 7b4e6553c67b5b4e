package terminology

import "sort"

// Options describes what a terminology source offers: the distinct domains
// and languages it covers and the total number of terms.
type Options struct {
	Domains   []string `json:"domains"`
	Languages []string `json:"languages"`
	TermCount int      `json:"term_count"`
}

// ListAvailableOptions loads the terminology at source and reports its
// distinct domains and languages, each deduplicated and sorted ascending,
// together with the total term count. An empty terminology set yields empty
// lists and a zero count.
func ListAvailableOptions(source string) (Options, error) {
	manager, err := NewManager(source)
	if err != nil {
		return Options{}, err
	}
	return manager.AvailableOptions(), nil
}

// AvailableOptions reports the distinct domains and languages of an already
// loaded terminology set.
func (m *Manager) AvailableOptions() Options {
	domains := make(map[string]struct{})
	languages := make(map[string]struct{})

	for _, term := range m.terms {
		domains[term.Domain] = struct{}{}
		languages[term.Language] = struct{}{}
	}

	options := Options{
		Domains:   make([]string, 0, len(domains)),
		Languages: make([]string, 0, len(languages)),
		TermCount: len(m.terms),
	}
	for domain := range domains {
		options.Domains = append(options.Domains, domain)
	}
	for language := range languages {
		options.Languages = append(options.Languages, language)
	}

	sort.Strings(options.Domains)
	sort.Strings(options.Languages)

	return options
}
