package parse

import (
	"sort"
	"strings"
)

// Vocabulary is the read-only catalog metadata the parser validates
// completion output against. It is constructed once at startup from the
// catalog repository and injected; it is never mutated after construction.
type Vocabulary struct {
	artists       []string
	artistsByFold map[string]string
}

// NewVocabulary builds a vocabulary from the known artist names.
func NewVocabulary(artists []string) *Vocabulary {
	byFold := make(map[string]string, len(artists))
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		key := strings.ToLower(a)
		if _, dup := byFold[key]; dup {
			continue
		}
		byFold[key] = a
		names = append(names, a)
	}
	sort.Strings(names)
	return &Vocabulary{artists: names, artistsByFold: byFold}
}

// Artists returns the known artist names, sorted.
func (v *Vocabulary) Artists() []string { return v.artists }

// MatchArtist resolves a free-form name to the canonical artist name.
// Matching is case-insensitive and exact; unknown names return ok=false.
func (v *Vocabulary) MatchArtist(name string) (string, bool) {
	canonical, ok := v.artistsByFold[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}
