// Package search finds corpus sentences for a vocabulary term.
package search

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/sentencemine/internal/domain"
)

type index interface {
	Lookup(key string) ([]int, bool)
}

type dictionary interface {
	Lookup(term string) (domain.DictionaryEntry, bool)
}

// Matcher resolves a term to candidate sentences. It is read-only after
// construction and safe for concurrent use.
type Matcher struct {
	index  index
	corpus *domain.Corpus
	dict   dictionary
}

// NewMatcher creates a Matcher over a loaded index, corpus and glossary.
func NewMatcher(idx index, corpus *domain.Corpus, dict dictionary) *Matcher {
	return &Matcher{index: idx, corpus: corpus, dict: dict}
}

// Sentences returns the sentences for term in corpus order. An exact index
// key wins; otherwise every sentence containing term verbatim is returned.
// The substring path can match term inside an unrelated longer word.
func (m *Matcher) Sentences(term string) []domain.Sentence {
	if positions, ok := m.index.Lookup(term); ok {
		out := make([]domain.Sentence, 0, len(positions))
		for _, pos := range positions {
			if s, ok := m.corpus.At(pos); ok {
				out = append(out, s)
			}
		}
		return out
	}

	var out []domain.Sentence
	for _, s := range m.corpus.Sentences {
		if strings.Contains(s.Kanji, term) {
			out = append(out, s)
		}
	}
	return out
}

// Search returns the candidates for term. It returns ErrNoMatchFound when no
// sentence matches and ErrNoDictionaryEntry when sentences matched but the
// glossary has no entry for term.
func (m *Matcher) Search(term string) ([]domain.Candidate, error) {
	if term == "" {
		return nil, domain.NewValidationError("term", "required")
	}

	sentences := m.Sentences(term)
	if len(sentences) == 0 {
		return nil, fmt.Errorf("search %q: %w", term, domain.ErrNoMatchFound)
	}

	entry, ok := m.dict.Lookup(term)
	if !ok || entry.IsEmpty() {
		return nil, fmt.Errorf("search %q: %w", term, domain.ErrNoDictionaryEntry)
	}

	candidates := make([]domain.Candidate, 0, len(sentences))
	for _, s := range sentences {
		candidates = append(candidates, domain.Candidate{Sentence: s, Dictionary: entry})
	}
	return candidates, nil
}
