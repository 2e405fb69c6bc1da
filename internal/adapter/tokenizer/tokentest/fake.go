// Package tokentest provides a deterministic tokenizer for tests.
package tokentest

import (
	"context"
	"sync"

	"github.com/heartmarshall/sentencemine/internal/domain"
)

// Fake returns fixed analyses for known texts. Unknown texts are split into
// one noun token per rune, which keeps the analysis lossless.
type Fake struct {
	Analyses map[string][]domain.Token
	// Errs makes Tokenize fail for the given texts.
	Errs map[string]error

	mu    sync.Mutex
	calls []string
}

// New returns a Fake over the given analyses.
func New(analyses map[string][]domain.Token) *Fake {
	return &Fake{Analyses: analyses}
}

// Tokenize implements the tokenizer port.
func (f *Fake) Tokenize(_ context.Context, text string) ([]domain.Token, error) {
	f.mu.Lock()
	f.calls = append(f.calls, text)
	f.mu.Unlock()

	if err, ok := f.Errs[text]; ok {
		return nil, err
	}
	if tokens, ok := f.Analyses[text]; ok {
		return append([]domain.Token(nil), tokens...), nil
	}

	tokens := make([]domain.Token, 0, len(text))
	for _, r := range text {
		tokens = append(tokens, Noun(string(r)))
	}
	return tokens, nil
}

// Calls returns the texts passed to Tokenize, in call order.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Noun builds a content token whose forms equal its surface.
func Noun(surface string) domain.Token {
	return domain.Token{Surface: surface, PartOfSpeech: "名詞", NormalizedForm: surface, DictionaryForm: surface}
}

// Verb builds a content token with an inflected surface.
func Verb(surface, lemma string) domain.Token {
	return domain.Token{Surface: surface, PartOfSpeech: "動詞", NormalizedForm: lemma, DictionaryForm: lemma}
}

// Particle builds a particle token.
func Particle(surface string) domain.Token {
	return domain.Token{Surface: surface, PartOfSpeech: domain.POSParticle, NormalizedForm: surface, DictionaryForm: surface}
}

// Symbol builds a punctuation token.
func Symbol(surface string) domain.Token {
	return domain.Token{Surface: surface, PartOfSpeech: domain.POSSymbol}
}

// Boundary builds a sentence boundary marker.
func Boundary() domain.Token {
	return domain.Token{PartOfSpeech: domain.POSBoundary}
}
