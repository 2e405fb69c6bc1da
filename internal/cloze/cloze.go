// Package cloze marks a vocabulary term inside a sentence for cloze-deletion
// study.
package cloze

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/heartmarshall/sentencemine/internal/domain"
)

type tokenizer interface {
	Tokenize(ctx context.Context, text string) ([]domain.Token, error)
}

// Mark wraps text in cloze-deletion markup.
func Mark(text string) string {
	return "{{c1::" + text + "}}"
}

var markerRe = regexp.MustCompile(`\{\{c\d+::(.*?)(?:::[^}]*)?\}\}`)

// Strip replaces every cloze marker with the text it encloses.
func Strip(marked string) string {
	return markerRe.ReplaceAllString(marked, "$1")
}

// Generator produces cloze sentences. It is safe for concurrent use when the
// tokenizer is.
type Generator struct {
	tok tokenizer
}

// NewGenerator creates a Generator backed by tok.
func NewGenerator(tok tokenizer) *Generator {
	return &Generator{tok: tok}
}

// Make marks the first occurrence of term in sentence. When the sentence does
// not contain term verbatim, tokens are compared by normalized form so an
// inflected occurrence is marked instead. If nothing matches, the result is
// the unmarked sentence with Found=false. Errors come only from the tokenizer.
func (g *Generator) Make(ctx context.Context, term, sentence string) (domain.ClozeResult, error) {
	if term == "" {
		return domain.ClozeResult{Marked: sentence}, nil
	}
	if i := strings.Index(sentence, term); i >= 0 {
		return domain.ClozeResult{
			Marked: sentence[:i] + Mark(term) + sentence[i+len(term):],
			Found:  true,
		}, nil
	}

	target, err := g.normalizeTerm(ctx, term)
	if err != nil {
		return domain.ClozeResult{}, err
	}

	tokens, err := g.tok.Tokenize(ctx, sentence)
	if err != nil {
		return domain.ClozeResult{}, fmt.Errorf("tokenize sentence: %w", err)
	}

	// Offsets are taken from the original sentence, so text the analyzer
	// dropped (whitespace, newlines) survives in the output.
	cursor := 0
	for _, t := range tokens {
		if t.IsBoundary() || t.Surface == "" {
			continue
		}
		off := strings.Index(sentence[cursor:], t.Surface)
		if off < 0 {
			continue
		}
		start := cursor + off
		end := start + len(t.Surface)
		cursor = end

		if normalForm(t, t.Surface) == target {
			return domain.ClozeResult{
				Marked: sentence[:start] + Mark(t.Surface) + sentence[end:],
				Found:  true,
			}, nil
		}
	}

	return domain.ClozeResult{Marked: sentence, Found: false}, nil
}

func (g *Generator) normalizeTerm(ctx context.Context, term string) (string, error) {
	tokens, err := g.tok.Tokenize(ctx, term)
	if err != nil {
		return "", fmt.Errorf("tokenize term: %w", err)
	}
	for _, t := range tokens {
		if t.IsBoundary() {
			continue
		}
		return normalForm(t, term), nil
	}
	return term, nil
}

func normalForm(t domain.Token, fallback string) string {
	switch {
	case t.NormalizedForm != "":
		return t.NormalizedForm
	case t.DictionaryForm != "":
		return t.DictionaryForm
	default:
		return fallback
	}
}
