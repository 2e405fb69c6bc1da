package scoring

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/sentencemine/internal/domain"
)

type tokenizer interface {
	Tokenize(ctx context.Context, text string) ([]domain.Token, error)
}

// Scorer extracts content words with a tokenizer and applies SelectBest.
type Scorer struct {
	tok   tokenizer
	limit int
}

// NewScorer creates a Scorer. limit bounds concurrent tokenizer calls;
// limit < 1 means one at a time.
func NewScorer(tok tokenizer, limit int) *Scorer {
	if limit < 1 {
		limit = 1
	}
	return &Scorer{tok: tok, limit: limit}
}

// Words returns the set of content-word lemmas in text.
func (s *Scorer) Words(ctx context.Context, text string) (domain.WordSet, error) {
	tokens, err := s.tok.Tokenize(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("tokenize %q: %w", text, err)
	}
	return domain.NewWordSet(domain.ContentWords(tokens)...), nil
}

// WordsOfEach tokenizes every text concurrently and returns their word sets
// in input order.
func (s *Scorer) WordsOfEach(ctx context.Context, texts []string) ([]domain.WordSet, error) {
	out := make([]domain.WordSet, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)
	for i, text := range texts {
		g.Go(func() error {
			words, err := s.Words(gctx, text)
			if err != nil {
				return err
			}
			out[i] = words
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Vocabulary returns the union of the content words of all texts.
func (s *Scorer) Vocabulary(ctx context.Context, texts []string) (domain.WordSet, error) {
	sets, err := s.WordsOfEach(ctx, texts)
	if err != nil {
		return nil, err
	}
	vocab := make(domain.WordSet)
	for _, set := range sets {
		vocab.Merge(set)
	}
	return vocab, nil
}

// SelectBest picks the alternative whose sentence best fits the mature
// vocabulary, compared against originalSentence.
func (s *Scorer) SelectBest(ctx context.Context, originalSentence string, alternatives []domain.Candidate, mature domain.WordSet) (domain.ScoredCandidate, bool, error) {
	if len(alternatives) == 0 {
		return domain.ScoredCandidate{}, false, nil
	}

	original, err := s.Words(ctx, originalSentence)
	if err != nil {
		return domain.ScoredCandidate{}, false, err
	}

	texts := make([]string, len(alternatives))
	for i, c := range alternatives {
		texts[i] = c.Sentence.Kanji
	}
	sets, err := s.WordsOfEach(ctx, texts)
	if err != nil {
		return domain.ScoredCandidate{}, false, err
	}

	alts := make([]Alternative, len(alternatives))
	for i, c := range alternatives {
		alts[i] = Alternative{Candidate: c, Words: sets[i]}
	}

	best, ok := SelectBest(original, alts, mature)
	return best, ok, nil
}
