package shuffle

import (
	"context"
	"fmt"

	"github.com/heartmarshall/sentencemine/internal/domain"
	"github.com/heartmarshall/sentencemine/internal/service/mining"
)

// Strays returns, sorted, the content words used in the deck's sentences
// that are not the Word of any note in the deck.
func (s *Service) Strays(ctx context.Context) ([]string, error) {
	notes, err := s.notes.FindNotesInfo(ctx, fmt.Sprintf(`deck:"%s"`, s.cfg.Deck))
	if err != nil {
		return nil, fmt.Errorf("find deck notes: %w", err)
	}

	words := domain.NewWordSet()
	sentences := make([]string, len(notes))
	for i, n := range notes {
		words.Add(n.Field(mining.FieldWord))
		sentences[i] = n.Field(mining.FieldSentence)
	}

	used, err := s.scorer.Vocabulary(ctx, sentences)
	if err != nil {
		return nil, err
	}
	return used.Difference(words).Sorted(), nil
}
