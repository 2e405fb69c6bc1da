package dictform

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/sentencemine/internal/domain"
)

// Tokenizer is the morphological analyzer port.
type Tokenizer interface {
	Tokenize(ctx context.Context, text string) ([]domain.Token, error)
}

// TokenizerFactory creates a tokenizer handle. Each worker owns the handle it
// creates and closes it when done if it implements io.Closer.
type TokenizerFactory func() (Tokenizer, error)

// BuildStats summarizes a build.
type BuildStats struct {
	Sentences int
	Keys      int
	Duration  time.Duration
}

// Builder turns a corpus into an Index.
type Builder struct {
	log        *slog.Logger
	newTok     TokenizerFactory
	workers    int
	lastResult BuildStats
}

// NewBuilder creates a Builder. workers < 1 is treated as 1.
func NewBuilder(log *slog.Logger, newTok TokenizerFactory, workers int) *Builder {
	if workers < 1 {
		workers = 1
	}
	return &Builder{
		log:     log.With("service", "dictform"),
		newTok:  newTok,
		workers: workers,
	}
}

// Stats returns the statistics of the last successful build.
func (b *Builder) Stats() BuildStats {
	return b.lastResult
}

// Build tokenizes every sentence and indexes the lemma of each content token.
// Any tokenizer failure aborts the build and no index is returned.
func (b *Builder) Build(ctx context.Context, corpus *domain.Corpus) (*Index, error) {
	start := time.Now()
	n := corpus.Len()
	b.log.Info("building dictform index", slog.Int("sentences", n), slog.Int("workers", b.workers))

	keys := make([][]string, n)

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int)

	g.Go(func() error {
		defer close(jobs)
		for pos := 0; pos < n; pos++ {
			select {
			case jobs <- pos:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < b.workers; w++ {
		g.Go(func() error {
			tok, err := b.newTok()
			if err != nil {
				return fmt.Errorf("create tokenizer: %w", err)
			}
			if c, ok := tok.(io.Closer); ok {
				defer c.Close()
			}
			for pos := range jobs {
				words, err := sentenceKeys(gctx, tok, corpus.Sentences[pos].Kanji)
				if err != nil {
					return fmt.Errorf("tokenize sentence %d: %w", pos, err)
				}
				// Each position is written by exactly one worker.
				keys[pos] = words
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build dictform index: %w", err)
	}

	idx := NewIndex()
	for pos, words := range keys {
		for _, w := range words {
			idx.Add(w, pos)
		}
	}

	b.lastResult = BuildStats{Sentences: n, Keys: idx.Len(), Duration: time.Since(start)}
	b.log.Info("dictform index built",
		slog.Int("sentences", n),
		slog.Int("keys", idx.Len()),
		slog.Duration("duration", b.lastResult.Duration),
	)
	return idx, nil
}

func sentenceKeys(ctx context.Context, tok Tokenizer, text string) ([]string, error) {
	tokens, err := tok.Tokenize(ctx, text)
	if err != nil {
		return nil, err
	}
	return domain.ContentWords(tokens), nil
}
