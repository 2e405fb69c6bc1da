package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/sentencemine/internal/adapter/corpus/anki"
	"github.com/heartmarshall/sentencemine/internal/adapter/glossary/yomitan"
	"github.com/heartmarshall/sentencemine/internal/adapter/rtk"
	"github.com/heartmarshall/sentencemine/internal/config"
	"github.com/heartmarshall/sentencemine/internal/dictform"
	"github.com/heartmarshall/sentencemine/internal/domain"
	"github.com/heartmarshall/sentencemine/internal/search"
)

// Data is everything a mining or shuffle run reads at startup.
type Data struct {
	Corpus     *domain.Corpus
	Index      *dictform.Index
	Dictionary *yomitan.Dictionary
	Keywords   *rtk.Table
}

// LoadCorpus reads the sentence corpus from the unpacked deck folder.
func LoadCorpus(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*domain.Corpus, error) {
	return anki.Load(ctx, logger, cfg.Data.DeckFolder, anki.Fields{
		Kanji:   cfg.Corpus.KanjiField(),
		English: cfg.Corpus.EnglishField(),
		Audio:   cfg.Corpus.AudioField(),
	})
}

// LoadData loads the corpus, index, glossary and keyword table concurrently,
// then checks that the index fits the corpus. Any failure is fatal for the
// run.
func LoadData(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Data, error) {
	start := time.Now()
	var d Data

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := LoadCorpus(gctx, cfg, logger)
		d.Corpus = c
		return err
	})
	g.Go(func() error {
		idx, err := dictform.Load(cfg.Data.DictformIndex)
		d.Index = idx
		return err
	})
	g.Go(func() error {
		dict, err := yomitan.Load(logger, cfg.Data.GlossaryGlob)
		d.Dictionary = dict
		return err
	})
	g.Go(func() error {
		kw, err := rtk.Load(cfg.Data.RTKKeywords, logger)
		d.Keywords = kw
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := d.Index.Validate(d.Corpus.Len()); err != nil {
		return nil, fmt.Errorf("index %s does not match corpus: %w", cfg.Data.DictformIndex, err)
	}

	logger.Info("data loaded",
		slog.Int("sentences", d.Corpus.Len()),
		slog.Int("index_keys", d.Index.Len()),
		slog.Int("glossary_entries", d.Dictionary.Len()),
		slog.Int("rtk_keywords", d.Keywords.Len()),
		slog.Duration("duration", time.Since(start)),
	)
	return &d, nil
}

// Matcher returns a sentence matcher over the loaded data.
func (d *Data) Matcher() *search.Matcher {
	return search.NewMatcher(d.Index, d.Corpus, d.Dictionary)
}
