// Command shuffle replaces the sentences of existing sentence cards with
// corpus alternatives that use more of the learner's mature vocabulary.
//
// Flags:
//
//	--limit  notes to consider (default: shuffle.limit)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/sentencemine/internal/app"
	"github.com/heartmarshall/sentencemine/internal/scoring"
	"github.com/heartmarshall/sentencemine/internal/service/mining"
	"github.com/heartmarshall/sentencemine/internal/service/shuffle"
)

func main() {
	limitFlag := flag.Int("limit", 0, "notes to consider (default: shuffle.limit)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cfg, logger, err := app.Start(ctx, "shuffle")
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	limit := cfg.Shuffle.Limit
	if *limitFlag > 0 {
		limit = *limitFlag
	}

	data, err := app.LoadData(ctx, cfg, logger)
	if err != nil {
		logger.Error("load data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	tok, err := app.NewTokenizer(cfg.Tokenizer)
	if err != nil {
		logger.Error("create tokenizer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	audioSvc, err := app.NewAudioService(cfg, logger)
	if err != nil {
		logger.Error("create audio service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	client := app.NewAnkiClient(cfg.Anki, logger)
	notes := mining.NewNoteWriter(client, data.Keywords, cfg.Anki.Deck, cfg.Anki.Model, data.Corpus.MediaDir)
	svc := shuffle.NewService(logger, client, data.Matcher(), scoring.NewScorer(tok, cfg.Tokenizer.Workers),
		audioSvc, notes, shuffle.Config{
			Deck:        cfg.Anki.Deck,
			MatureQuery: cfg.Anki.MatureQuery,
			Limit:       limit,
		})

	if _, err := svc.Run(ctx); err != nil {
		logger.Error("shuffle failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
