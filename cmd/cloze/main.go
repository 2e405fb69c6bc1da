// Command cloze processes the cloze work list: for every pending term it
// generates example sentences, marks the term in each and adds one cloze
// note per sentence.
//
// Flags:
//
//	--import  replace the configured work list with the rows of the cloze CSV first
//
// Exit codes: 0 = success (row failures are recorded on the rows), 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/sentencemine/internal/adapter/llm/anthropic"
	"github.com/heartmarshall/sentencemine/internal/adapter/rtk"
	"github.com/heartmarshall/sentencemine/internal/app"
	"github.com/heartmarshall/sentencemine/internal/cloze"
	"github.com/heartmarshall/sentencemine/internal/config"
	"github.com/heartmarshall/sentencemine/internal/service/clozecards"
)

func main() {
	importFlag := flag.Bool("import", false, "replace the work list with the rows of the cloze CSV first")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cfg, logger, err := app.Start(ctx, "cloze")
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	if err := run(ctx, cfg, logger, *importFlag); err != nil {
		logger.Error("cloze run failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, importCSV bool) error {
	if cfg.LLM.APIKey == "" {
		return errors.New("llm.api_key (ANTHROPIC_API_KEY) is required")
	}

	keywords, err := rtk.Load(cfg.Data.RTKKeywords, logger)
	if err != nil {
		return fmt.Errorf("load rtk keywords: %w", err)
	}

	tok, err := app.NewTokenizer(cfg.Tokenizer)
	if err != nil {
		return fmt.Errorf("create tokenizer: %w", err)
	}

	audioSvc, err := app.NewAudioService(cfg, logger)
	if err != nil {
		return fmt.Errorf("create audio service: %w", err)
	}

	gen := anthropic.NewGenerator(cfg.LLM.APIKey, cfg.LLM.Model, logger)
	client := app.NewAnkiClient(cfg.Anki, logger)

	return app.RunWithWorkList(ctx, cfg, app.ListCloze, importCSV, logger, func(ctx context.Context, list app.WorkList) error {
		svc := clozecards.NewService(logger, list, gen, audioSvc, cloze.NewGenerator(tok), client, keywords,
			clozecards.Config{
				Deck:             cfg.Anki.ClozeDeck,
				Model:            cfg.Anki.ClozeModel,
				SentencesPerTerm: cfg.LLM.SentencesPerTerm,
				Workers:          cfg.Tokenizer.Workers,
			})

		res, err := svc.Run(ctx)
		if err != nil {
			return err
		}
		for code, n := range res.Errors {
			logger.Warn("rows failed", slog.String("code", code), slog.Int("count", n))
		}
		return nil
	})
}
