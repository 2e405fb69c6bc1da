// Command mine processes the mining work list: for every pending term it
// shows matching corpus sentences, adds or updates the sentence card and
// uploads pending pictures.
//
// Flags:
//
//	--auto    take the first candidate instead of prompting
//	--import  replace the configured work list with the rows of the mining CSV first
//
// Exit codes: 0 = success (row failures are recorded on the rows), 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/sentencemine/internal/app"
	"github.com/heartmarshall/sentencemine/internal/config"
	"github.com/heartmarshall/sentencemine/internal/service/mining"
)

func main() {
	autoFlag := flag.Bool("auto", false, "take the first candidate instead of prompting")
	importFlag := flag.Bool("import", false, "replace the work list with the rows of the mining CSV first")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cfg, logger, err := app.Start(ctx, "mine")
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	if err := run(ctx, cfg, logger, *autoFlag, *importFlag); err != nil {
		logger.Error("mining failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, auto, importCSV bool) error {
	data, err := app.LoadData(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	audioSvc, err := app.NewAudioService(cfg, logger)
	if err != nil {
		return fmt.Errorf("create audio service: %w", err)
	}

	var picker mining.Picker = mining.NewStdinPicker(os.Stdin, os.Stdout)
	if auto {
		picker = mining.FirstPicker{}
	}

	client := app.NewAnkiClient(cfg.Anki, logger)
	notes := mining.NewNoteWriter(client, data.Keywords, cfg.Anki.Deck, cfg.Anki.Model, data.Corpus.MediaDir)

	return app.RunWithWorkList(ctx, cfg, app.ListMining, importCSV, logger, func(ctx context.Context, list app.WorkList) error {
		svc := mining.NewService(logger, list, data.Matcher(), audioSvc, notes, picker, cfg.Data.ImageDir)

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
