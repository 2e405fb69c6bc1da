// Command strays lists the words used in the deck's sentences that are not
// the Word of any note, as a JSON array.
//
// Flags:
//
//	--out  output file (default: stdout)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/sentencemine/internal/app"
	"github.com/heartmarshall/sentencemine/internal/scoring"
	"github.com/heartmarshall/sentencemine/internal/service/shuffle"
)

func main() {
	outFlag := flag.String("out", "", "output file (default: stdout)")
	flag.Parse()

	ctx, cfg, logger, err := app.Start(context.Background(), "strays")
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	tok, err := app.NewTokenizer(cfg.Tokenizer)
	if err != nil {
		logger.Error("create tokenizer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	client := app.NewAnkiClient(cfg.Anki, logger)
	svc := shuffle.NewService(logger, client, nil, scoring.NewScorer(tok, cfg.Tokenizer.Workers), nil, nil,
		shuffle.Config{Deck: cfg.Anki.Deck})

	strays, err := svc.Strays(ctx)
	if err != nil {
		logger.Error("list strays", slog.String("error", err.Error()))
		os.Exit(1)
	}

	out, err := json.MarshalIndent(strays, "", "  ")
	if err != nil {
		logger.Error("encode strays", slog.String("error", err.Error()))
		os.Exit(1)
	}
	out = append(out, '\n')

	if *outFlag == "" {
		_, _ = os.Stdout.Write(out)
	} else if err := os.WriteFile(*outFlag, out, 0o644); err != nil {
		logger.Error("write strays", slog.String("path", *outFlag), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("strays listed", slog.Int("words", len(strays)))
}
