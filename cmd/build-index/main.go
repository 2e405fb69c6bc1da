// Command build-index tokenizes every corpus sentence and writes the
// dictionary-form index used by mine and shuffle.
//
// Flags:
//
//	--out      index path (default: data.dictform_index)
//	--workers  tokenizer workers (default: tokenizer.workers)
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
	"github.com/heartmarshall/sentencemine/internal/dictform"
)

func main() {
	outFlag := flag.String("out", "", "index path (default: data.dictform_index)")
	workersFlag := flag.Int("workers", 0, "tokenizer workers (default: tokenizer.workers)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cfg, logger, err := app.Start(ctx, "build-index")
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	out := cfg.Data.DictformIndex
	if *outFlag != "" {
		out = *outFlag
	}
	workers := cfg.Tokenizer.Workers
	if *workersFlag > 0 {
		workers = *workersFlag
	}

	corpus, err := app.LoadCorpus(ctx, cfg, logger)
	if err != nil {
		logger.Error("load corpus", slog.String("error", err.Error()))
		os.Exit(1)
	}

	factory, err := app.TokenizerFactory(cfg.Tokenizer)
	if err != nil {
		logger.Error("create tokenizer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	builder := dictform.NewBuilder(logger, factory, workers)
	idx, err := builder.Build(ctx, corpus)
	if err != nil {
		logger.Error("build index", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := idx.Validate(corpus.Len()); err != nil {
		logger.Error("validate index", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := dictform.Save(out, idx); err != nil {
		logger.Error("save index", slog.String("path", out), slog.String("error", err.Error()))
		os.Exit(1)
	}

	stats := builder.Stats()
	logger.Info("index written",
		slog.String("path", out),
		slog.Int("sentences", stats.Sentences),
		slog.Int("keys", stats.Keys),
		slog.Duration("duration", stats.Duration),
	)
}
