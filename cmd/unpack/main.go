// Command unpack extracts the sentence deck .apkg into the deck folder read
// by the other commands.
//
// Flags:
//
//	--apkg  archive path (default: data.apkg_path)
//	--dest  destination folder (default: data.deck_folder)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/sentencemine/internal/adapter/corpus/anki"
	"github.com/heartmarshall/sentencemine/internal/app"
)

func main() {
	apkgFlag := flag.String("apkg", "", "archive path (default: data.apkg_path)")
	destFlag := flag.String("dest", "", "destination folder (default: data.deck_folder)")
	flag.Parse()

	_, cfg, logger, err := app.Start(context.Background(), "unpack")
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	apkg := cfg.Data.APKGPath
	if *apkgFlag != "" {
		apkg = *apkgFlag
	}
	dest := cfg.Data.DeckFolder
	if *destFlag != "" {
		dest = *destFlag
	}

	n, err := anki.Unpack(apkg, dest)
	if err != nil {
		logger.Error("unpack failed", slog.String("apkg", apkg), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("deck unpacked", slog.String("dest", dest), slog.Int("files", n))
}
