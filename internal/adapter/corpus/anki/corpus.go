// Package anki reads the sentence corpus from an unpacked Anki package.
package anki

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/heartmarshall/sentencemine/internal/domain"
)

// Fields are the note field positions holding the corpus data.
type Fields struct {
	Kanji   int
	English int
	Audio   int
}

// DefaultFields matches the sentence pack note type.
var DefaultFields = Fields{Kanji: 0, English: 2, Audio: 3}

var (
	breakRe = regexp.MustCompile(`<br\s*/?>`)
	soundRe = regexp.MustCompile(`\[sound:(.*?)\]`)
)

// Load reads every note of the collection in folder into a corpus. Positions
// follow note id order. It fails when the collection is missing, unreadable
// or empty.
func Load(ctx context.Context, log *slog.Logger, folder string, fields Fields) (*domain.Corpus, error) {
	notes, err := readNotes(ctx, folder)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	if len(notes) == 0 {
		return nil, fmt.Errorf("load corpus: collection in %s has no notes", folder)
	}

	media, err := readMedia(folder)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	byName := reverse(media)

	corpus := &domain.Corpus{
		Sentences: make([]domain.Sentence, len(notes)),
		MediaDir:  folder,
	}
	missing := 0
	for pos, flds := range notes {
		s := toSentence(pos, flds, fields, byName)
		missing += s.MissingAudio
		corpus.Sentences[pos] = s
	}

	log.Info("corpus loaded",
		slog.String("folder", folder),
		slog.Int("sentences", len(notes)),
		slog.Int("media", len(media)),
		slog.Int("missing_audio", missing),
	)
	return corpus, nil
}

func toSentence(pos int, flds []string, fields Fields, byName map[string]string) domain.Sentence {
	s := domain.Sentence{
		Position: pos,
		Kanji:    strings.TrimSpace(field(flds, fields.Kanji)),
		English:  strings.TrimSpace(breakRe.Split(field(flds, fields.English), 2)[0]),
	}
	for _, m := range soundRe.FindAllStringSubmatch(field(flds, fields.Audio), -1) {
		if stored, ok := byName[m[1]]; ok {
			s.AudioFiles = append(s.AudioFiles, stored)
		} else {
			s.MissingAudio++
		}
	}
	return s
}

func field(flds []string, i int) string {
	if i < 0 || i >= len(flds) {
		return ""
	}
	return flds[i]
}
