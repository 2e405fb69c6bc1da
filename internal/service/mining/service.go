// Package mining runs the sentence-mining work list: for every pending term it
// finds corpus sentences, lets the reviewer pick one and writes a sentence
// card, then uploads pending pictures.
package mining

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/heartmarshall/sentencemine/internal/domain"
	"github.com/heartmarshall/sentencemine/internal/service/audio"
	"github.com/heartmarshall/sentencemine/pkg/ctxutil"
)

//go:generate moq -out work_list_mock_test.go -pkg mining . workList
//go:generate moq -out matcher_mock_test.go -pkg mining . matcher
//go:generate moq -out audio_source_mock_test.go -pkg mining . audioSource
//go:generate moq -out picker_mock_test.go -pkg mining . Picker

type workList interface {
	ReadAll(ctx context.Context) ([]domain.WorkRow, error)
	UpdateOne(ctx context.Context, row domain.WorkRow) error
}

type matcher interface {
	Search(term string) ([]domain.Candidate, error)
}

type audioSource interface {
	Acquire(ctx context.Context, term, reading string) (audio.Clip, error)
}

// Result summarizes a run.
type Result struct {
	Added       int
	Updated     int
	Images      int
	ImageErrors int
	// Errors counts failed rows per error code.
	Errors   map[string]int
	Duration time.Duration
}

// Failed returns the number of rows that ended with an error code.
func (r Result) Failed() int {
	n := 0
	for _, c := range r.Errors {
		n += c
	}
	return n
}

// Service runs the mining work list.
type Service struct {
	log      *slog.Logger
	list     workList
	matcher  matcher
	audio    audioSource
	notes    *NoteWriter
	picker   Picker
	imageDir string
}

// NewService creates a mining Service.
func NewService(log *slog.Logger, list workList, m matcher, a audioSource, notes *NoteWriter, picker Picker, imageDir string) *Service {
	return &Service{
		log:      log.With("service", "mining"),
		list:     list,
		matcher:  m,
		audio:    a,
		notes:    notes,
		picker:   picker,
		imageDir: imageDir,
	}
}

// Run processes every pending row, then every row whose picture is stale.
// Each row is written back as soon as it is processed. Row failures are
// recorded on the row; only work-list and context errors abort the run.
func (s *Service) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	log := ctxutil.Logger(ctx, s.log)
	res := Result{Errors: make(map[string]int)}

	rows, err := s.list.ReadAll(ctx)
	if err != nil {
		return res, fmt.Errorf("read work list: %w", err)
	}

	for _, row := range rows {
		if !row.Pending() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		log.InfoContext(ctx, "mining term", slog.String("term", row.Term))
		out, created := s.Mine(ctx, row)
		if errors.Is(out.Err, context.Canceled) || errors.Is(out.Err, context.DeadlineExceeded) {
			return res, out.Err
		}

		next := ApplyOutcome(row, out)
		if out.Err != nil {
			res.Errors[next.Error]++
			log.WarnContext(ctx, "term failed",
				slog.String("term", row.Term),
				slog.String("code", next.Error),
				slog.String("error", out.Err.Error()),
			)
		} else if created {
			res.Added++
		} else {
			res.Updated++
		}

		if err := s.list.UpdateOne(ctx, next); err != nil {
			return res, fmt.Errorf("write row %d: %w", row.ID, err)
		}
	}

	// Re-read so rows mined above are seen with their new note ids.
	rows, err = s.list.ReadAll(ctx)
	if err != nil {
		return res, fmt.Errorf("read work list: %w", err)
	}
	for _, row := range rows {
		if row.Error != "" || !row.NeedsImage() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		path := filepath.Join(s.imageDir, row.Image)
		if err := s.notes.AttachPicture(ctx, row.NoteIDs[0], row.Term, path); err != nil {
			res.ImageErrors++
			log.WarnContext(ctx, "picture upload failed",
				slog.String("term", row.Term),
				slog.String("image", row.Image),
				slog.String("error", err.Error()),
			)
			continue
		}

		next := row.Clone()
		next.NoteImage = row.Image
		if err := s.list.UpdateOne(ctx, next); err != nil {
			return res, fmt.Errorf("write row %d: %w", row.ID, err)
		}
		res.Images++
	}

	res.Duration = time.Since(start)
	log.InfoContext(ctx, "mining completed",
		slog.Int("added", res.Added),
		slog.Int("updated", res.Updated),
		slog.Int("failed", res.Failed()),
		slog.Int("images", res.Images),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// Mine processes one row: search, pick, term audio, note upsert. The bool
// reports whether a new note was created.
func (s *Service) Mine(ctx context.Context, row domain.WorkRow) (Outcome, bool) {
	term := domain.NormalizeTerm(row.Term)

	candidates, err := s.matcher.Search(term)
	if err != nil {
		return Outcome{Err: err}, false
	}

	complete := candidates[:0:0]
	for _, c := range candidates {
		if c.Sentence.Complete() {
			complete = append(complete, c)
		}
	}
	if len(complete) == 0 {
		return Outcome{Err: fmt.Errorf("no sentence with audio for %q: %w", term, domain.ErrNoMatchFound)}, false
	}

	i, err := s.picker.Pick(ctx, term, complete)
	if err != nil {
		return Outcome{Err: err}, false
	}
	if i < 0 || i >= len(complete) {
		return Outcome{Err: fmt.Errorf("choice %d for %q: %w", i, term, domain.ErrNoMatchFound)}, false
	}
	chosen := complete[i]

	clip, err := s.audio.Acquire(ctx, chosen.Dictionary.Expression, chosen.Dictionary.Reading)
	if err != nil {
		return Outcome{Err: err}, false
	}

	id, created, err := s.notes.Upsert(ctx, term, chosen, clip)
	if err != nil {
		return Outcome{Err: err}, false
	}
	return Outcome{NoteID: id, Sentence: chosen.Sentence.Kanji}, created
}
