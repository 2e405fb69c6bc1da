// Package shuffle replaces the sentences of existing sentence cards with
// corpus alternatives that better fit the learner's mature vocabulary.
package shuffle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/sentencemine/internal/adapter/ankiconnect"
	"github.com/heartmarshall/sentencemine/internal/domain"
	"github.com/heartmarshall/sentencemine/internal/service/audio"
	"github.com/heartmarshall/sentencemine/internal/service/mining"
	"github.com/heartmarshall/sentencemine/pkg/ctxutil"
)

// DefaultMatureQuery selects reviewed cards with an interval above three weeks.
const DefaultMatureQuery = "-is:suspended prop:ivl>21"

//go:generate moq -out note_finder_mock_test.go -pkg shuffle . noteFinder
//go:generate moq -out matcher_mock_test.go -pkg shuffle . matcher
//go:generate moq -out scorer_mock_test.go -pkg shuffle . scorer
//go:generate moq -out audio_source_mock_test.go -pkg shuffle . audioSource
//go:generate moq -out note_updater_mock_test.go -pkg shuffle . noteUpdater

type noteFinder interface {
	FindNotesInfo(ctx context.Context, query string) ([]ankiconnect.NoteInfo, error)
}

type matcher interface {
	Search(term string) ([]domain.Candidate, error)
}

type scorer interface {
	Vocabulary(ctx context.Context, texts []string) (domain.WordSet, error)
	SelectBest(ctx context.Context, originalSentence string, alternatives []domain.Candidate, mature domain.WordSet) (domain.ScoredCandidate, bool, error)
}

type audioSource interface {
	Acquire(ctx context.Context, term, reading string) (audio.Clip, error)
}

type noteUpdater interface {
	Update(ctx context.Context, id int64, term string, c domain.Candidate, termAudio audio.Clip) error
}

// Config selects the deck and bounds a run.
type Config struct {
	Deck        string
	MatureQuery string
	Limit       int
}

// Result summarizes a run.
type Result struct {
	Considered int
	Updated    int
	NoBetter   int
	Failed     int
	Duration   time.Duration
}

// Service runs shuffle passes over one deck.
type Service struct {
	log     *slog.Logger
	notes   noteFinder
	matcher matcher
	scorer  scorer
	audio   audioSource
	updater noteUpdater
	cfg     Config
}

// NewService creates a shuffle Service.
func NewService(log *slog.Logger, notes noteFinder, m matcher, sc scorer, a audioSource, u noteUpdater, cfg Config) *Service {
	if cfg.MatureQuery == "" {
		cfg.MatureQuery = DefaultMatureQuery
	}
	if cfg.Limit <= 0 {
		cfg.Limit = 25
	}
	return &Service{
		log:     log.With("service", "shuffle"),
		notes:   notes,
		matcher: m,
		scorer:  sc,
		audio:   a,
		updater: u,
		cfg:     cfg,
	}
}

func (s *Service) query(q string) string {
	return fmt.Sprintf(`deck:"%s" %s`, s.cfg.Deck, q)
}

// MatureWords returns the content words of the Sentence field of every mature note.
func (s *Service) MatureWords(ctx context.Context) (domain.WordSet, error) {
	notes, err := s.notes.FindNotesInfo(ctx, s.query(s.cfg.MatureQuery))
	if err != nil {
		return nil, fmt.Errorf("find mature notes: %w", err)
	}
	sentences := make([]string, len(notes))
	for i, n := range notes {
		sentences[i] = n.Field(mining.FieldSentence)
	}
	return s.scorer.Vocabulary(ctx, sentences)
}

// NotesToUpdate returns unsuspended notes without a picture, at most Limit.
func (s *Service) NotesToUpdate(ctx context.Context) ([]ankiconnect.NoteInfo, error) {
	notes, err := s.notes.FindNotesInfo(ctx, s.query("-is:suspended"))
	if err != nil {
		return nil, fmt.Errorf("find notes to update: %w", err)
	}
	var out []ankiconnect.NoteInfo
	for _, n := range notes {
		if n.Field(mining.FieldPicture) != "" {
			continue
		}
		out = append(out, n)
		if len(out) == s.cfg.Limit {
			break
		}
	}
	return out, nil
}

// Run replaces sentences of up to Limit notes. Per-note failures are logged
// and counted; only note-store query and context errors abort.
func (s *Service) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	log := ctxutil.Logger(ctx, s.log)
	var res Result

	mature, err := s.MatureWords(ctx)
	if err != nil {
		return res, err
	}
	log.InfoContext(ctx, "mature vocabulary loaded", slog.Int("words", len(mature)))

	notes, err := s.NotesToUpdate(ctx)
	if err != nil {
		return res, err
	}

	for _, note := range notes {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Considered++

		updated, err := s.shuffleNote(ctx, log, note, mature)
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			return res, err
		case err != nil:
			res.Failed++
			log.WarnContext(ctx, "note not shuffled",
				slog.Int64("note_id", note.NoteID),
				slog.String("word", note.Field(mining.FieldWord)),
				slog.String("error", err.Error()),
			)
		case !updated:
			res.NoBetter++
			log.InfoContext(ctx, "no better sentence",
				slog.Int64("note_id", note.NoteID),
				slog.String("sentence", note.Field(mining.FieldSentence)),
			)
		default:
			res.Updated++
		}
	}

	res.Duration = time.Since(start)
	log.InfoContext(ctx, "shuffle completed",
		slog.Int("considered", res.Considered),
		slog.Int("updated", res.Updated),
		slog.Int("no_better", res.NoBetter),
		slog.Int("failed", res.Failed),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

func (s *Service) shuffleNote(ctx context.Context, log *slog.Logger, note ankiconnect.NoteInfo, mature domain.WordSet) (bool, error) {
	word := note.Field(mining.FieldWord)
	original := note.Field(mining.FieldSentence)
	english := note.Field(mining.FieldSentenceEnglish)

	candidates, err := s.matcher.Search(word)
	if err != nil {
		return false, err
	}

	var alternatives []domain.Candidate
	for _, c := range candidates {
		if c.Sentence.English == english || !c.Sentence.Complete() {
			continue
		}
		alternatives = append(alternatives, c)
	}

	best, ok, err := s.scorer.SelectBest(ctx, original, alternatives, mature)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	clip, err := s.audio.Acquire(ctx, best.Candidate.Dictionary.Expression, best.Candidate.Dictionary.Reading)
	if err != nil {
		return false, err
	}
	if err := s.updater.Update(ctx, note.NoteID, word, best.Candidate, clip); err != nil {
		return false, err
	}

	log.InfoContext(ctx, "sentence replaced",
		slog.Int64("note_id", note.NoteID),
		slog.String("from", original),
		slog.String("to", best.Candidate.Sentence.Kanji),
		slog.Float64("score", best.Score),
	)
	return true, nil
}
