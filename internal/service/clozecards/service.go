// Package clozecards turns the cloze work list into cloze notes: generated
// sentences for each term, one note per sentence, grouped by a shared id.
package clozecards

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/sentencemine/internal/adapter/ankiconnect"
	"github.com/heartmarshall/sentencemine/internal/domain"
	"github.com/heartmarshall/sentencemine/internal/service/audio"
	"github.com/heartmarshall/sentencemine/pkg/ctxutil"
)

// Fields of the cloze note type.
const (
	FieldText           = "Text"
	FieldClozeAnswer    = "ClozeAnswer"
	FieldClozeReading   = "ClozeReading"
	FieldEnglish        = "English"
	FieldEnglishContext = "EnglishContext"
	FieldRtkKeywords    = "WordRtkKeywords"
	FieldGroupID        = "GroupId"
	FieldClozeAudio     = "ClozeAudio"

	TagMined       = "mined"
	TagClozeReview = "cloze-review"
)

//go:generate moq -out work_list_mock_test.go -pkg clozecards . workList
//go:generate moq -out generator_mock_test.go -pkg clozecards . generator
//go:generate moq -out audio_source_mock_test.go -pkg clozecards . audioSource
//go:generate moq -out cloze_maker_mock_test.go -pkg clozecards . clozeMaker
//go:generate moq -out note_store_mock_test.go -pkg clozecards . noteStore
//go:generate moq -out keywords_mock_test.go -pkg clozecards . keywords

type workList interface {
	ReadAll(ctx context.Context) ([]domain.WorkRow, error)
	UpdateOne(ctx context.Context, row domain.WorkRow) error
}

type generator interface {
	Generate(ctx context.Context, term string, n int) (domain.Generation, error)
}

type audioSource interface {
	Acquire(ctx context.Context, term, reading string) (audio.Clip, error)
}

type clozeMaker interface {
	Make(ctx context.Context, term, sentence string) (domain.ClozeResult, error)
}

type noteStore interface {
	AddNote(ctx context.Context, note ankiconnect.Note) (int64, error)
	RequireDeckAndModel(ctx context.Context, deck, model string) error
}

type keywords interface {
	JoinedFor(word string) string
}

// Config names the target deck and model and sizes each term's batch.
type Config struct {
	Deck             string
	Model            string
	SentencesPerTerm int
	// Workers bounds concurrent cloze marking per term.
	Workers int
}

// Result summarizes a run.
type Result struct {
	Terms  int
	Notes  int
	Review int
	// Errors counts failed rows per error code.
	Errors   map[string]int
	Duration time.Duration
}

// Service runs the cloze work list.
type Service struct {
	log      *slog.Logger
	list     workList
	gen      generator
	audio    audioSource
	cloze    clozeMaker
	store    noteStore
	keywords keywords
	cfg      Config
	newID    func() uuid.UUID
}

// NewService creates a cloze Service.
func NewService(log *slog.Logger, list workList, gen generator, a audioSource, cm clozeMaker, store noteStore, kw keywords, cfg Config) *Service {
	if cfg.SentencesPerTerm < 1 {
		cfg.SentencesPerTerm = 3
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Service{
		log:      log.With("service", "clozecards"),
		list:     list,
		gen:      gen,
		audio:    a,
		cloze:    cm,
		store:    store,
		keywords: kw,
		cfg:      cfg,
		newID:    uuid.New,
	}
}

// card is one cloze note ready to be added.
type card struct {
	sentence domain.GeneratedSentence
	marked   domain.ClozeResult
}

// Run processes every pending row. The deck and model must exist before any
// row is touched.
func (s *Service) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	log := ctxutil.Logger(ctx, s.log)
	res := Result{Errors: make(map[string]int)}

	if err := s.store.RequireDeckAndModel(ctx, s.cfg.Deck, s.cfg.Model); err != nil {
		return res, err
	}

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
		res.Terms++

		log.InfoContext(ctx, "generating cloze cards", slog.String("term", row.Term))
		ids, review, err := s.Cards(ctx, domain.NormalizeTerm(row.Term))
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return res, err
		}

		next := row.Clone()
		next.NoteIDs = ids
		next.Error = domain.ErrorCode(err)
		res.Notes += len(ids)
		res.Review += review
		if err != nil {
			res.Errors[next.Error]++
			log.WarnContext(ctx, "term failed",
				slog.String("term", row.Term),
				slog.String("code", next.Error),
				slog.Int("notes_added", len(ids)),
				slog.String("error", err.Error()),
			)
		}

		if err := s.list.UpdateOne(ctx, next); err != nil {
			return res, fmt.Errorf("write row %d: %w", row.ID, err)
		}
	}

	res.Duration = time.Since(start)
	log.InfoContext(ctx, "cloze run completed",
		slog.Int("terms", res.Terms),
		slog.Int("notes", res.Notes),
		slog.Int("review", res.Review),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// Cards generates and adds the cloze notes of one term. It returns the ids
// of the notes added, including those added before a failure, and how many
// notes were tagged for review.
func (s *Service) Cards(ctx context.Context, term string) ([]int64, int, error) {
	gen, err := s.gen.Generate(ctx, term, s.cfg.SentencesPerTerm)
	if err != nil {
		return nil, 0, err
	}
	if len(gen.Sentences) == 0 {
		return nil, 0, fmt.Errorf("generate %q: %w", term, domain.ErrNoSentences)
	}

	clip, err := s.audio.Acquire(ctx, term, gen.TermReading)
	if err != nil {
		return nil, 0, err
	}

	cards, err := s.markAll(ctx, term, gen.Sentences)
	if err != nil {
		return nil, 0, err
	}

	group := s.newID().String()
	keywords := s.keywords.JoinedFor(term)
	termAudio := ankiconnect.MediaFromBytes(clip.Data, term+"_reading.mp3", FieldClozeAudio)

	var (
		ids    []int64
		review int
	)
	for _, c := range cards {
		tags := []string{TagMined}
		if !c.marked.Found {
			tags = append(tags, TagClozeReview)
			review++
		}
		id, err := s.store.AddNote(ctx, ankiconnect.Note{
			DeckName:  s.cfg.Deck,
			ModelName: s.cfg.Model,
			Fields: map[string]string{
				FieldText:           c.marked.Marked,
				FieldClozeAnswer:    term,
				FieldClozeReading:   gen.TermReading,
				FieldEnglish:        c.sentence.English,
				FieldEnglishContext: c.sentence.EnglishContext,
				FieldRtkKeywords:    keywords,
				FieldGroupID:        group,
			},
			Audio:   []ankiconnect.Media{termAudio},
			Tags:    tags,
			Options: ankiconnect.DeckScoped(s.cfg.Deck),
		})
		if err != nil {
			return ids, review, fmt.Errorf("add cloze note for %q: %w", term, err)
		}
		ids = append(ids, id)
	}
	return ids, review, nil
}

// markAll marks term in every sentence concurrently, keeping input order.
func (s *Service) markAll(ctx context.Context, term string, sentences []domain.GeneratedSentence) ([]card, error) {
	cards := make([]card, len(sentences))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for i, sent := range sentences {
		g.Go(func() error {
			marked, err := s.cloze.Make(gctx, term, sent.Japanese)
			if err != nil {
				return fmt.Errorf("cloze %q: %w", sent.Japanese, err)
			}
			if !marked.Found {
				s.log.WarnContext(gctx, "cloze target not found, flagged for review",
					slog.String("term", term),
					slog.String("sentence", sent.Japanese),
				)
			}
			cards[i] = card{sentence: sent, marked: marked}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cards, nil
}
