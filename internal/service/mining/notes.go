package mining

import (
	"context"
	"fmt"
	"math/rand/v2"
	"path/filepath"

	"github.com/heartmarshall/sentencemine/internal/adapter/ankiconnect"
	"github.com/heartmarshall/sentencemine/internal/domain"
	"github.com/heartmarshall/sentencemine/internal/service/audio"
)

// Fields of the sentence card note type.
const (
	FieldWord            = "Word"
	FieldReading         = "Reading"
	FieldGlossary        = "Glossary"
	FieldSentence        = "Sentence"
	FieldSentenceEnglish = "Sentence-English"
	FieldRtkKeywords     = "WordRtkKeywords"
	FieldPicture         = "Picture"
	FieldAudio           = "Audio"
	FieldSentenceAudio   = "Sentence-Audio"

	TagMined = "mined"
)

//go:generate moq -out note_store_mock_test.go -pkg mining . noteStore
//go:generate moq -out keywords_mock_test.go -pkg mining . keywords

type noteStore interface {
	AddNote(ctx context.Context, note ankiconnect.Note) (int64, error)
	UpdateNote(ctx context.Context, note ankiconnect.Note) error
	FindFirstNote(ctx context.Context, deck, field, value string) (int64, error)
}

type keywords interface {
	JoinedFor(word string) string
}

// NoteWriter turns a chosen candidate into a sentence card.
type NoteWriter struct {
	store    noteStore
	keywords keywords
	deck     string
	model    string
	mediaDir string
	intN     func(n int) int
}

// NewNoteWriter creates a NoteWriter for deck/model. mediaDir holds the
// corpus sentence audio.
func NewNoteWriter(store noteStore, kw keywords, deck, model, mediaDir string) *NoteWriter {
	return &NoteWriter{
		store:    store,
		keywords: kw,
		deck:     deck,
		model:    model,
		mediaDir: mediaDir,
		intN:     rand.IntN,
	}
}

// Upsert updates the deck's note whose Word is term, or adds a new one.
// It returns the note id and whether the note was created.
func (w *NoteWriter) Upsert(ctx context.Context, term string, c domain.Candidate, termAudio audio.Clip) (int64, bool, error) {
	existing, err := w.store.FindFirstNote(ctx, w.deck, FieldWord, term)
	if err != nil {
		return 0, false, fmt.Errorf("find note for %q: %w", term, err)
	}
	if existing != 0 {
		if err := w.Update(ctx, existing, term, c, termAudio); err != nil {
			return 0, false, err
		}
		return existing, false, nil
	}

	note, err := w.build(term, c, termAudio)
	if err != nil {
		return 0, false, err
	}
	note.DeckName = w.deck
	note.ModelName = w.model
	note.Options = ankiconnect.DeckScoped(w.deck)

	id, err := w.store.AddNote(ctx, note)
	if err != nil {
		return 0, false, fmt.Errorf("add note for %q: %w", term, err)
	}
	return id, true, nil
}

// Update rewrites note id with the candidate's sentence and the term audio.
func (w *NoteWriter) Update(ctx context.Context, id int64, term string, c domain.Candidate, termAudio audio.Clip) error {
	note, err := w.build(term, c, termAudio)
	if err != nil {
		return err
	}
	note.ID = id
	if err := w.store.UpdateNote(ctx, note); err != nil {
		return fmt.Errorf("update note %d for %q: %w", id, term, err)
	}
	return nil
}

func (w *NoteWriter) build(term string, c domain.Candidate, termAudio audio.Clip) (ankiconnect.Note, error) {
	if !c.Sentence.HasAudio() {
		return ankiconnect.Note{}, fmt.Errorf("sentence %d has no audio: %w", c.Sentence.Position, domain.ErrNoMatchFound)
	}
	file := c.Sentence.AudioFiles[w.intN(len(c.Sentence.AudioFiles))]

	sentenceAudio, err := ankiconnect.MediaFromFile(
		filepath.Join(w.mediaDir, file),
		fmt.Sprintf("%s_sentence_%s.mp3", term, file),
		FieldSentenceAudio,
	)
	if err != nil {
		return ankiconnect.Note{}, err
	}

	return ankiconnect.Note{
		Fields: map[string]string{
			FieldWord:            term,
			FieldReading:         c.Dictionary.Reading,
			FieldGlossary:        c.Dictionary.RenderGlossary(),
			FieldSentence:        c.Sentence.Kanji,
			FieldSentenceEnglish: c.Sentence.English,
			FieldRtkKeywords:     w.keywords.JoinedFor(term),
		},
		Audio: []ankiconnect.Media{
			sentenceAudio,
			ankiconnect.MediaFromBytes(termAudio.Data, term+"_reading.mp3", FieldAudio),
		},
		Tags: []string{TagMined},
	}, nil
}

// AttachPicture uploads the image file to the note's Picture field.
func (w *NoteWriter) AttachPicture(ctx context.Context, id int64, term, imagePath string) error {
	picture, err := ankiconnect.MediaFromFile(imagePath, term+"_"+filepath.Base(imagePath), FieldPicture)
	if err != nil {
		return err
	}
	if err := w.store.UpdateNote(ctx, ankiconnect.Note{ID: id, Picture: []ankiconnect.Media{picture}}); err != nil {
		return fmt.Errorf("attach picture to note %d: %w", id, err)
	}
	return nil
}
