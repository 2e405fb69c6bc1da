package ankiconnect

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"sort"

	"github.com/heartmarshall/sentencemine/internal/domain"
)

// Media attaches a file to note fields. Either Path (read by Anki itself) or
// Data (base64 content) is set.
type Media struct {
	Filename string   `json:"filename"`
	Path     string   `json:"path,omitempty"`
	Data     string   `json:"data,omitempty"`
	Fields   []string `json:"fields"`
}

// MediaFromFile reads path and embeds it as base64 data, so the Anki process
// does not need access to the local filesystem.
func MediaFromFile(path, filename string, fields ...string) (Media, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Media{}, fmt.Errorf("read media %s: %w", path, err)
	}
	return MediaFromBytes(data, filename, fields...), nil
}

// MediaFromBytes embeds data as base64.
func MediaFromBytes(data []byte, filename string, fields ...string) Media {
	return Media{Filename: filename, Data: base64.StdEncoding.EncodeToString(data), Fields: fields}
}

// DuplicateScopeOptions narrows duplicate checks.
type DuplicateScopeOptions struct {
	DeckName string `json:"deckName,omitempty"`
}

// NoteOptions controls addNote duplicate handling.
type NoteOptions struct {
	AllowDuplicate        bool                   `json:"allowDuplicate"`
	DuplicateScope        string                 `json:"duplicateScope,omitempty"`
	DuplicateScopeOptions *DuplicateScopeOptions `json:"duplicateScopeOptions,omitempty"`
}

// Note is the payload of addNote and updateNote.
type Note struct {
	ID        int64             `json:"id,omitempty"`
	DeckName  string            `json:"deckName,omitempty"`
	ModelName string            `json:"modelName,omitempty"`
	Fields    map[string]string `json:"fields"`
	Tags      []string          `json:"tags,omitempty"`
	Audio     []Media           `json:"audio,omitempty"`
	Picture   []Media           `json:"picture,omitempty"`
	Options   *NoteOptions      `json:"options,omitempty"`
}

// DeckScoped returns options that reject duplicates within deck.
func DeckScoped(deck string) *NoteOptions {
	return &NoteOptions{
		DuplicateScope:        "deck",
		DuplicateScopeOptions: &DuplicateScopeOptions{DeckName: deck},
	}
}

// FieldValue is one field of notesInfo output.
type FieldValue struct {
	Value string `json:"value"`
	Order int    `json:"order"`
}

// NoteInfo is one element of notesInfo output.
type NoteInfo struct {
	NoteID    int64                 `json:"noteId"`
	ModelName string                `json:"modelName"`
	Tags      []string              `json:"tags"`
	Fields    map[string]FieldValue `json:"fields"`
}

// Field returns the value of a field, or "" when absent.
func (n NoteInfo) Field(name string) string {
	return n.Fields[name].Value
}

// AddNote creates a note and returns its id. A duplicate rejection matches
// domain.ErrDuplicateEntry; a null id is domain.ErrNoNoteID.
func (c *Client) AddNote(ctx context.Context, note Note) (int64, error) {
	var id *int64
	if err := c.invoke(ctx, "addNote", map[string]any{"note": note}, &id); err != nil {
		return 0, err
	}
	if id == nil || *id == 0 {
		return 0, fmt.Errorf("ankiconnect addNote: %w", domain.ErrNoNoteID)
	}
	return *id, nil
}

// UpdateNote replaces fields, media and tags of an existing note. note.ID
// must be set.
func (c *Client) UpdateNote(ctx context.Context, note Note) error {
	if note.ID == 0 {
		return fmt.Errorf("ankiconnect updateNote: note id is required")
	}
	if note.Fields == nil {
		note.Fields = map[string]string{}
	}
	return c.invoke(ctx, "updateNote", map[string]any{"note": note}, nil)
}

// FindNotes runs an Anki search query and returns matching note ids.
func (c *Client) FindNotes(ctx context.Context, query string) ([]int64, error) {
	var ids []int64
	if err := c.invoke(ctx, "findNotes", map[string]any{"query": query}, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// NotesInfo returns the notes with the given ids.
func (c *Client) NotesInfo(ctx context.Context, ids []int64) ([]NoteInfo, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var notes []NoteInfo
	if err := c.invoke(ctx, "notesInfo", map[string]any{"notes": ids}, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// FindNotesInfo combines FindNotes and NotesInfo.
func (c *Client) FindNotesInfo(ctx context.Context, query string) ([]NoteInfo, error) {
	ids, err := c.FindNotes(ctx, query)
	if err != nil {
		return nil, err
	}
	return c.NotesInfo(ctx, ids)
}

// FindFirstNote returns the first note id in deck whose field equals value,
// or 0 when there is none.
func (c *Client) FindFirstNote(ctx context.Context, deck, field, value string) (int64, error) {
	ids, err := c.FindNotes(ctx, fmt.Sprintf(`"deck:%s" "%s:%s"`, deck, field, value))
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	return ids[0], nil
}

// DeckNames lists deck names, sorted.
func (c *Client) DeckNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.invoke(ctx, "deckNames", nil, &names); err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// ModelNames lists note type names, sorted.
func (c *Client) ModelNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.invoke(ctx, "modelNames", nil, &names); err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// RequireDeckAndModel fails unless both the deck and the note type exist.
func (c *Client) RequireDeckAndModel(ctx context.Context, deck, model string) error {
	decks, err := c.DeckNames(ctx)
	if err != nil {
		return err
	}
	if !contains(decks, deck) {
		return fmt.Errorf("deck %q does not exist", deck)
	}
	models, err := c.ModelNames(ctx)
	if err != nil {
		return err
	}
	if !contains(models, model) {
		return fmt.Errorf("note type %q does not exist", model)
	}
	return nil
}

func contains(sorted []string, s string) bool {
	i := sort.SearchStrings(sorted, s)
	return i < len(sorted) && sorted[i] == s
}
