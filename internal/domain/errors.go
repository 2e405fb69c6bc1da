package domain

import (
	"errors"
	"fmt"
)

// Storage and input sentinels, mapped from driver errors by the adapters.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// ErrNoMatchFound means the matcher produced zero candidate sentences.
	ErrNoMatchFound = errors.New("no matching sentence")
	// ErrNoDictionaryEntry means sentences matched but the term has no glossary
	// entry. Usually the term was not given in canonical dictionary form.
	ErrNoDictionaryEntry = errors.New("search term may not be in canonical dictionary form")
	// ErrClozeNotFound means the cloze generator fell back to unmarked output.
	ErrClozeNotFound = errors.New("cloze target not found in sentence")
	// ErrNoAudioAvailable means every audio provider was exhausted.
	ErrNoAudioAvailable = errors.New("no audio available")
	// ErrDuplicateEntry means the note store rejected a create because the
	// term already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")
	// ErrNoNoteID means the note store accepted a request but returned no id.
	ErrNoNoteID = errors.New("note store returned no id")
	// ErrUserSkipped means the reviewer declined every candidate.
	ErrUserSkipped = errors.New("skipped by user")
	// ErrNoSentences means the sentence generator produced nothing usable.
	ErrNoSentences = errors.New("no sentences generated")
)

// Error codes recorded on work rows. They are stable strings because they are
// persisted and compared across runs.
const (
	CodeNoSentence        = "no-sentence"
	CodeNoDictionaryEntry = "no-dictionary-entry"
	CodeNoAudio           = "no-audio"
	CodeDuplicate         = "duplicate"
	CodeNoNID             = "no-nid"
	CodeUserSkipped       = "user-skipped"
	CodeNoSentences       = "no-sentences"
	CodeClozeNotFound     = "cloze-not-found"
	CodeFailed            = "failed"
)

// ErrorCode maps an error to the code stored on a work row.
// Unknown errors map to CodeFailed; nil maps to "".
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoMatchFound):
		return CodeNoSentence
	case errors.Is(err, ErrNoDictionaryEntry):
		return CodeNoDictionaryEntry
	case errors.Is(err, ErrNoAudioAvailable):
		return CodeNoAudio
	case errors.Is(err, ErrDuplicateEntry):
		return CodeDuplicate
	case errors.Is(err, ErrNoNoteID):
		return CodeNoNID
	case errors.Is(err, ErrUserSkipped):
		return CodeUserSkipped
	case errors.Is(err, ErrNoSentences):
		return CodeNoSentences
	case errors.Is(err, ErrClozeNotFound):
		return CodeClozeNotFound
	default:
		return CodeFailed
	}
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
