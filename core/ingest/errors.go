package ingest

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFile is returned when a file has no content.
	ErrEmptyFile = errors.New("file is empty")
	// ErrNoHeader is returned when no usable header row is found.
	ErrNoHeader = errors.New("no header row found")
	// ErrUnsupportedExtension is returned for file types that cannot be parsed.
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	// ErrInvalidEncoding is returned when the content is not readable text.
	ErrInvalidEncoding = errors.New("unreadable file encoding")
	// ErrMalformed is returned when the file structure cannot be parsed.
	ErrMalformed = errors.New("malformed file")
)

// Error describes an ingestion failure for a specific file.
type Error struct {
	// File is the name of the file that failed.
	File string
	// Message is a human-readable explanation.
	Message string
	// Err is the underlying sentinel or cause.
	Err error
}

func (e *Error) Error() string {
	if e.File == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(file string, err error, format string, args ...any) *Error {
	return &Error{File: file, Message: fmt.Sprintf(format, args...), Err: err}
}

// IsIngestError reports whether err is an ingestion failure that should be
// surfaced to the user rather than treated as an internal error.
func IsIngestError(err error) bool {
	var ie *Error
	return errors.As(err, &ie)
}
