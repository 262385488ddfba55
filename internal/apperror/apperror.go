package apperror

import (
	"errors"
	"net/http"
)

// Error is an application-raised failure that already knows how it should be
// reported over HTTP.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an application error with the given HTTP status and message
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

var (
	// ErrNotFound is returned when a referenced entity does not exist
	ErrNotFound = New(http.StatusNotFound, "Not Found")

	// ErrInvalidSortQuery covers both an unknown sort column and an unknown order
	ErrInvalidSortQuery = New(http.StatusBadRequest, "Bad request, Invalid sort query")

	// ErrMalformedInput is raised by the store layer when a value cannot be
	// interpreted as the column's type (e.g. "abc" for a numeric id). It
	// carries no HTTP status; the error middleware decides how to report it.
	ErrMalformedInput = errors.New("malformed input")
)

// MalformedInputMessage is the fixed message reported for ErrMalformedInput
const MalformedInputMessage = "You have made a bad request"

// As extracts an application error from err's chain
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsMalformedInput reports whether err was classified as malformed input by the store
func IsMalformedInput(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}
