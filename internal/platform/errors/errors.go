package apperrors

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrSessionNotFound     = errors.New("session not found")
	ErrEmptySessionList    = errors.New("no sessions available")
	ErrEmptyQuestion       = errors.New("question is empty")
	ErrRequestInFlight     = errors.New("a request is already in flight for this session")
	ErrNoToken             = errors.New("no auth token stored")
	ErrDocumentUnavailable = errors.New("document could not be loaded")
)
