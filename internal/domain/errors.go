package domain

import "errors"

var (
	// ErrInvalidRequest signals a malformed or empty search request.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrQueryFailed signals a catalog store query failure. Fatal for the request.
	ErrQueryFailed = errors.New("catalog query failed")
	// ErrStoreUnavailable signals that the catalog store cannot be reached.
	ErrStoreUnavailable = errors.New("catalog store unavailable")
	// ErrCompletionProvider signals a completion provider failure.
	// Recoverable: the parser and advisor degrade locally instead of surfacing it.
	ErrCompletionProvider = errors.New("completion provider error")
	// ErrMalformedCompletion signals unparseable completion output.
	ErrMalformedCompletion = errors.New("malformed completion output")
)
