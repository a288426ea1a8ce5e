package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("conflict")
)

// Watchlist parsing errors. Reported per document, never interrupt a batch.
var (
	// ErrDocumentUnreadable: the raw bytes could not be parsed as the
	// declared document kind at all.
	ErrDocumentUnreadable = errors.New("document unreadable")

	// ErrRecordIncomplete: a structurally valid record carries no extractable
	// name. The record is skipped, its siblings are still parsed.
	ErrRecordIncomplete = errors.New("record incomplete")
)

// Screening errors
var (
	ErrEngineNotLoaded = errors.Wrap(ConflictError, "no watchlist index has been loaded yet")

	ErrInvalidThreshold = errors.Wrap(BadParameterError, "threshold must be between 0 and 100")
)
