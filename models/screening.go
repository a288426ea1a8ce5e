package models

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// ScreeningRequest is one screening question: the name to look for, how
// tolerant the comparison may be, and how much of the answer the caller
// wants back.
type ScreeningRequest struct {
	Query     string
	Threshold float64
	// EntityKind restricts hits to entities of that kind. Entities of
	// unknown kind always pass the filter, a watchlist's missing type data
	// must never hide a hit. EntityKindUnknown disables the filter.
	EntityKind EntityKind
	// Limit caps the number of returned matches, 0 returns all of them.
	Limit int
}

func (r ScreeningRequest) Validate() error {
	if r.Threshold < 0 || r.Threshold > 100 {
		return errors.Wrap(BadParameterError, "threshold must be between 0 and 100")
	}
	if r.Limit < 0 {
		return errors.Wrap(BadParameterError, "limit must not be negative")
	}
	return nil
}

type ScreeningResult struct {
	// ScreeningId identifies the screening in logs and audit trails; the
	// query text itself never leaves the response.
	ScreeningId string
	Query       string
	Matches     []MatchResult
	ScreenedAt  time.Time
}

// BatchScreeningRequest screens several names in one call with shared
// parameters, typically a client file.
type BatchScreeningRequest struct {
	Queries    []string
	Threshold  float64
	EntityKind EntityKind
	Limit      int
}

func (r BatchScreeningRequest) Validate() error {
	if len(r.Queries) == 0 {
		return errors.Wrap(BadParameterError, "at least one query is required")
	}
	return ScreeningRequest{
		Threshold:  r.Threshold,
		EntityKind: r.EntityKind,
		Limit:      r.Limit,
	}.Validate()
}

// RequestPerQuery expands the batch into its single-query requests,
// preserving order. Blank queries stay in place so the result array lines
// up with the input array.
func (r BatchScreeningRequest) RequestPerQuery() []ScreeningRequest {
	requests := make([]ScreeningRequest, len(r.Queries))
	for i, query := range r.Queries {
		requests[i] = ScreeningRequest{
			Query:      strings.TrimSpace(query),
			Threshold:  r.Threshold,
			EntityKind: r.EntityKind,
			Limit:      r.Limit,
		}
	}
	return requests
}
