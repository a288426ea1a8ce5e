package models

import (
	"strings"
	"time"
)

// DocumentKind is the physical format of a stored watchlist document. It is
// derived from the file extension; the logical list format (UN, OFAC, ...)
// is detected from the content itself.
type DocumentKind int

const (
	DocumentKindXML DocumentKind = iota
	DocumentKindCSV
	DocumentKindSpreadsheet
	DocumentKindText
	DocumentKindUnknown
)

func DocumentKindFromExtension(ext string) DocumentKind {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "xml":
		return DocumentKindXML
	case "csv":
		return DocumentKindCSV
	case "xlsx":
		return DocumentKindSpreadsheet
	case "txt", "text":
		return DocumentKindText
	}
	return DocumentKindUnknown
}

func (k DocumentKind) String() string {
	switch k {
	case DocumentKindXML:
		return "xml"
	case DocumentKindCSV:
		return "csv"
	case DocumentKindSpreadsheet:
		return "spreadsheet"
	case DocumentKindText:
		return "text"
	}
	return "unknown"
}

// WatchlistDocument is one raw sanctions publication pulled from the
// document store, before parsing.
type WatchlistDocument struct {
	SourceLabel string
	Kind        DocumentKind
	Data        []byte
	ContentHash string
}

// WatchlistDocumentRef points at a stored document without carrying its
// body, as returned by a listing.
type WatchlistDocumentRef struct {
	Key         string
	SourceLabel string
	Kind        DocumentKind
	Size        int64
	UpdatedAt   time.Time
}

type WatchlistStats struct {
	TotalEntities    int
	IndexedNames     int
	EntitiesBySource map[string]int
	EntitiesByList   map[ListType]int
	IndexBuildTime   time.Duration
	LoadedAt         time.Time
}

// WatchlistRefreshReport summarizes one pass of the refresh job over the
// document store.
type WatchlistRefreshReport struct {
	DocumentsListed  int
	DocumentsParsed  int
	DocumentsSkipped int
	DocumentsFailed  int
	EntitiesLoaded   int
	Reloaded         bool

	// Failures carries one message per document that could not be parsed.
	Failures []string
}
