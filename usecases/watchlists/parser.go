package watchlists

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/vigiehq/vigie-backend/models"
	"github.com/vigiehq/vigie-backend/utils"
)

const MAX_CONCURRENT_DOCUMENT_PARSES = 8

// Parser turns raw watchlist documents into SanctionEntity lists. It holds
// no state; every document is parsed independently.
type Parser struct{}

func NewParser() Parser {
	return Parser{}
}

// Parse extracts the entities of a single document. Malformed documents
// return an error wrapping ErrDocumentUnreadable and zero entities; they
// never panic. A readable document with unrecognized structure goes through
// the generic fallback and may legitimately yield no entities.
func (p Parser) Parse(ctx context.Context, doc models.WatchlistDocument) ([]models.SanctionEntity, error) {
	var (
		entities []models.SanctionEntity
		err      error
	)

	switch doc.Kind {
	case models.DocumentKindXML:
		entities, err = parseXmlDocument(doc)
	case models.DocumentKindCSV:
		entities, err = parseCsvDocument(doc)
	case models.DocumentKindSpreadsheet:
		entities, err = parseSpreadsheetDocument(doc)
	case models.DocumentKindText:
		entities, err = parseTextDocument(doc)
	default:
		return nil, errors.Wrapf(models.ErrDocumentUnreadable,
			"unsupported document kind for %s", doc.SourceLabel)
	}
	if err != nil {
		return nil, err
	}

	utils.LoggerFromContext(ctx).DebugContext(ctx, "parsed watchlist document",
		"source", doc.SourceLabel,
		"kind", doc.Kind.String(),
		"entities", len(entities))
	return entities, nil
}

func parseXmlDocument(doc models.WatchlistDocument) ([]models.SanctionEntity, error) {
	root, err := decodeXmlTree(doc.Data)
	if err != nil {
		return nil, err
	}
	listType := detectListType(root)
	return extractXmlEntities(root, doc.SourceLabel, listType), nil
}

// ParseBatch parses documents concurrently, concatenating the results in
// input order. Per-document failures never abort the batch; they come back
// as diagnostics so one broken file cannot lose the others' entities.
func (p Parser) ParseBatch(ctx context.Context, docs []models.WatchlistDocument) ([]models.SanctionEntity, []error) {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(MAX_CONCURRENT_DOCUMENT_PARSES)

	perDoc := make([][]models.SanctionEntity, len(docs))
	failures := make([]error, len(docs))

	for i, doc := range docs {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				failures[i] = errors.Wrapf(err, "parsing %s", doc.SourceLabel)
				return nil
			}

			entities, err := p.Parse(ctx, doc)
			if err != nil {
				failures[i] = errors.Wrapf(err, "parsing %s", doc.SourceLabel)
				utils.LoggerFromContext(ctx).WarnContext(ctx,
					"watchlist document could not be parsed",
					"source", doc.SourceLabel,
					"error", err.Error())
				return nil
			}
			perDoc[i] = entities
			return nil
		})
	}
	// Workers report failures through the diagnostics slice, never as group
	// errors.
	_ = group.Wait()

	var all []models.SanctionEntity
	for _, entities := range perDoc {
		all = append(all, entities...)
	}
	diagnostics := make([]error, 0)
	for _, err := range failures {
		if err != nil {
			diagnostics = append(diagnostics, err)
		}
	}
	return all, diagnostics
}
