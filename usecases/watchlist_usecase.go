package usecases

import (
	"context"
	"fmt"
	"maps"
	"time"

	"github.com/vigiehq/vigie-backend/models"
	"github.com/vigiehq/vigie-backend/repositories"
	"github.com/vigiehq/vigie-backend/usecases/matching"
	"github.com/vigiehq/vigie-backend/usecases/watchlists"
	"github.com/vigiehq/vigie-backend/utils"
)

// WatchlistUsecase loads sanction lists from the document store into the
// matching engine.
type WatchlistUsecase struct {
	documentRepository repositories.WatchlistDocumentRepository
	parser             watchlists.Parser
	engine             *matching.Engine
	bucketUrl          string
	state              *refreshState
}

// RefreshWatchlists lists the document store, parses every readable document
// and publishes a fresh index. When no document's content changed since the
// last successful load, the current index is kept and nothing is re-parsed.
// Store access errors fail the whole refresh; per-document parse failures
// only show up in the report.
func (uc WatchlistUsecase) RefreshWatchlists(ctx context.Context) (models.WatchlistRefreshReport, error) {
	// Refreshes are serialized. Queries are unaffected, they keep reading
	// the published index until the swap.
	uc.state.m.Lock()
	defer uc.state.m.Unlock()

	logger := utils.LoggerFromContext(ctx)
	start := time.Now()

	report := models.WatchlistRefreshReport{}

	refs, err := uc.documentRepository.ListDocuments(ctx, uc.bucketUrl)
	if err != nil {
		utils.MetricWatchlistRefreshCount.WithLabelValues("error").Inc()
		return report, err
	}
	report.DocumentsListed = len(refs)

	docs := make([]models.WatchlistDocument, 0, len(refs))
	hashes := make(map[string]string, len(refs))
	for _, ref := range refs {
		if ref.Kind == models.DocumentKindUnknown {
			report.DocumentsSkipped++
			logger.DebugContext(ctx, "skipping document of unrecognized kind",
				"document", ref.SourceLabel)
			continue
		}

		doc, err := uc.documentRepository.GetDocument(ctx, uc.bucketUrl, ref.Key)
		if err != nil {
			utils.MetricWatchlistRefreshCount.WithLabelValues("error").Inc()
			return report, err
		}
		docs = append(docs, doc)
		hashes[ref.Key] = doc.ContentHash
	}

	if uc.engine.Loaded() && maps.Equal(uc.state.knownHashes, hashes) {
		report.DocumentsSkipped += len(docs)
		utils.MetricWatchlistRefreshCount.WithLabelValues("unchanged").Inc()
		logger.InfoContext(ctx, "watchlist documents unchanged, keeping current index",
			"documents", len(docs))
		return report, nil
	}

	entities, diagnostics := uc.parser.ParseBatch(ctx, docs)
	report.DocumentsFailed = len(diagnostics)
	report.DocumentsParsed = len(docs) - len(diagnostics)
	report.EntitiesLoaded = len(entities)
	for _, diag := range diagnostics {
		report.Failures = append(report.Failures, diag.Error())
	}

	if len(entities) == 0 {
		// Loading nothing would wipe the published index.
		utils.MetricWatchlistRefreshCount.WithLabelValues("empty").Inc()
		logger.WarnContext(ctx, "refresh produced no entities, keeping current index",
			"documents", len(docs),
			"failed", report.DocumentsFailed)
		return report, nil
	}

	stats := uc.engine.Load(ctx, entities)
	report.Reloaded = true
	uc.state.knownHashes = hashes

	utils.MetricWatchlistEntities.Reset()
	for listType, count := range stats.EntitiesByList {
		utils.MetricWatchlistEntities.WithLabelValues(listType.String()).Set(float64(count))
	}
	utils.MetricWatchlistRefreshCount.WithLabelValues("reloaded").Inc()

	logger.InfoContext(ctx,
		fmt.Sprintf("loaded %d watchlist entities in %dms",
			stats.TotalEntities, time.Since(start).Milliseconds()),
		"documents", report.DocumentsParsed,
		"failed", report.DocumentsFailed,
		"entities", stats.TotalEntities,
		"indexed_names", stats.IndexedNames,
		"index_build_time", stats.IndexBuildTime.Milliseconds())

	return report, nil
}

// Stats reports on the currently published index.
func (uc WatchlistUsecase) Stats(ctx context.Context) (models.WatchlistStats, error) {
	return uc.engine.Stats()
}
