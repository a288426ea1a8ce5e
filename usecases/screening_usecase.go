package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vigiehq/vigie-backend/models"
	"github.com/vigiehq/vigie-backend/usecases/matching"
	"github.com/vigiehq/vigie-backend/utils"
)

const MAX_CONCURRENT_SCREENINGS = 8

// ScreeningUsecase answers screening queries against the currently published
// watchlist index.
type ScreeningUsecase struct {
	engine *matching.Engine
}

func (uc ScreeningUsecase) Screen(ctx context.Context, request models.ScreeningRequest) (models.ScreeningResult, error) {
	if err := request.Validate(); err != nil {
		return models.ScreeningResult{}, err
	}

	screeningId := uuid.NewString()
	start := time.Now()

	matches, err := uc.engine.FindMatches(ctx, request.Query, request.Threshold)
	if err != nil {
		utils.MetricScreeningCount.WithLabelValues("error").Inc()
		return models.ScreeningResult{}, err
	}

	matches = filterByKind(matches, request.EntityKind)
	if request.Limit > 0 && len(matches) > request.Limit {
		matches = matches[:request.Limit]
	}

	outcome := "clear"
	if len(matches) > 0 {
		outcome = "hit"
	}
	duration := time.Since(start)
	utils.MetricScreeningCount.WithLabelValues(outcome).Inc()
	utils.MetricScreeningLatency.Observe(duration.Seconds())

	// The query text is a person or company name, so it stays out of logs.
	utils.LoggerFromContext(ctx).InfoContext(ctx,
		fmt.Sprintf("answered screening query in %dms", duration.Milliseconds()),
		"screening_id", screeningId,
		"outcome", outcome,
		"matches", len(matches),
		"threshold", request.Threshold,
		"duration", duration.Milliseconds())

	return models.ScreeningResult{
		ScreeningId: screeningId,
		Query:       request.Query,
		Matches:     matches,
		ScreenedAt:  start,
	}, nil
}

// ScreenBatch runs every query of the batch with bounded concurrency and
// returns the results in query order. Any failing query fails the batch: the
// only per-query errors are bad input or an unloaded index, and those affect
// every query equally.
func (uc ScreeningUsecase) ScreenBatch(ctx context.Context, batch models.BatchScreeningRequest) ([]models.ScreeningResult, error) {
	if err := batch.Validate(); err != nil {
		return nil, err
	}

	requests := batch.RequestPerQuery()
	results := make([]models.ScreeningResult, len(requests))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(MAX_CONCURRENT_SCREENINGS)

	for i, request := range requests {
		group.Go(func() error {
			result, err := uc.Screen(groupCtx, request)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// filterByKind keeps matches whose entity is of the requested kind. Records
// whose kind could not be established are never discarded.
func filterByKind(matches []models.MatchResult, kind models.EntityKind) []models.MatchResult {
	if kind == models.EntityKindUnknown {
		return matches
	}
	return utils.Filter(matches, func(match models.MatchResult) bool {
		return match.Entity.EntityKind == kind ||
			match.Entity.EntityKind == models.EntityKindUnknown
	})
}
