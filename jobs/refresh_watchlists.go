package jobs

import (
	"context"

	"github.com/vigiehq/vigie-backend/usecases"
)

// RefreshWatchlists re-reads the watchlist document store and republishes
// the matching index when anything changed.
func RefreshWatchlists(ctx context.Context, uc usecases.Usecases) error {
	return executeWithMonitoring(
		ctx,
		uc,
		"watchlist_refresh",
		func(ctx context.Context, uc usecases.Usecases) error {
			_, err := uc.NewWatchlistUsecase().RefreshWatchlists(ctx)
			return err
		},
	)
}
