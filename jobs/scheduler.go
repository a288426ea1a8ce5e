package jobs

import (
	"context"

	"github.com/adhocore/gronx/pkg/tasker"

	"github.com/vigiehq/vigie-backend/usecases"
	"github.com/vigiehq/vigie-backend/utils"
)

func errToReturnCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

// RunScheduler runs the periodic jobs until ctx is canceled. Sanctions
// authorities publish updates at most daily, the default hourly cron keeps
// the index fresh without hammering the document store.
func RunScheduler(ctx context.Context, uc usecases.Usecases, refreshCron string) {
	taskr := tasker.New(tasker.Option{
		Verbose: true,
	}).WithContext(ctx)

	notConcurrent := false
	taskr.Task(refreshCron, func(ctx context.Context) (int, error) {
		logger := utils.LoggerFromContext(ctx).With("job", "watchlist_refresh")
		ctx = utils.StoreLoggerInContext(ctx, logger)
		err := RefreshWatchlists(ctx, uc)
		return errToReturnCode(err), err
	}, notConcurrent)

	taskr.Run()
}
