package jobs

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/vigiehq/vigie-backend/usecases"
	"github.com/vigiehq/vigie-backend/utils"
)

// executeWithMonitoring runs fn framed by sentry check-ins so a stuck or
// failing job shows up as a missed monitor, not just a log line.
func executeWithMonitoring(
	ctx context.Context,
	uc usecases.Usecases,
	jobName string,
	fn func(context.Context, usecases.Usecases) error,
) error {
	logger := utils.LoggerFromContext(ctx)
	logger.InfoContext(ctx, fmt.Sprintf("starting job %s", jobName))

	checkinId := sentry.CaptureCheckIn(&sentry.CheckIn{
		MonitorSlug: jobName,
		Status:      sentry.CheckInStatusInProgress,
	}, nil)

	reportStatus := func(status sentry.CheckInStatus) {
		sentry.CaptureCheckIn(&sentry.CheckIn{
			ID:          *checkinId,
			MonitorSlug: jobName,
			Status:      status,
		}, nil)
	}

	if err := fn(ctx, uc); err != nil {
		reportStatus(sentry.CheckInStatusError)
		utils.LogAndReportSentryError(ctx, err)
		return errors.Wrapf(err, "job %s failed", jobName)
	}

	reportStatus(sentry.CheckInStatusOK)
	logger.InfoContext(ctx, fmt.Sprintf("job %s done", jobName))
	return nil
}
