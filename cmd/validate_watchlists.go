package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/vigiehq/vigie-backend/infra"
	"github.com/vigiehq/vigie-backend/repositories"
	"github.com/vigiehq/vigie-backend/usecases"
	"github.com/vigiehq/vigie-backend/utils"
)

// RunValidateWatchlists parses every document in the store once and exits
// non-zero when no index could be built from it. The index itself lives in
// the server process; this command is for checking freshly uploaded lists
// before they reach the running service.
func RunValidateWatchlists() error {
	config := serverConfigFromEnv()

	logger := utils.NewLogger(config.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	infra.SetupSentry(config.sentryDsn, config.env, apiVersion)
	defer sentry.Flush(3 * time.Second)

	uc := usecases.NewUsecases(repositories.NewRepositories(),
		usecases.WithWatchlistsBucketUrl(config.watchlistsBucketUrl),
	)

	report, err := uc.NewWatchlistUsecase().RefreshWatchlists(ctx)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	for _, failure := range report.Failures {
		logger.WarnContext(ctx, fmt.Sprintf("document failed to parse: %s", failure))
	}
	logger.InfoContext(ctx, "watchlist validation done",
		"documents_listed", report.DocumentsListed,
		"documents_parsed", report.DocumentsParsed,
		"documents_failed", report.DocumentsFailed,
		"entities", report.EntitiesLoaded)

	if !report.Reloaded {
		return errors.New("watchlist store did not produce a usable index")
	}
	return nil
}
