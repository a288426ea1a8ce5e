package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/vigiehq/vigie-backend/api"
	"github.com/vigiehq/vigie-backend/infra"
	"github.com/vigiehq/vigie-backend/jobs"
	"github.com/vigiehq/vigie-backend/repositories"
	"github.com/vigiehq/vigie-backend/usecases"
	"github.com/vigiehq/vigie-backend/utils"
)

func RunServer() error {
	// This is where we read the environment variables and set up the configuration for the application.
	config := serverConfigFromEnv()
	apiConfig := api.Configuration{
		Env:            config.env,
		AppName:        config.appName,
		Port:           utils.GetRequiredEnv[string]("PORT"),
		AppUrl:         utils.GetEnv("APP_URL", ""),
		DefaultTimeout: time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 5)) * time.Second,
		RefreshTimeout: time.Duration(utils.GetEnv("REFRESH_TIMEOUT_SECOND", 120)) * time.Second,
	}

	logger := utils.NewLogger(config.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	policy, err := matchingPolicyFromEnv()
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	infra.SetupSentry(config.sentryDsn, config.env, apiVersion)
	defer sentry.Flush(3 * time.Second)

	telemetryRessources, err := infra.InitTelemetry(infra.TelemetryConfiguration{
		Enabled:         config.enableTracing,
		ApplicationName: config.appName,
	}, apiVersion)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
	}
	ctx = utils.StoreOpenTelemetryTracerInContext(ctx, telemetryRessources.Tracer)

	uc := usecases.NewUsecases(repositories.NewRepositories(),
		usecases.WithWatchlistsBucketUrl(config.watchlistsBucketUrl),
		usecases.WithMatchingPolicy(policy),
	)

	// Load the index before taking traffic, a server with no index answers
	// every screening with a 409.
	if err := jobs.RefreshWatchlists(ctx, uc); err != nil {
		utils.LogAndReportSentryError(ctx, errors.Wrap(err, "initial watchlist load failed"))
	}

	router := api.InitRouterMiddlewares(ctx, apiConfig, telemetryRessources)
	server := api.NewServer(router, apiConfig, uc)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go jobs.RunScheduler(notify, uc, config.refreshCron)

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while serving the app"))
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogAndReportSentryError(
			ctx,
			errors.Wrap(err, "Error while shutting down the server"),
		)
		return err
	}

	return nil
}
