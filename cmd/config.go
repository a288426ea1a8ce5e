package cmd

import (
	"github.com/vigiehq/vigie-backend/models"
	"github.com/vigiehq/vigie-backend/utils"
)

// apiVersion is overridden at build time with -ldflags.
var apiVersion = "dev"

type serverConfig struct {
	env                 string
	appName             string
	loggingFormat       string
	sentryDsn           string
	enableTracing       bool
	watchlistsBucketUrl string
	refreshCron         string
}

func serverConfigFromEnv() serverConfig {
	return serverConfig{
		env:                 utils.GetEnv("ENV", "development"),
		appName:             "vigie-backend",
		loggingFormat:       utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:           utils.GetEnv("SENTRY_DSN", ""),
		enableTracing:       utils.GetEnv("ENABLE_TRACING", false),
		watchlistsBucketUrl: utils.GetRequiredEnv[string]("WATCHLISTS_BUCKET_URL"),
		refreshCron:         utils.GetEnv("WATCHLIST_REFRESH_CRON", "0 * * * *"),
	}
}

// matchingPolicyFromEnv reads the matching threshold overrides. The
// thresholds are tuning policy, not constants, so operators can adjust them
// against their own watchlist data.
func matchingPolicyFromEnv() (models.MatchingPolicy, error) {
	policy := models.DefaultMatchingPolicy()
	policy.MatchThreshold = utils.GetEnv("MATCH_THRESHOLD", policy.MatchThreshold)
	policy.TokenCombinedThreshold = utils.GetEnv("MATCH_TOKEN_COMBINED_THRESHOLD", policy.TokenCombinedThreshold)
	policy.TokenQueryWeight = utils.GetEnv("MATCH_TOKEN_QUERY_WEIGHT", policy.TokenQueryWeight)
	policy.PhoneticThreshold = utils.GetEnv("MATCH_PHONETIC_THRESHOLD", policy.PhoneticThreshold)
	policy.FuzzyThreshold = utils.GetEnv("MATCH_FUZZY_THRESHOLD", policy.FuzzyThreshold)

	if err := policy.Validate(); err != nil {
		return models.MatchingPolicy{}, err
	}
	return policy, nil
}
