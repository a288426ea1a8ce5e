package infra

import (
	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
)

// Per-transaction sampling rates. Screening routes are the hot path and get
// a token rate, probes and scrapes are never worth a trace.
var sentryTransactionSampling = map[string]float64{
	"GET /liveness":            0,
	"GET /metrics":             0,
	"POST /screenings":         0.05,
	"POST /screenings/batch":   0.05,
	"POST /watchlists/refresh": 1.0,
}

const sentryDefaultSamplingRate = 0.2

func SetupSentry(dsn, env, apiVersion string) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:           dsn,
		EnableTracing: true,
		Release:       apiVersion,
		Environment:   env,
		TracesSampler: sentry.TracesSampler(func(ctx sentry.SamplingContext) float64 {
			if rate, ok := sentryTransactionSampling[ctx.Span.Name]; ok {
				return rate
			}
			return sentryDefaultSamplingRate
		}),
		// Relative to the trace sampling rate, to adjust once prod volumes are known
		ProfilesSampleRate: 0.2,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			if hint != nil && event != nil && len(event.Exception) > 0 {
				originalErr := errors.UnwrapAll(hint.OriginalException)
				event.Exception[len(event.Exception)-1].Type = originalErr.Error()
			}
			return event
		},
	}); err != nil {
		panic(err)
	}
}
