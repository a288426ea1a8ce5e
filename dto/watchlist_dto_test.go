package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vigiehq/vigie-backend/models"
)

func TestAdaptWatchlistStatsDto(t *testing.T) {
	loadedAt := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	got := AdaptWatchlistStatsDto(models.WatchlistStats{
		TotalEntities: 12847,
		IndexedNames:  31502,
		EntitiesBySource: map[string]int{
			"un_consolidated.xml": 712,
			"ofac_sdn.xml":        12135,
		},
		EntitiesByList: map[models.ListType]int{
			models.ListTypeUN:   712,
			models.ListTypeOFAC: 12135,
		},
		IndexBuildTime: 1340 * time.Millisecond,
		LoadedAt:       loadedAt,
	})

	assert.Equal(t, WatchlistStatsDto{
		TotalEntities: 12847,
		IndexedNames:  31502,
		EntitiesBySource: map[string]int{
			"un_consolidated.xml": 712,
			"ofac_sdn.xml":        12135,
		},
		EntitiesByList: map[string]int{
			"UN":   712,
			"OFAC": 12135,
		},
		IndexBuildTimeMs: 1340,
		LoadedAt:         loadedAt,
	}, got)
}

func TestAdaptWatchlistRefreshReportDto(t *testing.T) {
	got := AdaptWatchlistRefreshReportDto(models.WatchlistRefreshReport{
		DocumentsListed:  4,
		DocumentsParsed:  2,
		DocumentsSkipped: 1,
		DocumentsFailed:  1,
		EntitiesLoaded:   13098,
		Reloaded:         true,
		Failures:         []string{"parsing uk_sanctions.xml: document unreadable"},
	})

	assert.Equal(t, WatchlistRefreshReportDto{
		DocumentsListed:  4,
		DocumentsParsed:  2,
		DocumentsSkipped: 1,
		DocumentsFailed:  1,
		EntitiesLoaded:   13098,
		Reloaded:         true,
		Errors:           []string{"parsing uk_sanctions.xml: document unreadable"},
	}, got)
}
