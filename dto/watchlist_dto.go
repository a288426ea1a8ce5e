package dto

import (
	"time"

	"github.com/vigiehq/vigie-backend/models"
)

type WatchlistStatsDto struct {
	TotalEntities    int            `json:"total_entities"`
	IndexedNames     int            `json:"indexed_names"`
	EntitiesBySource map[string]int `json:"entities_by_source"`
	EntitiesByList   map[string]int `json:"entities_by_list"`
	IndexBuildTimeMs int64          `json:"index_build_time_ms"`
	LoadedAt         time.Time      `json:"loaded_at"`
}

func AdaptWatchlistStatsDto(stats models.WatchlistStats) WatchlistStatsDto {
	byList := make(map[string]int, len(stats.EntitiesByList))
	for listType, count := range stats.EntitiesByList {
		byList[listType.String()] = count
	}

	return WatchlistStatsDto{
		TotalEntities:    stats.TotalEntities,
		IndexedNames:     stats.IndexedNames,
		EntitiesBySource: stats.EntitiesBySource,
		EntitiesByList:   byList,
		IndexBuildTimeMs: stats.IndexBuildTime.Milliseconds(),
		LoadedAt:         stats.LoadedAt,
	}
}

type WatchlistRefreshReportDto struct {
	DocumentsListed  int      `json:"documents_listed"`
	DocumentsParsed  int      `json:"documents_parsed"`
	DocumentsSkipped int      `json:"documents_skipped"`
	DocumentsFailed  int      `json:"documents_failed"`
	EntitiesLoaded   int      `json:"entities_loaded"`
	Reloaded         bool     `json:"reloaded"`
	Errors           []string `json:"errors,omitempty"`
}

func AdaptWatchlistRefreshReportDto(report models.WatchlistRefreshReport) WatchlistRefreshReportDto {
	return WatchlistRefreshReportDto{
		DocumentsListed:  report.DocumentsListed,
		DocumentsParsed:  report.DocumentsParsed,
		DocumentsSkipped: report.DocumentsSkipped,
		DocumentsFailed:  report.DocumentsFailed,
		EntitiesLoaded:   report.EntitiesLoaded,
		Reloaded:         report.Reloaded,
		Errors:           report.Failures,
	}
}
