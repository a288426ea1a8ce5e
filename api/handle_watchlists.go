package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vigiehq/vigie-backend/dto"
	"github.com/vigiehq/vigie-backend/usecases"
)

func handleWatchlistStats(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewWatchlistUsecase()
		stats, err := usecase.Stats(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptWatchlistStatsDto(stats))
	}
}

// handleRefreshWatchlists triggers a synchronous refresh. The scheduler runs
// the same refresh periodically; this endpoint exists for operators who just
// uploaded a new list and want it live now.
func handleRefreshWatchlists(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewWatchlistUsecase()
		report, err := usecase.RefreshWatchlists(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptWatchlistRefreshReportDto(report))
	}
}
