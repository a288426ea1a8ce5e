package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vigiehq/vigie-backend/usecases"
	"github.com/vigiehq/vigie-backend/utils"
)

func addRoutes(r *gin.Engine, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/screenings", handleScreen(uc))
	r.POST("/screenings/batch", handleScreenBatch(uc))

	r.GET("/watchlists/stats", handleWatchlistStats(uc))
	r.POST("/watchlists/refresh", handleRefreshWatchlists(uc))

	utils.SetupProfilerEndpoints(r)
}
