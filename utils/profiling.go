package utils

import (
	"net/http"
	"net/http/pprof"
	"os"

	"github.com/gin-gonic/gin"
)

// SetupProfilerEndpoints exposes the pprof handlers under /debug/pprof when
// DEBUG_PROFILING_MODE=http. The endpoints are bearer-token protected since
// heap and goroutine dumps leak internals.
func SetupProfilerEndpoints(r *gin.Engine) {
	if os.Getenv("DEBUG_PROFILING_MODE") != "http" {
		return
	}

	pp := r.Group("/debug/pprof")
	pp.Use(func(c *gin.Context) {
		if c.Request.Header.Get("authorization") != "Bearer "+os.Getenv("DEBUG_PROFILING_TOKEN") {
			c.AbortWithStatus(http.StatusUnauthorized)
		}
	})

	pp.GET("/profile", gin.WrapF(pprof.Profile))
	pp.GET("/goroutine", gin.WrapH(pprof.Handler("goroutine")))
	pp.GET("/heap", gin.WrapH(pprof.Handler("heap")))
	pp.GET("/threadcreate", gin.WrapH(pprof.Handler("threadcreate")))
	pp.GET("/block", gin.WrapH(pprof.Handler("block")))
	pp.GET("/mutex", gin.WrapH(pprof.Handler("mutex")))
}
