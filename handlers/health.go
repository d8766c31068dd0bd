package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

var startTime = time.Now()

// RegisterHealth mounts the root liveness message plus /health and /ready.
// /ready returns 200 only when the database answers a ping.
func RegisterHealth(r gin.IRoutes, db Pinger) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is running 🚀")
	})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		deps := map[string]bool{"mongodb": db != nil && db.Ping(ctx) == nil}
		uptime := time.Since(startTime).Round(time.Second).String()
		if !deps["mongodb"] {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": uptime})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": uptime})
	})
}
