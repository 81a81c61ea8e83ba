package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	intconfig "travelplanner/internal/config"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

// Health answers with a fixed payload whatever the state of the store.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Healthy"})
}

func DBCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := intconfig.EnsureDB(ctx); err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database unavailable", nil)
		_ = c.Error(err)
		return
	}
	var trips int
	if err := intconfig.DB.GetContext(ctx, &trips, "SELECT COUNT(*) FROM trips"); err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "db_query_failed", "database query failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "database connection OK",
		"driver":      intconfig.DB.DriverName(),
		"trips_in_db": trips,
	})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router not ready"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
