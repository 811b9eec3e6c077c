package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/fantasyedge/fantasy-edge/internal/services"
)

type HealthHandler struct {
	redisClient *redis.Client
	refresher   *services.SnapshotRefresher
}

func NewHealthHandler(redisClient *redis.Client, refresher *services.SnapshotRefresher) *HealthHandler {
	return &HealthHandler{
		redisClient: redisClient,
		refresher:   refresher,
	}
}

// Health reports liveness plus dependency status.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	redisStatus := "ok"
	if h.redisClient != nil {
		if err := h.redisClient.Ping(ctx).Err(); err != nil {
			redisStatus = "unavailable"
		}
	} else {
		redisStatus = "disabled"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC(),
		"redis":  redisStatus,
	})
}

// RefresherStatus reports the snapshot refresher's schedule.
func (h *HealthHandler) RefresherStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.refresher.Status())
}
