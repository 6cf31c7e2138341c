package handlers

import (
	"net/http"
	"tracker-server/middleware"
	"tracker-server/services"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	service *services.ActivityService
}

func NewActivityHandler(service *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// GetRecent handles GET /api/activity, returning the caller's buffered events.
func (h *ActivityHandler) GetRecent(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	events := h.service.Recent(userID, 50)
	c.JSON(http.StatusOK, gin.H{
		"activity": events,
		"count":    len(events),
	})
}

// GetStats handles GET /api/activity/stats
func (h *ActivityHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"stats":  h.service.Stats(),
	})
}

// Process handles POST /api/activity/process. Forces a flush instead of
// waiting for the ticker.
func (h *ActivityHandler) Process(c *gin.Context) {
	h.service.Flush()
	c.JSON(http.StatusOK, gin.H{"status": "processed"})
}
