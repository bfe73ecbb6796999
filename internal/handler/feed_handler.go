package handler

import (
	"context"
	"net/http"
	"time"

	"agencyhub/internal/service"

	"github.com/gin-gonic/gin"
)

// FeedHandler serves the aggregated notification feed a model's bell
// dropdown renders.
type FeedHandler struct {
	svc service.FeedService
}

func NewFeedHandler(svc service.FeedService) *FeedHandler {
	return &FeedHandler{svc: svc}
}

func (h *FeedHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
}

func (h *FeedHandler) List(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	items, err := h.svc.Notifications(ctx, userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}
