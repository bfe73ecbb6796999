package handler

import (
	"context"
	"net/http"
	"time"

	"agencyhub/internal/dto"
	"agencyhub/internal/middleware"
	"agencyhub/internal/service"

	"github.com/gin-gonic/gin"
)

type GuidanceHandler struct {
	svc service.GuidanceService
}

func NewGuidanceHandler(svc service.GuidanceService) *GuidanceHandler {
	return &GuidanceHandler{svc: svc}
}

func (h *GuidanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Get)
	rg.PUT("/", middleware.RequireAdmin(), h.Update)
}

func (h *GuidanceHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	page, err := h.svc.Get(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromGuidancePage(*page))
}

func (h *GuidanceHandler) Update(c *gin.Context) {
	var req dto.UpdateGuidanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Update(ctx, req.Title, req.Content); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "guidance updated"})
}
