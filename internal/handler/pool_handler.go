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

type PoolHandler struct {
	svc service.PoolService
}

func NewPoolHandler(svc service.PoolService) *PoolHandler {
	return &PoolHandler{svc: svc}
}

func (h *PoolHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Today's pool is what model dashboards render
	rg.GET("/today", h.Today)

	rg.GET("/", middleware.RequireAdmin(), h.List)
	rg.GET("/:id", middleware.RequireAdmin(), h.Get)
	rg.POST("/", middleware.RequireAdmin(), h.Create)
	rg.PUT("/:id", middleware.RequireAdmin(), h.Update)
	rg.DELETE("/:id", middleware.RequireAdmin(), h.Delete)

	rg.POST("/:id/videos", middleware.RequireAdmin(), h.AddVideo)
	rg.PUT("/videos/reorder", middleware.RequireAdmin(), h.ReorderVideos)
	rg.PUT("/videos/:video_id", middleware.RequireAdmin(), h.UpdateVideo)
	rg.DELETE("/videos/:video_id", middleware.RequireAdmin(), h.DeleteVideo)
}

func (h *PoolHandler) Today(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	pool, err := h.svc.Today(ctx)
	if err == service.ErrPoolNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "no pool for today"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromPool(*pool))
}

func (h *PoolHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	pools, err := h.svc.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]dto.PoolResponse, 0, len(pools))
	for _, p := range pools {
		items = append(items, dto.FromPool(p))
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (h *PoolHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	pool, err := h.svc.GetByID(ctx, c.Param("id"))
	if err == service.ErrPoolNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "pool not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromPool(*pool))
}

func (h *PoolHandler) Create(c *gin.Context) {
	var req dto.CreatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	pool, err := h.svc.Create(ctx, date, req.Title)
	if err == service.ErrPoolDateTaken {
		c.JSON(http.StatusConflict, gin.H{"error": "a pool already exists for this date"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.FromPool(*pool))
}

func (h *PoolHandler) Update(c *gin.Context) {
	var req dto.UpdatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err = h.svc.Update(ctx, c.Param("id"), date, req.Title, req.IsActive)
	if err == service.ErrPoolNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "pool not found"})
		return
	}
	if err == service.ErrPoolDateTaken {
		c.JSON(http.StatusConflict, gin.H{"error": "a pool already exists for this date"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "pool updated"})
}

func (h *PoolHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err := h.svc.Delete(ctx, c.Param("id"))
	if err == service.ErrPoolNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "pool not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PoolHandler) AddVideo(c *gin.Context) {
	var req dto.AddPoolVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err := h.svc.AddVideo(ctx, c.Param("id"), req.Title, req.VideoURL, req.SoundURL, req.Notes)
	if err == service.ErrPoolNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "pool not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "video added"})
}

func (h *PoolHandler) UpdateVideo(c *gin.Context) {
	var req dto.UpdatePoolVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err := h.svc.UpdateVideo(ctx, c.Param("video_id"), req.Title, req.VideoURL, req.SoundURL, req.Notes)
	if err == service.ErrVideoNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "video updated"})
}

func (h *PoolHandler) DeleteVideo(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err := h.svc.DeleteVideo(ctx, c.Param("video_id"))
	if err == service.ErrVideoNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// ReorderVideos rewrites positions to match the submitted order.
func (h *PoolHandler) ReorderVideos(c *gin.Context) {
	var req dto.ReorderPoolVideosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.ReorderVideos(ctx, req.VideoIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "videos reordered"})
}
