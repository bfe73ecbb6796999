package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"agencyhub/internal/dto"
	"agencyhub/internal/middleware"
	"agencyhub/internal/models"
	"agencyhub/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContentHandler struct {
	svc service.ContentService
}

func NewContentHandler(svc service.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

func (h *ContentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Model routes (any authenticated user)
	rg.GET("/mine", h.ListMine)
	rg.GET("/:id", h.Get)

	// Admin-only routes
	rg.GET("/", middleware.RequireAdmin(), h.List)
	rg.POST("/reels", middleware.RequireAdmin(), h.CreateReel)
	rg.POST("/scripts", middleware.RequireAdmin(), h.CreateScript)
	rg.PUT("/reels/:id", middleware.RequireAdmin(), h.UpdateReel)
	rg.PUT("/scripts/:id", middleware.RequireAdmin(), h.UpdateScript)
	rg.PUT("/:id/toggle", middleware.RequireAdmin(), h.ToggleActive)
	rg.DELETE("/:id", middleware.RequireAdmin(), h.Delete)
}

func contentTypeQuery(c *gin.Context) (string, bool) {
	contentType := c.Query("type")
	switch contentType {
	case "", models.ContentTypeReel, models.ContentTypeScript:
		return contentType, true
	}
	return "", false
}

// List all content for the admin dashboard, optionally filtered by type.
func (h *ContentHandler) List(c *gin.Context) {
	contentType, ok := contentTypeQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid type"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.List(ctx, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]dto.ContentResponse, 0, len(list))
	for _, item := range list {
		items = append(items, dto.FromContent(item))
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// ListMine returns the active content visible to the calling model:
// global items plus items assigned to them.
func (h *ContentHandler) ListMine(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	contentType, ok := contentTypeQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid type"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.ListForModel(ctx, userID.(string), contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]dto.ContentResponse, 0, len(list))
	for _, item := range list {
		items = append(items, dto.FromContent(item))
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (h *ContentHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	content, err := h.svc.GetByID(ctx, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := dto.FromContent(*content)
	assigned, err := h.svc.AssignedModelIDs(ctx, content.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": resp, "assigned_models": assigned})
}

func (h *ContentHandler) CreateReel(c *gin.Context) {
	var req dto.CreateReelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("user_id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	content := req.ToModel(userID.(string))
	if err := h.svc.Create(ctx, &content, req.AssignedModels); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.FromContent(content))
}

func (h *ContentHandler) CreateScript(c *gin.Context) {
	var req dto.CreateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("user_id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	content := req.ToModel(userID.(string))
	if err := h.svc.Create(ctx, &content, req.AssignedModels); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.FromContent(content))
}

func (h *ContentHandler) UpdateReel(c *gin.Context) {
	var req dto.UpdateReelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	content, err := h.svc.GetByID(ctx, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if content.Type != models.ContentTypeReel {
		c.JSON(http.StatusBadRequest, gin.H{"error": "not a reel"})
		return
	}

	req.ApplyTo(content)
	if err := h.svc.Update(ctx, content, req.AssignedModels); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromContent(*content))
}

func (h *ContentHandler) UpdateScript(c *gin.Context) {
	var req dto.UpdateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	content, err := h.svc.GetByID(ctx, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if content.Type != models.ContentTypeScript {
		c.JSON(http.StatusBadRequest, gin.H{"error": "not a script"})
		return
	}

	req.ApplyTo(content)
	if err := h.svc.Update(ctx, content, req.AssignedModels); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromContent(*content))
}

func (h *ContentHandler) ToggleActive(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	active, err := h.svc.ToggleActive(ctx, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_active": active})
}

func (h *ContentHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
