package handler

import (
	"context"
	"net/http"
	"time"

	"agencyhub/internal/dto"
	"agencyhub/internal/service"

	"github.com/gin-gonic/gin"
)

// SubscriptionHandler manages browser push subscription registration.
type SubscriptionHandler struct {
	svc            service.SubscriptionService
	vapidPublicKey string
}

func NewSubscriptionHandler(svc service.SubscriptionService, vapidPublicKey string) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc, vapidPublicKey: vapidPublicKey}
}

func (h *SubscriptionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/vapid-public-key", h.VAPIDPublicKey)
	rg.POST("/subscribe", h.Subscribe)
	rg.POST("/unsubscribe", h.Unsubscribe)
}

// VAPIDPublicKey hands clients the key they need to subscribe with the
// browser's push service.
func (h *SubscriptionHandler) VAPIDPublicKey(c *gin.Context) {
	if h.vapidPublicKey == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "push is not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"public_key": h.vapidPublicKey})
}

// Subscribe registers or refreshes a push subscription for the calling
// user. Re-registering an endpoint moves it to the caller.
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.RegisterSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Register(ctx, userID.(string), req.Endpoint, req.Keys.P256dh, req.Keys.Auth); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "subscribed"})
}

// Unsubscribe removes the caller's subscription for the given endpoint.
// Unknown endpoints succeed; unsubscribing is idempotent.
func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.UnregisterSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Unregister(ctx, userID.(string), req.Endpoint); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "unsubscribed"})
}
