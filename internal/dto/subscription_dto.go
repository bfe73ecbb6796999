package dto

// SubscriptionKeys are the per-endpoint encryption secrets handed out by the
// browser's push service.
type SubscriptionKeys struct {
	P256dh string `json:"p256dh" binding:"required"`
	Auth   string `json:"auth" binding:"required"`
}

// RegisterSubscriptionRequest used for POST /api/push/subscribe
type RegisterSubscriptionRequest struct {
	Endpoint string           `json:"endpoint" binding:"required"`
	Keys     SubscriptionKeys `json:"keys" binding:"required"`
}

// UnregisterSubscriptionRequest used for POST /api/push/unsubscribe
type UnregisterSubscriptionRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
}
