package push

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"agencyhub/internal/config"
	"agencyhub/internal/models"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// Outcome is the three-way result of one delivery attempt. Gone means the
// push service reported the endpoint permanently invalid (404/410) and the
// subscription should be dropped; Transient covers everything else that
// failed and is simply not retried.
type Outcome int

const (
	OutcomeDelivered Outcome = iota
	OutcomeGone
	OutcomeTransient
)

// Payload is the notification body sent to a browser endpoint. Tag groups
// same-topic notifications client-side so a newer one replaces the older.
type Payload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon,omitempty"`
	Badge string `json:"badge,omitempty"`
	URL   string `json:"url,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

// Sender delivers one encrypted payload to one subscription endpoint.
type Sender interface {
	Send(ctx context.Context, sub *models.PushSubscription, payload Payload) Outcome
}

// WebPushSender signs every outbound push with the process-wide VAPID
// keypair. Constructed once at startup and injected, never a global.
type WebPushSender struct {
	options webpush.Options
	logger  *slog.Logger
}

func NewWebPushSender(cfg *config.Config, logger *slog.Logger) *WebPushSender {
	return &WebPushSender{
		options: webpush.Options{
			Subscriber:      cfg.VAPIDSubscriber,
			VAPIDPublicKey:  cfg.VAPIDPublicKey,
			VAPIDPrivateKey: cfg.VAPIDPrivateKey,
			TTL:             60 * 60 * 24, // 24 hours
		},
		logger: logger,
	}
}

func (s *WebPushSender) Send(ctx context.Context, sub *models.PushSubscription, payload Payload) Outcome {
	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("push payload marshal failed", "error", err)
		return OutcomeTransient
	}

	target := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}

	opts := s.options
	resp, err := webpush.SendNotificationWithContext(ctx, body, target, &opts)
	if err != nil {
		s.logger.Warn("push send failed", "endpoint", truncateEndpoint(sub.Endpoint), "error", err)
		return OutcomeTransient
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return OutcomeGone
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return OutcomeDelivered
	default:
		respBody, _ := io.ReadAll(resp.Body)
		s.logger.Warn("push send rejected",
			"endpoint", truncateEndpoint(sub.Endpoint),
			"status", resp.StatusCode,
			"body", string(respBody))
		return OutcomeTransient
	}
}

// Endpoints are long opaque URLs; keep logs readable
func truncateEndpoint(endpoint string) string {
	if len(endpoint) > 50 {
		return endpoint[:50]
	}
	return endpoint
}
