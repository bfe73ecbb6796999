package realtime

// Central hub fanning frames out to every connected websocket client.
// Each connection runs its own read/write goroutines; all coordination goes
// through the hub's channels to avoid race conditions.

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		logger:     logger,
	}
}

// Register queues a client for membership; safe from any goroutine.
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister removes a client; idempotent.
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// Broadcast fans a raw frame out to every connected client. A client whose
// send buffer is full is dropped rather than allowed to stall the others.
func (h *Hub) Broadcast(frame []byte) {
	h.broadcast <- frame
}

// Run owns the client map. Exits when ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Debug("websocket client connected", "client_id", client.ID, "user_id", client.UserID, "total", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.SendChannel)
				h.logger.Debug("websocket client disconnected", "client_id", client.ID, "total", len(h.clients))
			}

		case frame := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.SendChannel <- frame:
				default:
					// slow consumer, drop it
					delete(h.clients, client)
					close(client.SendChannel)
					h.logger.Warn("websocket client dropped, send buffer full", "client_id", client.ID)
				}
			}

		case <-ctx.Done():
			for client := range h.clients {
				delete(h.clients, client)
				close(client.SendChannel)
			}
			return
		}
	}
}

// RelayFromRedis subscribes to the shared pub/sub channel and pumps every
// received frame into the hub. Blocks until ctx is cancelled; meant to run
// in its own goroutine next to Run.
func (h *Hub) RelayFromRedis(ctx context.Context, client *redis.Client, channel string) {
	if channel == "" {
		channel = DefaultChannel
	}
	sub := client.Subscribe(ctx, channel)
	defer sub.Close()

	h.logger.Info("relaying realtime events", "channel", channel)
	ch := sub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.Broadcast([]byte(msg.Payload))
		case <-ctx.Done():
			return
		}
	}
}
