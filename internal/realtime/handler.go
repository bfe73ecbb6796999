package realtime

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// allow all origins for development purpose; can restrict later
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// TokenValidator resolves a bearer token to a user ID. Only used to tag
// connections; the channel itself carries no per-user data, so anonymous
// listeners are fine.
type TokenValidator func(token string) (userID string, err error)

// WSHandler upgrades the HTTP connection and attaches the client to the
// hub's single broadcast channel.
func WSHandler(hub *Hub, validate TokenValidator, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := ""
		if token := c.Query("token"); token != "" && validate != nil {
			id, err := validate(token)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			userID = id
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade to WebSocket"})
			return
		}

		client := NewClient(uuid.New().String(), userID, conn, hub, logger)
		hub.Register(client)

		go client.ReadPump()
		go client.WritePump()
	}
}
