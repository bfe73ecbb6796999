package client

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gorilla/websocket"
)

// UpdateMessage mirrors the wire envelope published on the broadcast
// channel.
type UpdateMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type contentData struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	ID    string `json:"id"`
}

type announcementData struct {
	Title string `json:"title"`
	ID    string `json:"id"`
}

// WatchUpdates connects to the broadcast channel and prints every event
// until interrupted. onEvent, when non-nil, runs after each event; the
// notifications command uses it to re-fetch the feed.
func WatchUpdates(apiURL, token string, onEvent func(event string)) error {
	wsURL, err := toWebsocketURL(apiURL, token)
	if err != nil {
		return err
	}

	fmt.Printf("🔌 Connecting to %s...\n", wsURL)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer conn.Close()

	fmt.Printf("✅ Connected! Waiting for updates (Ctrl+C to exit)\n\n")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var msg UpdateMessage
			if err := conn.ReadJSON(&msg); err != nil {
				fmt.Println("Read error:", err)
				return
			}

			printUpdate(&msg)
			if onEvent != nil {
				onEvent(msg.Event)
			}
		}
	}()

	select {
	case <-done:
		return nil
	case <-interrupt:
		// clean close so the server does not log an abnormal drop
		deadline := time.Now().Add(time.Second)
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		select {
		case <-done:
		case <-time.After(time.Second):
		}
		return nil
	}
}

func toWebsocketURL(apiURL, token string) (string, error) {
	parsed, err := url.Parse(apiURL)
	if err != nil {
		return "", fmt.Errorf("invalid API URL: %w", err)
	}

	scheme := "ws"
	if parsed.Scheme == "https" {
		scheme = "wss"
	}

	u := url.URL{Scheme: scheme, Host: parsed.Host, Path: "/ws"}
	if token != "" {
		q := u.Query()
		q.Set("token", token)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func printUpdate(msg *UpdateMessage) {
	ts := time.Now().Format("15:04:05")

	switch msg.Event {
	case "new-content":
		var data contentData
		if err := json.Unmarshal(msg.Data, &data); err == nil {
			label := "Reel"
			if data.Type == "SCRIPT" {
				label = "Script"
			}
			color.Green("[%s] 🆕 New %s: %s", ts, label, data.Title)
			return
		}
		color.Green("[%s] 🆕 New content", ts)
	case "new-announcement":
		var data announcementData
		if err := json.Unmarshal(msg.Data, &data); err == nil {
			color.Cyan("[%s] 📢 Announcement: %s", ts, data.Title)
			return
		}
		color.Cyan("[%s] 📢 New announcement", ts)
	case "update-content", "update-announcement":
		color.Yellow("[%s] ✏️  %s", ts, strings.ReplaceAll(msg.Event, "-", " "))
	case "delete-content", "delete-announcement":
		color.Red("[%s] 🗑  %s", ts, strings.ReplaceAll(msg.Event, "-", " "))
	case "refresh":
		color.Yellow("[%s] 🔄 refresh requested", ts)
	default:
		fmt.Printf("[%s] %s\n", ts, msg.Event)
	}
}
