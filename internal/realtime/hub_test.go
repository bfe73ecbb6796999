package realtime

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// dialTestHub spins up an httptest server that registers every incoming
// connection with the hub, then dials it.
func dialTestHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)

		client := NewClient("test-client", "", conn, hub, testLogger())
		hub.Register(client)
		go client.ReadPump()
		go client.WritePump()
	}))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub := NewHub(testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	conn1 := dialTestHub(t, hub)
	conn2 := dialTestHub(t, hub)

	frame, err := Encode(EventNewContent, ContentEvent{Type: "REEL", Title: "t", ID: "c1"})
	require.NoError(t, err)

	// let both registrations land before broadcasting
	time.Sleep(50 * time.Millisecond)
	hub.Broadcast(frame)

	for _, conn := range []*websocket.Conn{conn1, conn2} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, received, err := conn.ReadMessage()
		require.NoError(t, err)

		msg, err := Decode(received)
		require.NoError(t, err)
		assert.Equal(t, EventNewContent, msg.Event)
	}
}

func TestHub_ClientDisconnectIsCleanedUp(t *testing.T) {
	hub := NewHub(testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	conn := dialTestHub(t, hub)
	conn.Close()

	// the read pump should unregister the client; a broadcast afterwards
	// must not block or panic
	time.Sleep(50 * time.Millisecond)
	hub.Broadcast([]byte(`{"event":"refresh"}`))
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	hub := NewHub(testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	conn := dialTestHub(t, hub)
	time.Sleep(50 * time.Millisecond)

	cancel()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			// server side closed, which is the point
			return
		}
	}
}
