package realtime

import "encoding/json"

// Every connected client, regardless of role, listens on this one channel.
const DefaultChannel = "global-updates"

// Event names published on the shared channel.
const (
	EventNewContent         = "new-content"
	EventUpdateContent      = "update-content"
	EventDeleteContent      = "delete-content"
	EventNewAnnouncement    = "new-announcement"
	EventUpdateAnnouncement = "update-announcement"
	EventDeleteAnnouncement = "delete-announcement"
	EventRefresh            = "refresh"
)

// ContentEvent is the payload carried by new-content events.
type ContentEvent struct {
	Type  string `json:"type"` // REEL or SCRIPT
	Title string `json:"title"`
	ID    string `json:"id"`
}

// AnnouncementEvent is the payload carried by new-announcement events.
type AnnouncementEvent struct {
	Title string `json:"title"`
	ID    string `json:"id"`
}

// Message is the wire envelope. Update/delete events carry no data; clients
// treat them as pure invalidation signals.
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Encode builds the wire frame for one event. Data may be nil.
func Encode(event string, data any) ([]byte, error) {
	msg := Message{Event: event}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		msg.Data = raw
	}
	return json.Marshal(msg)
}

// Decode parses a wire frame back into its envelope.
func Decode(frame []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(frame, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
