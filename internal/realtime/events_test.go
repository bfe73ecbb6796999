package realtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecode_ContentEvent(t *testing.T) {
	frame, err := Encode(EventNewContent, ContentEvent{
		Type:  "REEL",
		Title: "Morning Routine",
		ID:    "c1",
	})
	assert.NoError(t, err)

	msg, err := Decode(frame)
	assert.NoError(t, err)
	assert.Equal(t, EventNewContent, msg.Event)

	var data ContentEvent
	assert.NoError(t, json.Unmarshal(msg.Data, &data))
	assert.Equal(t, "REEL", data.Type)
	assert.Equal(t, "Morning Routine", data.Title)
	assert.Equal(t, "c1", data.ID)
}

func TestEncode_NilDataOmitsField(t *testing.T) {
	frame, err := Encode(EventRefresh, nil)
	assert.NoError(t, err)
	assert.Equal(t, `{"event":"refresh"}`, string(frame))

	msg, err := Decode(frame)
	assert.NoError(t, err)
	assert.Equal(t, EventRefresh, msg.Event)
	assert.Nil(t, msg.Data)
}

func TestDecode_RejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("not json"))
	assert.Error(t, err)
}

func TestEncodeDecode_AnnouncementEvent(t *testing.T) {
	frame, err := Encode(EventNewAnnouncement, AnnouncementEvent{Title: "Schedule Change", ID: "a1"})
	assert.NoError(t, err)

	msg, err := Decode(frame)
	assert.NoError(t, err)
	assert.Equal(t, EventNewAnnouncement, msg.Event)

	var data AnnouncementEvent
	assert.NoError(t, json.Unmarshal(msg.Data, &data))
	assert.Equal(t, "a1", data.ID)
}
