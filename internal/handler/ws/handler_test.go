//go:build unit

package ws

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"coupon-swap/internal/pkg/clock"
	"coupon-swap/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDispatchHandler(t *testing.T) (*Hub, *Handler) {
	t.Helper()
	hub := startHub(t)
	h := &Handler{
		hub:   hub,
		clock: clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		cfg:   config.NewTestConfig().WS,
	}
	return hub, h
}

type recvChatFrame struct {
	Type    string    `json:"type"`
	Room    string    `json:"room"`
	Sender  uuid.UUID `json:"sender"`
	Content string    `json:"content"`
}

func decodeChat(t *testing.T, payload []byte) recvChatFrame {
	t.Helper()
	var frame recvChatFrame
	require.NoError(t, json.Unmarshal(payload, &frame))
	return frame
}

func TestDispatchTypingSkipsSender(t *testing.T) {
	hub, h := newDispatchHandler(t)

	sender := newHubClient(hub, 4)
	listener := newHubClient(hub, 4)
	hub.register <- sender
	hub.register <- listener
	hub.join <- joinRequest{client: sender, room: "room-1"}
	hub.join <- joinRequest{client: listener, room: "room-1"}

	h.dispatch(sender, []byte(`{"type":"typing","room":"room-1"}`))

	frame := decodeChat(t, recvPayload(t, listener))
	assert.Equal(t, "user_typing", frame.Type)
	assert.Equal(t, sender.userID, frame.Sender)
	assertNoPayload(t, sender)
}

func TestDispatchChatMessageIncludesSender(t *testing.T) {
	hub, h := newDispatchHandler(t)

	sender := newHubClient(hub, 4)
	listener := newHubClient(hub, 4)
	hub.register <- sender
	hub.register <- listener
	hub.join <- joinRequest{client: sender, room: "room-1"}
	hub.join <- joinRequest{client: listener, room: "room-1"}

	h.dispatch(sender, []byte(`{"type":"send_message","room":"room-1","content":"deal?"}`))

	for _, c := range []*Client{sender, listener} {
		frame := decodeChat(t, recvPayload(t, c))
		assert.Equal(t, "receive_message", frame.Type)
		assert.Equal(t, "deal?", frame.Content)
	}
}

func TestDispatchPrivateMessage(t *testing.T) {
	hub, h := newDispatchHandler(t)

	sender := newHubClient(hub, 4)
	recipient := newHubClient(hub, 4)
	secondDevice := newHubClient(hub, 4)
	secondDevice.userID = recipient.userID
	bystander := newHubClient(hub, 4)

	hub.register <- sender
	hub.register <- recipient
	hub.register <- secondDevice
	hub.register <- bystander

	raw := fmt.Sprintf(`{"type":"private_message","to":%q,"content":"meet at five"}`, recipient.userID.String())
	h.dispatch(sender, []byte(raw))

	// every connection of the recipient gets the frame, nobody else does
	for _, c := range []*Client{recipient, secondDevice} {
		frame := decodeChat(t, recvPayload(t, c))
		assert.Equal(t, "receive_private_message", frame.Type)
		assert.Equal(t, sender.userID, frame.Sender)
		assert.Equal(t, "meet at five", frame.Content)
	}
	assertNoPayload(t, bystander)
	assertNoPayload(t, sender)
}

func TestDispatchPrivateMessageRequiresRecipient(t *testing.T) {
	hub, h := newDispatchHandler(t)

	sender := newHubClient(hub, 4)
	hub.register <- sender

	h.dispatch(sender, []byte(`{"type":"private_message","content":"hello"}`))

	var frame errorFrame
	require.NoError(t, json.Unmarshal(recvPayload(t, sender), &frame))
	assert.Equal(t, "error", frame.Type)
	assert.Equal(t, "to and content are required", frame.Message)
}
