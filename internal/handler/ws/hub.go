package ws

import (
	"context"
	"encoding/json"
	"log/slog"

	resdto "coupon-swap/internal/handler/dto/response"
	"coupon-swap/internal/usecase/queries"

	"github.com/google/uuid"
)

type roomMessage struct {
	room    string
	payload []byte
	// except is skipped during fan-out; nil means deliver to everyone
	except *Client
}

type directMessage struct {
	to      uuid.UUID
	payload []byte
}

type joinRequest struct {
	client *Client
	room   string
}

// Hub owns all room membership and fan-out. All state is confined to the
// Run goroutine; other goroutines talk to it through channels only.
// Delivery to subscribers is at-least-once and unordered: a slow client's
// frames may arrive in any interleaving, and receivers must treat every
// trade frame as a full snapshot, not a delta.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	join       chan joinRequest
	room       chan roomMessage
	direct     chan directMessage
	all        chan []byte

	clients map[*Client]bool
	rooms   map[string]map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		join:       make(chan joinRequest),
		room:       make(chan roomMessage, 64),
		direct:     make(chan directMessage, 16),
		all:        make(chan []byte, 16),
		clients:    make(map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				close(c.send)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				for room := range c.rooms {
					h.leaveRoom(c, room)
				}
				close(c.send)
			}
		case req := <-h.join:
			members, ok := h.rooms[req.room]
			if !ok {
				members = make(map[*Client]bool)
				h.rooms[req.room] = members
			}
			members[req.client] = true
			req.client.rooms[req.room] = true
		case msg := <-h.room:
			for c := range h.rooms[msg.room] {
				if c == msg.except {
					continue
				}
				h.send(c, msg.payload)
			}
		case msg := <-h.direct:
			// a user may hold several connections; deliver to each
			for c := range h.clients {
				if c.userID == msg.to {
					h.send(c, msg.payload)
				}
			}
		case payload := <-h.all:
			for c := range h.clients {
				h.send(c, payload)
			}
		}
	}
}

// A full send buffer means the client stopped draining; drop it rather
// than block the hub loop.
func (h *Hub) send(c *Client, payload []byte) {
	select {
	case c.send <- payload:
	default:
		delete(h.clients, c)
		for room := range c.rooms {
			h.leaveRoom(c, room)
		}
		close(c.send)
	}
}

func (h *Hub) leaveRoom(c *Client, room string) {
	members, ok := h.rooms[room]
	if !ok {
		return
	}
	delete(members, c)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}

func (h *Hub) PublishRoom(room string, payload []byte) {
	h.room <- roomMessage{room: room, payload: payload}
}

// PublishRoomExcept fans out to the room while skipping one client,
// typically the sender of the originating frame.
func (h *Hub) PublishRoomExcept(room string, payload []byte, except *Client) {
	h.room <- roomMessage{room: room, payload: payload, except: except}
}

// PublishUser delivers to every live connection of a single user.
func (h *Hub) PublishUser(to uuid.UUID, payload []byte) {
	h.direct <- directMessage{to: to, payload: payload}
}

func (h *Hub) PublishAll(payload []byte) {
	h.all <- payload
}

// TradeUpdated pushes a full trade snapshot to the trade's room. Broadcast
// failures never fail the caller; a missed frame is recovered through the
// open-trades query.
func (h *Hub) TradeUpdated(roomID string, view *queries.TradeView) {
	payload, err := json.Marshal(tradeUpdateFrame{
		Type:  "trade_update",
		Trade: resdto.FromTradeView(view),
	})
	if err != nil {
		slog.Error("failed to encode trade update", "trade_id", view.ID, "error", err)
		return
	}
	h.PublishRoom(roomID, payload)
}

type tradeUpdateFrame struct {
	Type  string                `json:"type"`
	Trade *resdto.TradeResponse `json:"trade"`
}
