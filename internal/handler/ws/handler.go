package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"coupon-swap/internal/pkg/clock"
	"coupon-swap/internal/pkg/config"
	"coupon-swap/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Inbound frame. Unused fields stay zero for types that don't need them.
type inbound struct {
	Type    string    `json:"type"`
	Room    string    `json:"room,omitempty"`
	TradeID uuid.UUID `json:"trade_id,omitempty"`
	To      uuid.UUID `json:"to,omitempty"`
	Content string    `json:"content,omitempty"`
}

type chatFrame struct {
	Type    string    `json:"type"`
	Room    string    `json:"room,omitempty"`
	Sender  uuid.UUID `json:"sender,omitempty"`
	Content string    `json:"content,omitempty"`
	SentAt  time.Time `json:"sent_at,omitempty"`
}

type errorFrame struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type Handler struct {
	hub       *Hub
	tradeCmds commands.TradeCommands
	clock     clock.Clock
	cfg       config.WSConfig
	upgrader  websocket.Upgrader
}

func NewHandler(hub *Hub, tradeCmds commands.TradeCommands, clk clock.Clock, cfg config.WSConfig) *Handler {
	return &Handler{
		hub:       hub,
		tradeCmds: tradeCmds,
		clock:     clk,
		cfg:       cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return cfg.AllowAnyOrigin
			},
		},
	}
}

// @Summary WebSocket endpoint
// @Description Upgrade to a realtime connection for room chat and trade updates
// @Tags ws
// @Param user_id query string true "User ID"
// @Success 101
// @Failure 400 {object} map[string]string
// @Router /ws [get]
func (h *Handler) Serve(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid user_id"}})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := newClient(h.hub, conn, userID, h.cfg)
	h.hub.register <- client

	go client.writePump(h.cfg)
	go client.readPump(h)
}

// dispatch runs on the client's read goroutine. Errors are reported only to
// the requesting client; the room never sees another client's failures.
func (h *Handler) dispatch(c *Client, raw []byte) {
	var msg inbound
	if err := json.Unmarshal(raw, &msg); err != nil {
		h.sendError(c, "invalid message")
		return
	}

	switch msg.Type {
	case "join_room":
		if msg.Room == "" {
			h.sendError(c, "room is required")
			return
		}
		h.hub.join <- joinRequest{client: c, room: msg.Room}

	case "confirm_trade":
		if msg.TradeID == uuid.Nil {
			h.sendError(c, "trade_id is required")
			return
		}
		// The hub broadcasts the snapshot via TradeUpdated inside the
		// command; nothing else to send on success.
		if _, err := h.tradeCmds.ConfirmTrade(context.Background(), msg.TradeID, c.userID); err != nil {
			slog.Warn("confirm trade over websocket failed",
				"trade_id", msg.TradeID, "user_id", c.userID, "error", err)
			h.sendError(c, "confirm failed: "+err.Error())
		}

	case "send_message":
		if msg.Room == "" || msg.Content == "" {
			h.sendError(c, "room and content are required")
			return
		}
		h.publishChat(msg.Room, chatFrame{
			Type:    "receive_message",
			Room:    msg.Room,
			Sender:  c.userID,
			Content: msg.Content,
			SentAt:  h.clock.Now(),
		}, nil)

	case "typing":
		if msg.Room == "" {
			h.sendError(c, "room is required")
			return
		}
		// the typist already knows; only the rest of the room cares
		h.publishChat(msg.Room, chatFrame{
			Type:   "user_typing",
			Room:   msg.Room,
			Sender: c.userID,
		}, c)

	case "private_message":
		if msg.To == uuid.Nil || msg.Content == "" {
			h.sendError(c, "to and content are required")
			return
		}
		payload, err := json.Marshal(chatFrame{
			Type:    "receive_private_message",
			Sender:  c.userID,
			Content: msg.Content,
			SentAt:  h.clock.Now(),
		})
		if err != nil {
			return
		}
		h.hub.PublishUser(msg.To, payload)

	case "announcement":
		if msg.Content == "" {
			h.sendError(c, "content is required")
			return
		}
		payload, err := json.Marshal(chatFrame{
			Type:    "receive_announcement",
			Sender:  c.userID,
			Content: msg.Content,
			SentAt:  h.clock.Now(),
		})
		if err != nil {
			return
		}
		h.hub.PublishAll(payload)

	default:
		h.sendError(c, "unknown message type")
	}
}

func (h *Handler) publishChat(room string, frame chatFrame, except *Client) {
	payload, err := json.Marshal(frame)
	if err != nil {
		return
	}
	h.hub.PublishRoomExcept(room, payload, except)
}

func (h *Handler) sendError(c *Client, message string) {
	payload, err := json.Marshal(errorFrame{Type: "error", Message: message})
	if err != nil {
		return
	}
	select {
	case c.send <- payload:
	default:
	}
}
