package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofiber/websocket/v2"

	"github.com/MSwiderski999/brainrotAI/engine"
)

// MessageType names the kinds of websocket messages.
type MessageType string

const (
	MessageTypeSearch   MessageType = "search"
	MessageTypeRootMove MessageType = "rootMove"
	MessageTypeBestMove MessageType = "bestMove"
	MessageTypeError    MessageType = "error"
)

type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RootMove is streamed once per finished root move.
type RootMove struct {
	ID string `json:"id"`
	engine.RootInfo
}

// conn is the part of *websocket.Conn the handler needs.
type conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v any) error
}

// serveSearch reads search requests until the client goes away. Searches
// on one connection run one after another.
func (h *handlers) serveSearch(c conn) {
	for {
		messageType, data, err := c.ReadMessage()
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("ws read: %v", err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			h.sendError(c, fmt.Errorf("parse message: %w", err))
			continue
		}
		if err := h.handleMessage(c, msg); err != nil {
			h.sendError(c, err)
		}
	}
}

func (h *handlers) handleMessage(c conn, msg Message) error {
	switch msg.Type {
	case MessageTypeSearch:
		var req SearchRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return fmt.Errorf("parse search payload: %w", err)
		}
		var writeErr error
		res, err := h.analyzer.Search(context.Background(), req, func(id string, ri engine.RootInfo) {
			if writeErr == nil {
				writeErr = send(c, MessageTypeRootMove, RootMove{ID: id, RootInfo: ri})
			}
		})
		if err != nil {
			return err
		}
		if writeErr != nil {
			return writeErr
		}
		return send(c, MessageTypeBestMove, res)
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func send(c conn, t MessageType, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.WriteJSON(Message{Type: t, Payload: raw})
}

func (h *handlers) sendError(c conn, err error) {
	if h.logger != nil {
		h.logger.Printf("ws: %v", err)
	}
	if werr := send(c, MessageTypeError, map[string]string{"error": err.Error()}); werr != nil && h.logger != nil {
		h.logger.Printf("ws write: %v", werr)
	}
}
