package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"riko-storefront/storefront-svc/internal/domain"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

const (
	pingInterval = 30 * time.Second
	writeTimeout = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type socketEvent struct {
	Type    string              `json:"type"`
	Message *domain.ChatMessage `json:"message,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// chatSocket streams new messages of one order. Text frames received from the
// client are sent as chat messages. The subscription ends with the connection.
func (h *Handler) chatSocket(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	orderID := mux.Vars(r)["orderId"]

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messages, err := h.Chat.Subscribe(ctx, *sess, orderID)
	if err != nil {
		writeError(w, err, "subscribe to chat")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ERROR: websocket upgrade for %s: %v", orderID, err)
		return
	}
	defer conn.Close()

	// the reader owns incoming frames; only this goroutine writes to conn
	replies := make(chan socketEvent, 8)
	go func() {
		defer cancel()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var msg domain.ChatMessage
			if err := json.Unmarshal(data, &msg); err != nil {
				if !reply(ctx, replies, socketEvent{Type: "error", Error: "invalid message"}) {
					return
				}
				continue
			}
			if _, err := h.Chat.Send(ctx, *sess, orderID, msg); err != nil {
				if !reply(ctx, replies, socketEvent{Type: "error", Error: err.Error()}) {
					return
				}
			}
		}
	}()

	if err := writeEvent(conn, socketEvent{Type: "connected"}); err != nil {
		return
	}

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			if err := writeEvent(conn, socketEvent{Type: "message", Message: &msg}); err != nil {
				return
			}
		case ev := <-replies:
			if err := writeEvent(conn, ev); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func writeEvent(conn *websocket.Conn, ev socketEvent) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(ev)
}

func reply(ctx context.Context, replies chan<- socketEvent, ev socketEvent) bool {
	select {
	case replies <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
