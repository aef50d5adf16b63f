package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"NobelDashboard/internal/dashboard"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server -> client message. Type is "figures" or "error".
type socketReply struct {
	Type    string            `json:"type"`
	Figures *dashboard.Output `json:"figures,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// HandleDashboardSocket godoc
// @Summary      Dashboard WebSocket
// @Description  Each text message is a dashboard.Input and is answered by exactly one reply,
// @Description  {"type":"figures","figures":dashboard.Output} or {"type":"error","error":"..."}.
// @Description  Messages on one connection are processed in order.
// @Description  Each connection has its own rate limit; refused messages get {"type":"error","error":"Too many requests"}.
// @Description  <br>
// @Description  **This is not a plain HTTP API.** Connect with `ws://` or `wss://`.
// @Tags         Dashboard
// @Success      101 {string} string "101 Switching Protocols"
// @Failure      500 {object} handler.ErrorResponse "upgrade failed"
// @Router       /ws/dashboard [get]
func (h *DashboardHandler) HandleDashboardSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("HandleDashboardSocket(): Failed to upgrade to WebSocket: %v", err)
		return
	}
	sessionID := uuid.New().String()
	log.Printf("HandleDashboardSocket(): session %s connected from %s", sessionID, c.ClientIP())

	h.manageDashboardSession(c.Request.Context(), conn, sessionID)
}

func (h *DashboardHandler) manageDashboardSession(ctx context.Context, conn *websocket.Conn, sessionID string) {
	defer conn.Close()
	limiter := rate.NewLimiter(h.socketLimit, h.socketBurst)

ReadLoop:
	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("manageDashboardSession(): Error reading message (session %s): %v", sessionID, err)
			}
			break ReadLoop
		}
		if messageType != websocket.TextMessage {
			log.Printf("manageDashboardSession(): Unsupported message type (session %s): %d", sessionID, messageType)
			continue
		}

		var reply socketReply
		if limiter.Allow() {
			reply = h.runSocketCycle(ctx, message)
		} else {
			log.Printf("manageDashboardSession(): Rate limit exceeded (session %s)", sessionID)
			reply = socketReply{Type: "error", Error: "Too many requests"}
		}
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("manageDashboardSession(): Error sending reply (session %s): %v", sessionID, err)
			break ReadLoop
		}
	}
	log.Printf("manageDashboardSession(): session %s ended", sessionID)
}

func (h *DashboardHandler) runSocketCycle(ctx context.Context, message []byte) socketReply {
	in := newInput()
	if err := json.Unmarshal(message, &in); err != nil {
		return socketReply{Type: "error", Error: "Invalid request: " + err.Error()}
	}
	out, err := h.runner.Run(ctx, in)
	if err != nil {
		log.Printf("[ERROR] runSocketCycle(): %v", err)
		return socketReply{Type: "error", Error: err.Error()}
	}
	return socketReply{Type: "figures", Figures: &out}
}
