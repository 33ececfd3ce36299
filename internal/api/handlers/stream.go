package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"hybridretrofit/internal/api/models"
	"hybridretrofit/internal/optimize"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var streamUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// StreamHandler upgrades to a WebSocket and runs one optimize call per
// connection, emitting progress frames while the MILP solve is in flight.
type StreamHandler struct{}

// NewStreamHandler creates a new optimize/stream handler.
func NewStreamHandler() *StreamHandler {
	return &StreamHandler{}
}

// Run handles GET /api/v1/optimize/stream.
func (h *StreamHandler) Run(c *gin.Context) {
	conn, err := streamUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[stream] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	start := time.Now()

	_, raw, err := conn.ReadMessage()
	if err != nil {
		h.sendFrame(conn, models.StreamFrame{Phase: "error", ElapsedMS: elapsedMS(start), Error: "no request frame received"})
		return
	}

	var req models.OptimizeRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		h.sendFrame(conn, models.StreamFrame{Phase: "error", ElapsedMS: elapsedMS(start), Error: "malformed optimize request: " + err.Error()})
		return
	}
	req.DefaultsApplied()

	h.sendFrame(conn, models.StreamFrame{Phase: "queued", ElapsedMS: elapsedMS(start)})
	h.sendFrame(conn, models.StreamFrame{Phase: "solving", ElapsedMS: elapsedMS(start)})

	resp, err := optimize.Run(req.ToOptimizeRequest())
	if err != nil {
		h.sendFrame(conn, models.StreamFrame{Phase: "error", ElapsedMS: elapsedMS(start), Error: err.Error()})
		return
	}

	h.sendFrame(conn, models.StreamFrame{Phase: "done", ElapsedMS: elapsedMS(start), Result: resp})
}

func (h *StreamHandler) sendFrame(conn *websocket.Conn, frame models.StreamFrame) {
	if err := conn.WriteJSON(frame); err != nil {
		log.Printf("[stream] write failed: %v", err)
	}
}

func elapsedMS(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
