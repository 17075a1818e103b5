package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait     = 5 * time.Second
	broadcastSize = 64
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// ScoreMessage is pushed to every feed client when a score is recorded.
type ScoreMessage struct {
	Type  string `json:"type"`
	Game  string `json:"game"`
	Score int    `json:"score"`
	Best  int    `json:"best"`
}

// client is one feed connection. Broadcasts from the hub and replies from
// the connection's reader share the write lock.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	//nolint:errcheck // A failed deadline surfaces as a write error
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub fans recorded scores out to WebSocket clients.
// Membership changes and broadcasts go through channels owned by Run.
type Hub struct {
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}
	count      atomic.Int64
	logger     *log.Logger
}

// NewHub creates a hub. Call Run to start delivering messages.
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, broadcastSize),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run delivers messages until ctx is cancelled, then closes all clients.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			h.count.Add(1)

		case c := <-h.unregister:
			h.drop(c)

		case msg := <-h.broadcast:
			for c := range h.clients {
				if err := c.write(msg); err != nil {
					h.logger.Warn("feed write failed", "error", err)
					h.drop(c)
				}
			}

		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return
		}
	}
}

// drop closes and forgets c. Only Run calls it.
func (h *Hub) drop(c *client) {
	if !h.clients[c] {
		return
	}
	delete(h.clients, c)
	h.count.Add(-1)
	//nolint:errcheck // Closing a dead connection
	c.conn.Close()
}

// Clients returns the number of connected feed clients.
func (h *Hub) Clients() int {
	return int(h.count.Load())
}

// PublishScore queues a score message for all clients. It never blocks:
// when the queue is full the message is dropped.
func (h *Hub) PublishScore(gameID string, score, best int) {
	data, err := json.Marshal(ScoreMessage{Type: "score", Game: gameID, Score: score, Best: best})
	if err != nil {
		h.logger.Error("cannot encode score message", "error", err)
		return
	}
	select {
	case h.broadcast <- data:
	default:
		h.logger.Warn("feed queue full, dropping score", "game", gameID, "score", score)
	}
}

// handle upgrades the request and keeps the connection until it closes.
// Clients may send "ping" to get {"type":"pong"} back.
func (h *Hub) handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	cl := &client{conn: conn}
	select {
	case h.register <- cl:
	case <-h.done:
		//nolint:errcheck // Hub stopped
		conn.Close()
		return
	}

	pong := []byte(`{"type":"pong"}`)
	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}
		if msgType == websocket.TextMessage && string(msg) == "ping" {
			if err := cl.write(pong); err != nil {
				break
			}
		}
	}

	select {
	case h.unregister <- cl:
	case <-h.done:
	}
}
