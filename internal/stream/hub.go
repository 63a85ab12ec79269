package stream

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"TailSentinel/internal/model"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	writeWait  = 10 * time.Second
	sendBuffer = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Snapshot is the JSON message pushed to feed clients after every scan.
type Snapshot struct {
	RunID   string         `json:"run_id"`
	AsOf    time.Time      `json:"as_of"`
	Signals []model.Signal `json:"signals"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans scan results out to websocket clients. A new client receives
// the latest snapshot first.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	last    []byte
	logger  zerolog.Logger
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  log.With().Str("component", "stream").Logger(),
	}
}

// Handler serves the feed at /ws and a liveness probe at /healthz.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.ServeWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// Broadcast publishes the report's signals to every connected client.
// Clients that cannot keep up are dropped.
func (h *Hub) Broadcast(r *model.ScanReport) {
	signals := r.Signals
	if signals == nil {
		signals = []model.Signal{}
	}
	msg, err := json.Marshal(Snapshot{RunID: r.RunID, AsOf: r.AsOf, Signals: signals})
	if err != nil {
		h.logger.Error().Err(err).Msg("marshal snapshot")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = msg
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.logger.Warn().Msg("client too slow, dropping")
			h.removeLocked(c)
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.removeLocked(c)
	}
}

// ServeWS upgrades the request and streams snapshots until the client goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("upgrade failed")
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.register(c)
	h.logger.Info().Str("remote", r.RemoteAddr).Msg("client connected")

	go h.writeLoop(c)

	// Reads only detect disconnects; inbound messages are ignored.
	conn.SetReadLimit(512)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.unregister(c)
	h.logger.Info().Str("remote", r.RemoteAddr).Msg("client disconnected")
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	if h.last != nil {
		c.send <- h.last
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

func (h *Hub) writeLoop(c *client) {
	defer c.conn.Close()
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.logger.Warn().Err(err).Msg("write failed")
			return
		}
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
