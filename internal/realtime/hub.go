package realtime

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendQueueSize  = 16
	maxInboundSize = 512
)

// Instrumentation receives hub lifecycle observations. A nil value
// disables instrumentation.
type Instrumentation interface {
	SetRealtimeClients(n int)
	ObserveBroadcast(event string)
}

// frame is the wire format pushed to display clients.
type frame struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub is the process-wide connection manager. Broadcasts are
// fire-and-forget: clients that cannot keep up are disconnected and
// missed events are never replayed.
type Hub struct {
	clients    map[*client]struct{}
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	logger     *zap.Logger
	metrics    Instrumentation
	upgrader   websocket.Upgrader
}

// NewHub constructs a hub. Run must be started on its own goroutine
// before the hub is attached to services.
func NewHub(logger *zap.Logger, metrics Instrumentation) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[*client]struct{}),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *client),
		unregister: make(chan *client),
		logger:     logger,
		metrics:    metrics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origins are already filtered by the CORS layer.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Run owns the client set; all membership changes go through its loop.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.observeClients()
			h.logger.Debug("display client connected", zap.Int("clients", len(h.clients)))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.observeClients()
				h.logger.Debug("display client disconnected", zap.Int("clients", len(h.clients)))
			}

		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					delete(h.clients, c)
					close(c.send)
					h.observeClients()
				}
			}
		}
	}
}

// Broadcast encodes the event and queues it for every connected client.
func (h *Hub) Broadcast(event string, payload interface{}) {
	raw, err := json.Marshal(frame{Event: event, Payload: payload})
	if err != nil {
		h.logger.Warn("failed to encode broadcast frame", zap.String("event", event), zap.Error(err))
		return
	}
	if h.metrics != nil {
		h.metrics.ObserveBroadcast(event)
	}
	select {
	case h.broadcast <- raw:
	default:
		h.logger.Warn("broadcast queue full, dropping event", zap.String("event", event))
	}
}

// ServeHTTP upgrades the request and registers the connection.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{hub: h, conn: conn, send: make(chan []byte, sendQueueSize)}
	h.register <- c

	go c.writePump()
	go c.readPump()
}

func (h *Hub) observeClients() {
	if h.metrics != nil {
		h.metrics.SetRealtimeClients(len(h.clients))
	}
}

// readPump drains inbound frames so pings are answered; display clients
// never send application data.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close() //nolint:errcheck
	}()
	c.conn.SetReadLimit(maxInboundSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close() //nolint:errcheck
	}()
	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
