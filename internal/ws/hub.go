// Package ws рассылает короткие подсказки websocket-подписчикам по топикам.
package ws

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 16
)

func OrderTopic(orderID string) string   { return "order:" + orderID }
func DriverTopic(driverID string) string { return "driver:" + driverID }
func CityTopic(city string) string       { return "city:" + city }
func RestaurantTopic(id string) string   { return "restaurant:" + id }

type client struct {
	conn   *websocket.Conn
	send   chan []byte
	topics []string
}

type Hub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu     sync.RWMutex
	topics map[string]map[*client]struct{}
}

func NewHub(logger *slog.Logger, allowedOrigins []string) *Hub {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	return &Hub{
		logger: logger.With(slog.String("component", "ws")),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origins[origin]
			},
		},
		topics: make(map[string]map[*client]struct{}),
	}
}

// Serve апгрейдит запрос и держит подписку соединения на топики, пока
// клиент не отключится.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, topics []string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer), topics: topics}
	h.register(c)

	go h.writePump(c)
	go h.readPump(c)
	return nil
}

// Broadcast ставит payload в очередь каждому подписчику топика и возвращает
// их число. Медленные подписчики отключаются, а не блокируют отправителя.
func (h *Hub) Broadcast(topic string, payload []byte) int {
	h.mu.RLock()
	var slow []*client
	sent := 0
	for c := range h.topics[topic] {
		select {
		case c.send <- payload:
			sent++
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("dropping slow subscriber", slog.String("topic", topic))
		h.unregister(c)
	}
	return sent
}

func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, t := range c.topics {
		if h.topics[t] == nil {
			h.topics[t] = make(map[*client]struct{})
		}
		h.topics[t][c] = struct{}{}
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	registered := false
	for _, t := range c.topics {
		subs := h.topics[t]
		if _, ok := subs[c]; ok {
			registered = true
			delete(subs, c)
		}
		if len(subs) == 0 {
			delete(h.topics, t)
		}
	}
	if registered {
		close(c.send)
	}
}

func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// клиенты ничего не присылают, читаем только чтобы ловить close и pong
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
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
