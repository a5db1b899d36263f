package ws_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/ws"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, hub *ws.Hub) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, r.URL.Query()["topic"])
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitSubscribers(t *testing.T, hub *ws.Hub, topic string, n int) {
	require.Eventually(t, func() bool { return hub.Subscribers(topic) == n }, time.Second, 5*time.Millisecond)
}

func TestHub_BroadcastByTopic(t *testing.T) {
	hub := ws.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	srv := newServer(t, hub)

	orderSub := dial(t, srv, "topic="+ws.OrderTopic("o1"))
	citySub := dial(t, srv, "topic="+ws.CityTopic("almaty")+"&topic="+ws.DriverTopic("d1"))
	waitSubscribers(t, hub, ws.OrderTopic("o1"), 1)
	waitSubscribers(t, hub, ws.CityTopic("almaty"), 1)

	sent := hub.Broadcast(ws.OrderTopic("o1"), []byte(`{"event":"order.status_changed","order_id":"o1"}`))
	assert.Equal(t, 1, sent)

	_ = orderSub.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := orderSub.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"order.status_changed","order_id":"o1"}`, string(msg))

	assert.Equal(t, 1, hub.Broadcast(ws.DriverTopic("d1"), []byte(`{}`)))
	_ = citySub.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err = citySub.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(msg))

	assert.Equal(t, 0, hub.Broadcast(ws.OrderTopic("nobody"), []byte(`{}`)))
}

func TestHub_UnsubscribesOnClose(t *testing.T) {
	hub := ws.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	srv := newServer(t, hub)

	conn := dial(t, srv, "topic="+ws.OrderTopic("o1"))
	waitSubscribers(t, hub, ws.OrderTopic("o1"), 1)

	require.NoError(t, conn.Close())
	waitSubscribers(t, hub, ws.OrderTopic("o1"), 0)
}

func TestHub_RejectsForeignOrigin(t *testing.T) {
	hub := ws.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)), []string{"http://localhost:3000"})
	srv := newServer(t, hub)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?topic=x"
	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{"http://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
