package spectate

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

type testSnapshot struct {
	Frame int `json:"frame"`
	Score int `json:"score"`
}

func newTestHub(buffer int) *Hub {
	return NewHub(log.New(io.Discard), buffer)
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	ws, err := websocket.Dial(wsURL, "", srv.URL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

func receiveFrame(t *testing.T, ws *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg map[string]any
	require.NoError(t, websocket.JSON.Receive(ws, &msg))
	return msg
}

func TestNewFrame(t *testing.T) {
	f := NewFrame(testSnapshot{Frame: 3}, []core.Event{
		{Kind: core.EventWallHit},
		{Kind: core.EventBrickHit, Row: 1, Col: 2},
	})

	assert.Equal(t, []string{"WallHit", "BrickHit"}, f.Events)
	assert.Equal(t, testSnapshot{Frame: 3}, f.Snapshot)
	assert.Nil(t, NewFrame(nil, nil).Events)
}

func TestHubBroadcast(t *testing.T) {
	hub := newTestHub(8)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	a := dial(t, srv)
	b := dial(t, srv)
	assert.Eventually(t, func() bool { return hub.Viewers() == 2 }, time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Publish(NewFrame(testSnapshot{Frame: 7, Score: 30}, []core.Event{{Kind: core.EventPaddleHit}})))

	for _, ws := range []*websocket.Conn{a, b} {
		msg := receiveFrame(t, ws)
		snap, ok := msg["snapshot"].(map[string]any)
		require.True(t, ok, "snapshot should be an object, got %v", msg)
		assert.Equal(t, float64(7), snap["frame"])
		assert.Equal(t, float64(30), snap["score"])
		assert.Equal(t, []any{"PaddleHit"}, msg["events"])
	}
}

func TestHubSendsLatestFrameOnConnect(t *testing.T) {
	hub := newTestHub(8)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	require.NoError(t, hub.Publish(NewFrame(testSnapshot{Frame: 1}, nil)))
	require.NoError(t, hub.Publish(NewFrame(testSnapshot{Frame: 2}, nil)))

	ws := dial(t, srv)
	msg := receiveFrame(t, ws)
	snap := msg["snapshot"].(map[string]any)
	assert.Equal(t, float64(2), snap["frame"])
	_, hasEvents := msg["events"]
	assert.False(t, hasEvents, "empty events should be omitted")
}

func TestHubViewerDisconnect(t *testing.T) {
	hub := newTestHub(8)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	ws := dial(t, srv)
	assert.Eventually(t, func() bool { return hub.Viewers() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, ws.Close())
	assert.Eventually(t, func() bool { return hub.Viewers() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHubDropsSlowViewer(t *testing.T) {
	hub := newTestHub(1)
	slow := &viewer{send: make(chan []byte, 1)}
	hub.add(slow)

	require.NoError(t, hub.Publish(testSnapshot{Frame: 1}))
	assert.Equal(t, 1, hub.Viewers())

	// Queue is full now
	require.NoError(t, hub.Publish(testSnapshot{Frame: 2}))
	assert.Equal(t, 0, hub.Viewers())

	// The queued frame is still delivered, then the channel is closed
	data, ok := <-slow.send
	assert.True(t, ok)
	assert.JSONEq(t, `{"frame":1,"score":0}`, string(data))
	_, ok = <-slow.send
	assert.False(t, ok)
}

func TestHubPublishEncodeError(t *testing.T) {
	hub := newTestHub(1)
	err := hub.Publish(func() {})
	assert.Error(t, err)
}

func TestHubHealthz(t *testing.T) {
	hub := newTestHub(1)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok 0\n", string(body))
}

func TestHubServeStopsOnCancel(t *testing.T) {
	hub := newTestHub(1)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- hub.Serve(ctx, ln) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestListenAndServeBadAddress(t *testing.T) {
	hub := newTestHub(1)
	err := hub.ListenAndServe(context.Background(), "not-an-address")
	assert.Error(t, err)
}
