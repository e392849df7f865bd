// Package spectate streams game snapshots to websocket viewers.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/net/websocket"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Frame is one message sent to viewers.
type Frame struct {
	Snapshot any      `json:"snapshot"`
	Events   []string `json:"events,omitempty"`
}

// NewFrame pairs a snapshot with the names of the events that produced it.
func NewFrame(snapshot any, events []core.Event) Frame {
	f := Frame{Snapshot: snapshot}
	for _, ev := range events {
		f.Events = append(f.Events, ev.Kind.String())
	}
	return f
}

// viewer is a connected websocket client with its outgoing queue.
type viewer struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (v *viewer) close() {
	v.once.Do(func() { close(v.send) })
}

// Hub fans snapshots out to every connected viewer.
// Publish never blocks: a viewer whose queue is full is dropped.
type Hub struct {
	mu      sync.Mutex
	viewers map[*viewer]struct{}
	last    []byte
	buffer  int
	logger  *log.Logger
}

// NewHub creates a hub. buffer is the per-viewer queue length.
func NewHub(logger *log.Logger, buffer int) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{
		viewers: make(map[*viewer]struct{}),
		buffer:  buffer,
		logger:  logger,
	}
}

// Handler returns the HTTP handler: websocket viewers on /ws, a plain
// health check on /healthz.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", websocket.Handler(h.serve))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, "ok %d\n", h.Viewers())
	})
	return mux
}

// serve runs for the lifetime of one viewer connection.
func (h *Hub) serve(ws *websocket.Conn) {
	addr := ws.Request().RemoteAddr
	v := &viewer{conn: ws, send: make(chan []byte, h.buffer)}
	h.add(v)
	h.logger.Info("Viewer connected", "addr", addr, "viewers", h.Viewers())

	defer func() {
		h.remove(v)
		_ = ws.Close()
		h.logger.Info("Viewer disconnected", "addr", addr, "viewers", h.Viewers())
	}()

	go h.writeLoop(v)

	// Viewers do not send anything meaningful; reading only detects close.
	var discard string
	for {
		if err := websocket.Message.Receive(ws, &discard); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(v *viewer) {
	for data := range v.send {
		if err := websocket.Message.Send(v.conn, string(data)); err != nil {
			h.logger.Debug("Viewer write failed", "err", err)
			h.remove(v)
			break
		}
	}
	_ = v.conn.Close()
}

// add registers a viewer and queues the latest frame for it.
func (h *Hub) add(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.viewers[v] = struct{}{}
	if h.last != nil {
		v.send <- h.last
	}
}

func (h *Hub) remove(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.viewers[v]; ok {
		delete(h.viewers, v)
		v.close()
	}
}

// Viewers returns the number of connected viewers.
func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// Publish encodes v as JSON and queues it for every viewer.
func (h *Hub) Publish(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("spectate: cannot encode frame: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = data
	for vw := range h.viewers {
		select {
		case vw.send <- data:
		default:
			delete(h.viewers, vw)
			vw.close()
			h.logger.Warn("Dropped slow viewer")
		}
	}
	return nil
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for v := range h.viewers {
		delete(h.viewers, v)
		v.close()
	}
}

// ListenAndServe serves viewers on addr until ctx is cancelled.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("spectate: cannot listen on %s: %w", addr, err)
	}
	return h.Serve(ctx, ln)
}

// Serve accepts viewers on ln until ctx is cancelled.
func (h *Hub) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("Spectator server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("spectate: server error: %w", err)
	case <-ctx.Done():
	}

	h.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("spectate: shutdown: %w", err)
	}
	return nil
}
