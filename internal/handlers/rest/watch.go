package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/crusade-api/internal/errors"
	"github.com/KirkDiggler/crusade-api/internal/orchestrators/roster"
)

const (
	defaultWatchBuffer = 16
	writeWait          = 10 * time.Second
	pongWait           = 60 * time.Second
	pingPeriod         = (pongWait * 9) / 10
)

// HubConfig configures the watch hub
type HubConfig struct {
	// Buffer is the number of events queued per watcher before it is dropped
	Buffer int
	// AllowedOrigins lists the browser origins that may open a watch besides
	// the server's own host. "*" allows any origin.
	AllowedOrigins []string
}

// Hub fans committed snapshots out to websocket watchers.
// It implements roster.Notifier.
type Hub struct {
	buffer         int
	allowedOrigins []string
	upgrader       websocket.Upgrader

	mu       sync.Mutex
	watchers map[string]map[*watcher]struct{}
	closed   bool
}

type watcher struct {
	listID string
	send   chan []byte
	once   sync.Once
	done   chan struct{}
}

func (w *watcher) stop() {
	w.once.Do(func() { close(w.done) })
}

var _ roster.Notifier = (*Hub)(nil)

// NewHub creates a hub. A nil config uses defaults.
func NewHub(cfg *HubConfig) *Hub {
	h := &Hub{
		buffer:   defaultWatchBuffer,
		watchers: make(map[string]map[*watcher]struct{}),
	}
	if cfg != nil {
		if cfg.Buffer > 0 {
			h.buffer = cfg.Buffer
		}
		h.allowedOrigins = cfg.AllowedOrigins
	}
	h.upgrader = websocket.Upgrader{CheckOrigin: h.checkOrigin}

	return h
}

// checkOrigin accepts requests without an Origin header, same-host origins
// and the configured allow list.
func (h *Hub) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	for _, allowed := range h.allowedOrigins {
		if allowed == "*" || strings.EqualFold(strings.TrimSuffix(allowed, "/"), origin) {
			return true
		}
	}
	return false
}

// Notify queues the event for every watcher of its list. Watchers that fall
// behind are disconnected rather than blocking the commit path.
func (h *Hub) Notify(_ context.Context, event *roster.Event) {
	if event == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to encode watch event", "list_id", event.ListID, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for w := range h.watchers[event.ListID] {
		select {
		case w.send <- payload:
		default:
			slog.Warn("Dropping slow watcher", "list_id", event.ListID)
			h.removeLocked(w)
		}
	}
}

// Watchers returns the number of connected watchers for a list
func (h *Hub) Watchers(listID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.watchers[listID])
}

// Close disconnects every watcher
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for _, set := range h.watchers {
		for w := range set {
			h.removeLocked(w)
		}
	}
}

func (h *Hub) add(listID string) (*watcher, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, errors.Unavailable("watch hub is shutting down")
	}

	w := &watcher{
		listID: listID,
		send:   make(chan []byte, h.buffer),
		done:   make(chan struct{}),
	}
	if h.watchers[listID] == nil {
		h.watchers[listID] = make(map[*watcher]struct{})
	}
	h.watchers[listID][w] = struct{}{}
	return w, nil
}

func (h *Hub) remove(w *watcher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(w)
}

func (h *Hub) removeLocked(w *watcher) {
	set := h.watchers[w.listID]
	if _, ok := set[w]; !ok {
		return
	}
	delete(set, w)
	if len(set) == 0 {
		delete(h.watchers, w.listID)
	}
	w.stop()
}

// Watch handles GET /v1/lists/{listID}/watch. The current snapshot is sent
// first, then one message per committed change until the client goes away.
// The watcher is registered before the snapshot is read so a commit landing
// in between is queued behind it.
func (h *Handler) Watch(w http.ResponseWriter, r *http.Request) {
	listID := pathVar(r, "listID")

	if !h.hub.checkOrigin(r) {
		slog.Warn("Watch origin rejected", "list_id", listID, "origin", r.Header.Get("Origin"))
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	sub, err := h.hub.add(listID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer h.hub.remove(sub)

	current, err := h.service.GetList(r.Context(), &roster.GetListInput{ListID: listID})
	if err != nil {
		writeError(w, r, err)
		return
	}

	conn, err := h.hub.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		slog.Warn("Watch upgrade failed", "list_id", listID, "error", err)
		return
	}
	defer conn.Close()

	slog.Info("Watcher connected", "list_id", listID, "remote", r.RemoteAddr)

	go readUntilClosed(conn, sub)

	initial := &roster.Event{Type: roster.EventListUpdated, ListID: listID, Snapshot: current.Snapshot}
	if err := writeEvent(conn, initial); err != nil {
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case payload := <-sub.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-sub.done:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}

func writeEvent(conn *websocket.Conn, event *roster.Event) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(event)
}

// readUntilClosed drains client frames so pongs and close frames are processed
func readUntilClosed(conn *websocket.Conn, sub *watcher) {
	defer sub.stop()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
