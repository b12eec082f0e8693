package http

import (
	"fmt"
	"net/http"
	"sync"
	"time"
)

const reloadHeartbeat = 25 * time.Second

// ReloadHub pushes a server-sent "reload" event to every connected page.
type ReloadHub struct {
	mu      sync.Mutex
	clients map[chan struct{}]struct{}
}

func NewReloadHub() *ReloadHub {
	return &ReloadHub{clients: make(map[chan struct{}]struct{})}
}

// Broadcast wakes every client. A client that has not yet consumed the
// previous event gets only one.
func (h *ReloadHub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.clients {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (h *ReloadHub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *ReloadHub) subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *ReloadHub) unsubscribe(ch chan struct{}) {
	h.mu.Lock()
	delete(h.clients, ch)
	h.mu.Unlock()
}

func (h *ReloadHub) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := h.subscribe()
	defer h.unsubscribe(ch)

	_, _ = fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	ticker := time.NewTicker(reloadHeartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-req.Context().Done():
			return
		case <-ticker.C:
			_, _ = fmt.Fprint(w, ": ping\n\n")
		case <-ch:
			_, _ = fmt.Fprint(w, "event: reload\ndata: {}\n\n")
		}
		flusher.Flush()
	}
}
