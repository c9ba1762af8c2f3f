package watch

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/ccm2020/home-assistant/cmd/watch/protocol"
)

// broker manages SSE client connections and broadcasts graph snapshots.
type broker struct {
	mu      sync.Mutex
	clients map[chan protocol.GraphSnapshot]struct{}
	latest  *protocol.GraphSnapshot
	nextID  int64
}

func newBroker() *broker {
	return &broker{
		clients: make(map[chan protocol.GraphSnapshot]struct{}),
	}
}

func (b *broker) subscribe() chan protocol.GraphSnapshot {
	ch := make(chan protocol.GraphSnapshot, 1)
	b.mu.Lock()
	b.clients[ch] = struct{}{}
	if b.latest != nil {
		ch <- *b.latest
	}
	b.mu.Unlock()
	return ch
}

func (b *broker) unsubscribe(ch chan protocol.GraphSnapshot) {
	b.mu.Lock()
	delete(b.clients, ch)
	close(ch)
	b.mu.Unlock()
}

// publish assigns the next id to snapshot and sends it to every client.
// Slow clients miss intermediate snapshots.
func (b *broker) publish(snapshot protocol.GraphSnapshot) protocol.GraphSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	snapshot.ID = b.nextID
	b.latest = &snapshot
	for ch := range b.clients {
		select {
		case ch <- snapshot:
		default:
		}
	}
	return snapshot
}

func newServer(b *broker, port int) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc(protocol.RouteIndex, handleIndex)
	mux.HandleFunc(protocol.RouteEvents, handleSSE(b))

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != protocol.RouteIndex {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(indexHTML)); err != nil {
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

func handleSSE(b *broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		ch := b.subscribe()
		defer b.unsubscribe(ch)

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return
			case snapshot, ok := <-ch:
				if !ok {
					return
				}
				data, err := json.Marshal(snapshot)
				if err != nil {
					return
				}
				fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", snapshot.ID, protocol.SSEEventGraph, data)
				flusher.Flush()
			}
		}
	}
}
