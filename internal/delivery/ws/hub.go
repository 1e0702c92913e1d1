// Package ws implements the realtime relay: a hub that fans stamped chat
// messages out to every connected WebSocket client.
package ws

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"chatline/config"
	"chatline/internal/domain/lifecycle"

	"go.uber.org/fx"
)

// Hub owns the set of connected clients and runs the single event loop that
// serializes registration, unregistration, and broadcast. All mutation of the
// client set happens on that loop.
type Hub struct {
	cfg    *config.Config
	logger *slog.Logger

	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	mu     sync.RWMutex
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// HubParams holds dependencies for the relay hub.
type HubParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewHub constructs the hub and binds its event loop to the fx lifecycle.
func NewHub(params HubParams) *Hub {
	hub := newHub(params.Config, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go hub.Run()

			return nil
		},
		OnStop: func(context.Context) error {
			return hub.Shutdown(lifecycle.DefaultTimeout)
		},
	})

	return hub
}

func newHub(cfg *config.Config, logger *slog.Logger) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	return &Hub{
		cfg:        cfg,
		logger:     logger,
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
}

// Register hands a client to the event loop for admission.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.ctx.Done():
	}
}

// Unregister hands a client to the event loop for removal.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.ctx.Done():
	}
}

// Broadcast queues a stamped message for delivery to every connected client,
// the sender included.
func (h *Hub) Broadcast(payload []byte) {
	select {
	case h.broadcast <- payload:
	case <-h.ctx.Done():
	}
}

// Run is the hub event loop. It owns the client set and must be the only
// goroutine that mutates it.
func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.ctx.Done():
			h.closeAllClients()

			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.admit(client)

		case client := <-h.unregister:
			h.remove(client)

		case payload := <-h.broadcast:
			h.fanOut(payload)
		}
	}
}

func (h *Hub) admit(client *Client) {
	h.mu.Lock()
	client.closed = false
	h.clients[client] = struct{}{}
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("relay client connected",
		slog.String("username", client.username()),
		slog.Int("clients", total))
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mu.Unlock()

		return
	}
	delete(h.clients, client)
	client.closed = true
	total := len(h.clients)
	h.mu.Unlock()

	// Close outside the lock so a blocked writePump can drain first.
	close(client.send)

	h.logger.Info("relay client disconnected",
		slog.String("username", client.username()),
		slog.Int("clients", total))
}

// fanOut delivers the payload to every connected client. A client whose send
// buffer is full cannot keep up and is dropped rather than allowed to stall
// the loop.
func (h *Hub) fanOut(payload []byte) {
	var stalled []*Client
	for _, client := range h.snapshot() {
		if !h.trySend(client, payload) {
			stalled = append(stalled, client)
		}
	}

	for _, client := range stalled {
		h.logger.Warn("dropping relay client with full send buffer",
			slog.String("username", client.username()))
		h.remove(client)
	}
}

func (h *Hub) trySend(client *Client, payload []byte) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if _, ok := h.clients[client]; !ok || client.closed {
		return false
	}

	select {
	case client.send <- payload:
		return true
	default:
		return false
	}
}

func (h *Hub) snapshot() []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}

	return clients
}

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

func (h *Hub) closeAllClients() {
	for _, client := range h.snapshot() {
		if client.conn == nil {
			continue
		}
		if err := client.conn.Close(); err != nil && !isExpectedCloseError(err) {
			h.logger.Warn("closing relay client connection",
				slog.String("username", client.username()),
				slog.Any("error", err))
		}
	}
}

// Shutdown stops the event loop, closes every connection, and waits for the
// client pumps to finish or the timeout to pass.
func (h *Hub) Shutdown(timeout time.Duration) error {
	h.cancel()
	<-h.done

	finished := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		h.logger.Info("relay hub stopped")

		return nil
	case <-time.After(timeout):
		h.logger.Warn("relay hub shutdown timed out")

		return context.DeadlineExceeded
	}
}
