// Package notifications implements the in-process notification bus behind
// the EventPublisher port. Connections are live push channels (typically
// HTTP event streams) keyed by user; delivery is best-effort at-most-once
// with no replay.
package notifications

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/ports"
)

// DefaultKeepaliveInterval is how often idle connections are pinged.
// Pings double as liveness probes: a failed ping prunes the connection.
const DefaultKeepaliveInterval = 30 * time.Second

// PushFunc delivers one serialized event to a live connection. A non-nil
// error marks the connection dead and unregisters it.
type PushFunc func(payload []byte) error

// connectionKey identifies one live connection. A user may hold several
// connections at once (one per open client), told apart by nonce.
type connectionKey struct {
	userID kernel.UUID
	nonce  string
}

// connection serializes writes to a single push target. Event publishes and
// keepalive pings race otherwise.
type connection struct {
	mu   sync.Mutex
	push PushFunc
}

func (c *connection) send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.push(payload)
}

// Bus fans events out to a user's live connections.
type Bus struct {
	mu          sync.RWMutex
	connections map[connectionKey]*connection

	keepalive time.Duration
	logger    *slog.Logger

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewBus creates a notification bus. A non-positive keepalive interval
// falls back to DefaultKeepaliveInterval.
func NewBus(keepalive time.Duration, logger *slog.Logger) *Bus {
	if keepalive <= 0 {
		keepalive = DefaultKeepaliveInterval
	}

	return &Bus{
		connections: make(map[connectionKey]*connection),
		keepalive:   keepalive,
		logger:      logger.With("component", "notification_bus"),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Register adds a live connection for the user. Registering the same
// userID+nonce pair again replaces the previous push target.
func (b *Bus) Register(userID kernel.UUID, nonce string, push PushFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.connections[connectionKey{userID: userID, nonce: nonce}] = &connection{push: push}
}

// Unregister removes a connection. Removing an unknown connection is a no-op.
func (b *Bus) Unregister(userID kernel.UUID, nonce string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.connections, connectionKey{userID: userID, nonce: nonce})
}

// Publish serializes the event once and pushes it to every live connection
// of the recipient. Connections whose push fails are pruned; nothing is
// queued for users with no open connections.
func (b *Bus) Publish(ctx context.Context, recipientID kernel.UUID, event ports.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		b.logger.ErrorContext(ctx, "Failed to serialize notification event",
			"event", event.Name, "error", err)
		return
	}

	for key, conn := range b.connectionsFor(recipientID) {
		if err := conn.send(payload); err != nil {
			b.logger.DebugContext(ctx, "Pruning dead notification connection",
				"user_id", key.userID.String(), "error", err)
			b.Unregister(key.userID, key.nonce)
		}
	}
}

// Start launches the keepalive loop. Call Stop to shut it down.
func (b *Bus) Start() {
	go b.keepaliveLoop()
}

// Stop terminates the keepalive loop and waits for it to exit.
// Registered connections stay registered; their owners close them.
func (b *Bus) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	<-b.done
}

func (b *Bus) keepaliveLoop() {
	defer close(b.done)

	ticker := time.NewTicker(b.keepalive)
	defer ticker.Stop()

	ping, _ := json.Marshal(ports.Event{Name: "ping"})

	for {
		select {
		case <-b.stop:
			return
		case <-ticker.C:
			b.pingAll(ping)
		}
	}
}

// pingAll probes every connection, pruning the ones whose push fails.
func (b *Bus) pingAll(payload []byte) {
	b.mu.RLock()
	snapshot := make(map[connectionKey]*connection, len(b.connections))
	for key, conn := range b.connections {
		snapshot[key] = conn
	}
	b.mu.RUnlock()

	for key, conn := range snapshot {
		if err := conn.send(payload); err != nil {
			b.Unregister(key.userID, key.nonce)
		}
	}
}

func (b *Bus) connectionsFor(userID kernel.UUID) map[connectionKey]*connection {
	b.mu.RLock()
	defer b.mu.RUnlock()

	matched := make(map[connectionKey]*connection)
	for key, conn := range b.connections {
		if key.userID == userID {
			matched[key] = conn
		}
	}
	return matched
}
