package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

// notifyWaitSlice bounds each WaitForNotification call so the receive loop
// periodically returns to drain pending LISTEN/UNLISTEN requests.
const notifyWaitSlice = 100 * time.Millisecond

// listenOp is a LISTEN/UNLISTEN statement queued for the receive loop,
// which is the only goroutine allowed to touch the pgx connection.
type listenOp struct {
	stmt string
	done chan error
}

// NotifyListener holds one dedicated PostgreSQL connection in LISTEN mode
// and feeds received notifications to the local ConnectionManager. Channel
// subscriptions are reference-counted by the manager; the listener only
// tracks which channels its connection is LISTENing on.
type NotifyListener struct {
	connString string
	manager    *ConnectionManager

	conn   *pgx.Conn
	connMu sync.Mutex

	active   map[string]struct{}
	activeMu sync.RWMutex

	// ops serializes LISTEN/UNLISTEN through the receive loop. Running them
	// from other goroutines races WaitForNotification ("conn busy").
	ops     chan listenOp
	running atomic.Bool

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewNotifyListener creates a listener over a fresh dedicated connection.
func NewNotifyListener(connString string, manager *ConnectionManager) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		manager:    manager,
		active:     make(map[string]struct{}),
		ops:        make(chan listenOp, 16),
	}
}

// Start opens the LISTEN connection and launches the receive loop.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()

	l.running.Store(true)

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("NotifyListener started")
	return nil
}

// Subscribe issues LISTEN for a channel. Idempotent.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	l.activeMu.RLock()
	_, ok := l.active[channel]
	l.activeMu.RUnlock()
	if ok {
		return nil
	}

	sanitized := pgx.Identifier{channel}.Sanitize()
	if err := l.runOnLoop(ctx, "LISTEN "+sanitized); err != nil {
		return fmt.Errorf("LISTEN %s failed: %w", sanitized, err)
	}

	l.activeMu.Lock()
	l.active[channel] = struct{}{}
	l.activeMu.Unlock()
	slog.Debug("Subscribed to NOTIFY channel", "channel", channel)
	return nil
}

// Unsubscribe issues UNLISTEN for a channel. Idempotent.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	l.activeMu.RLock()
	_, ok := l.active[channel]
	l.activeMu.RUnlock()
	if !ok {
		return nil
	}
	if !l.running.Load() {
		return nil
	}

	sanitized := pgx.Identifier{channel}.Sanitize()
	if err := l.runOnLoop(ctx, "UNLISTEN "+sanitized); err != nil {
		return fmt.Errorf("UNLISTEN %s failed: %w", sanitized, err)
	}

	l.activeMu.Lock()
	delete(l.active, channel)
	l.activeMu.Unlock()
	return nil
}

// runOnLoop hands a statement to the receive loop and waits for the result.
func (l *NotifyListener) runOnLoop(ctx context.Context, stmt string) error {
	if !l.running.Load() {
		return fmt.Errorf("LISTEN connection not established")
	}

	op := listenOp{stmt: stmt, done: make(chan error, 1)}
	select {
	case l.ops <- op:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-op.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// receiveLoop alternates between draining queued LISTEN/UNLISTEN statements
// and waiting for notifications. It owns the pgx connection.
func (l *NotifyListener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.drainOps(ctx)

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()

		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		waitCtx, cancel := context.WithTimeout(ctx, notifyWaitSlice)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				// Timeout slice elapsed, go back for queued statements.
				continue
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.manager.Broadcast(notification.Channel, []byte(notification.Payload))
	}
}

func (l *NotifyListener) drainOps(ctx context.Context) {
	for {
		select {
		case op := <-l.ops:
			l.connMu.Lock()
			conn := l.conn
			l.connMu.Unlock()

			if conn == nil {
				op.done <- fmt.Errorf("LISTEN connection not established")
				continue
			}

			_, err := conn.Exec(ctx, op.stmt)
			op.done <- err
		default:
			return
		}
	}
}

// reconnect replaces a dead connection with exponential backoff and
// re-issues LISTEN for every channel that was active.
func (l *NotifyListener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		l.conn = conn

		l.activeMu.RLock()
		for ch := range l.active {
			sanitized := pgx.Identifier{ch}.Sanitize()
			if _, err := conn.Exec(ctx, "LISTEN "+sanitized); err != nil {
				slog.Error("Re-LISTEN failed", "channel", ch, "error", err)
			}
		}
		l.activeMu.RUnlock()

		slog.Info("NotifyListener reconnected")
		return
	}
}

// Stop halts the receive loop, waits for it, then closes the connection.
// Closing first would race WaitForNotification.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.running.Store(false)

	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
