package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/coursedesk/coursedesk/internal/adapter/email"
)

// Dispatcher delivers queued notifications through the mail relay using a
// bounded worker pool. Submission never blocks a state transition: a full
// queue drops the event with a log line.
type Dispatcher struct {
	sender      email.Sender
	workers     int
	sendTimeout time.Duration
	logger      *slog.Logger

	jobs   chan Notification
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDispatcher constructs the notification worker pool.
func NewDispatcher(sender email.Sender, queueSize, workers int, sendTimeout time.Duration, logger *slog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	if sendTimeout <= 0 {
		sendTimeout = 10 * time.Second
	}
	return &Dispatcher{
		sender:      sender,
		workers:     workers,
		sendTimeout: sendTimeout,
		logger:      logger,
		jobs:        make(chan Notification, queueSize),
	}
}

// Start launches delivery workers.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop waits for all workers to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Submit queues a notification for delivery. Returns false when the queue is
// saturated; the event is dropped and logged, the caller's transition stands.
func (d *Dispatcher) Submit(n Notification) bool {
	if n.Recipient == "" {
		d.logger.Warn("notification without recipient dropped", slog.String("kind", string(n.Kind)))
		return false
	}
	select {
	case d.jobs <- n:
		return true
	default:
		d.logger.Warn("notification queue saturated, event dropped",
			slog.String("kind", string(n.Kind)), slog.String("recipient", n.Recipient))
		return false
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-d.jobs:
			if !ok {
				return
			}
			d.deliver(ctx, n)
		}
	}
}

// deliver sends one notification. Failure is logged and never propagated:
// a failed email must not revert the business outcome it announces.
func (d *Dispatcher) deliver(ctx context.Context, n Notification) {
	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	msg := render(n)
	if err := d.sender.Send(sendCtx, msg); err != nil {
		d.logger.Error("notification delivery failed",
			slog.String("kind", string(n.Kind)),
			slog.String("recipient", n.Recipient),
			slog.String("error", err.Error()))
		return
	}
	d.logger.Info("notification delivered",
		slog.String("kind", string(n.Kind)),
		slog.String("recipient", n.Recipient))
}
