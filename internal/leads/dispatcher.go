package leads

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.uber.org/fx"

	"github.com/malamapl09/plexo-marketing/pkg/logger"
)

const (
	dispatchQueueSize = 64
	dispatchTimeout   = 30 * time.Second
)

// Dispatcher delivers notifications on its own goroutine so a slow mail
// provider never holds a visitor's response. When the queue is full the
// notification is dropped; the collector already has the lead.
type Dispatcher struct {
	notifier Notifier
	log      *slog.Logger
	queue    chan Notification
	timeout  time.Duration

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewDispatcher creates a stopped dispatcher. Notifications enqueued before
// Start are buffered.
func NewDispatcher(notifier Notifier, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		log:      log.With(logger.Scope("leads.dispatcher")),
		queue:    make(chan Notification, dispatchQueueSize),
		timeout:  dispatchTimeout,
	}
}

// Enqueue never blocks. It reports whether the notification was queued.
func (d *Dispatcher) Enqueue(n Notification) bool {
	select {
	case d.queue <- n:
		return true
	default:
		LeadNotifications.WithLabelValues(NotificationDropped).Inc()
		d.log.Warn("notification queue full, dropping",
			slog.String("template", n.Template))
		return false
	}
}

// Start launches the delivery loop.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return
	}
	d.running = true
	d.stopCh = make(chan struct{})
	d.doneCh = make(chan struct{})
	go d.run(d.stopCh, d.doneCh)
}

// Stop waits for queued notifications to go out, or for ctx to end.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return nil
	}
	d.running = false
	close(d.stopCh)
	done := d.doneCh
	d.mu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
		d.log.Warn("notification dispatcher stop timeout", slog.Int("pending", len(d.queue)))
	}
	return nil
}

func (d *Dispatcher) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case n := <-d.queue:
			d.deliver(n)
		case <-stop:
			for {
				select {
				case n := <-d.queue:
					d.deliver(n)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) deliver(n Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.notifier.Notify(ctx, n); err != nil {
		LeadNotifications.WithLabelValues(NotificationFailed).Inc()
		d.log.Error("lead notification failed",
			slog.String("template", n.Template),
			logger.Error(err))
		return
	}
	LeadNotifications.WithLabelValues(NotificationSent).Inc()
}

// RegisterDispatcherLifecycle ties the dispatcher to the application lifecycle.
func RegisterDispatcherLifecycle(lc fx.Lifecycle, d *Dispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			d.Start()
			return nil
		},
		OnStop: d.Stop,
	})
}
