package notification

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hys-retail/storedesk/internal/infrastructure/metrics"
	sharedConfig "github.com/hys-retail/storedesk/internal/shared/config"
	"github.com/hys-retail/storedesk/internal/shared/goroutine"
	"github.com/hys-retail/storedesk/internal/shared/logger"
)

const (
	defaultQueueSize    = 256
	defaultWorkers      = 2
	defaultMaxAttempts  = 3
	defaultRetryBackoff = 500 * time.Millisecond
	maxRetryBackoff     = 30 * time.Second
	sendTimeout         = 15 * time.Second
)

// DispatcherConfig sizes the queue and the retry policy.
type DispatcherConfig struct {
	QueueSize    int
	Workers      int
	MaxAttempts  int
	RetryBackoff time.Duration
}

// ConfigFrom converts the notification settings, filling in defaults for
// non-positive values.
func ConfigFrom(cfg sharedConfig.NotificationConfig) DispatcherConfig {
	c := DispatcherConfig{
		QueueSize:    cfg.QueueSize,
		Workers:      cfg.Workers,
		MaxAttempts:  cfg.MaxAttempts,
		RetryBackoff: time.Duration(cfg.RetryBackoffMs) * time.Millisecond,
	}
	if c.QueueSize <= 0 {
		c.QueueSize = defaultQueueSize
	}
	if c.Workers <= 0 {
		c.Workers = defaultWorkers
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = defaultMaxAttempts
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = defaultRetryBackoff
	}
	return c
}

// Dispatcher delivers messages on a fixed pool of background workers.
// Enqueue never blocks the caller; a full queue drops the message.
type Dispatcher struct {
	cfg      DispatcherConfig
	channels []Channel
	queue    chan Message
	logger   logger.Interface

	// ctx is cancelled when Stop gives up waiting, aborting sends and backoffs.
	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.RWMutex
	closed    bool
	startOnce sync.Once
	wg        sync.WaitGroup
}

// NewDispatcher keeps only the enabled channels.
func NewDispatcher(cfg DispatcherConfig, channels []Channel, log logger.Interface) *Dispatcher {
	enabled := make([]Channel, 0, len(channels))
	for _, ch := range channels {
		if ch.Enabled() {
			enabled = append(enabled, ch)
			continue
		}
		log.Infow("notification channel disabled", "channel", ch.Name())
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		cfg:      cfg,
		channels: enabled,
		queue:    make(chan Message, cfg.QueueSize),
		logger:   log,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start launches the worker pool. Calling it twice is a no-op.
func (d *Dispatcher) Start() {
	d.startOnce.Do(func() {
		for i := 0; i < d.cfg.Workers; i++ {
			d.wg.Add(1)
			goroutine.SafeGo(d.logger, "notification-worker", d.worker)
		}
		d.logger.Infow("notification dispatcher started",
			"workers", d.cfg.Workers,
			"queue_size", d.cfg.QueueSize,
			"channels", len(d.channels),
		)
	})
}

// Enqueue hands msg to the workers and reports whether it was accepted.
func (d *Dispatcher) Enqueue(msg Message) bool {
	if len(d.channels) == 0 {
		return false
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.logger.Warnw("notification dropped after shutdown", "subject", msg.Subject)
		metrics.Notifications.WithLabelValues("queue", "dropped").Inc()
		return false
	}

	select {
	case d.queue <- msg:
		metrics.NotificationQueueDepth.Set(float64(len(d.queue)))
		return true
	default:
		d.logger.Warnw("notification queue full, message dropped", "subject", msg.Subject)
		metrics.Notifications.WithLabelValues("queue", "dropped").Inc()
		return false
	}
}

// Stop closes the queue and waits for the workers to drain it. When ctx
// expires first, in-flight sends are aborted and ctx's error is returned.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		d.logger.Infow("notification dispatcher stopped")
		return nil
	case <-ctx.Done():
		d.cancel()
		d.logger.Warnw("notification dispatcher stop timed out", "pending", len(d.queue))
		return ctx.Err()
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for msg := range d.queue {
		metrics.NotificationQueueDepth.Set(float64(len(d.queue)))
		if d.ctx.Err() != nil {
			metrics.Notifications.WithLabelValues("queue", "dropped").Inc()
			continue
		}
		for _, ch := range d.channels {
			d.deliver(ch, msg)
		}
	}
}

func (d *Dispatcher) deliver(ch Channel, msg Message) {
	backoff := d.cfg.RetryBackoff
	for attempt := 1; ; attempt++ {
		ctx, cancel := context.WithTimeout(d.ctx, sendTimeout)
		err := ch.Send(ctx, msg)
		cancel()

		if err == nil {
			metrics.Notifications.WithLabelValues(ch.Name(), "sent").Inc()
			return
		}

		if errors.Is(err, ErrPermanent) || attempt >= d.cfg.MaxAttempts || d.ctx.Err() != nil {
			d.logger.Errorw("notification delivery failed",
				"channel", ch.Name(),
				"subject", msg.Subject,
				"attempts", attempt,
				"error", err,
			)
			metrics.Notifications.WithLabelValues(ch.Name(), "failed").Inc()
			return
		}

		d.logger.Warnw("notification delivery failed, retrying",
			"channel", ch.Name(),
			"attempt", attempt,
			"backoff", backoff.String(),
			"error", err,
		)

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-d.ctx.Done():
			timer.Stop()
			metrics.Notifications.WithLabelValues(ch.Name(), "failed").Inc()
			return
		}

		backoff *= 2
		if backoff > maxRetryBackoff {
			backoff = maxRetryBackoff
		}
	}
}
