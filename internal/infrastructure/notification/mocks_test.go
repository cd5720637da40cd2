package notification

import (
	"context"
	"sync"
)

type fakeChannel struct {
	name     string
	disabled bool
	mu       sync.Mutex
	sent     []Message
	attempts int
	// sendFunc overrides the default success; attempt is 1-based.
	sendFunc func(ctx context.Context, attempt int) error
}

func (c *fakeChannel) Name() string  { return c.name }
func (c *fakeChannel) Enabled() bool { return !c.disabled }

func (c *fakeChannel) Send(ctx context.Context, msg Message) error {
	c.mu.Lock()
	c.attempts++
	attempt := c.attempts
	c.mu.Unlock()

	if c.sendFunc != nil {
		if err := c.sendFunc(ctx, attempt); err != nil {
			return err
		}
	}

	c.mu.Lock()
	c.sent = append(c.sent, msg)
	c.mu.Unlock()
	return nil
}

func (c *fakeChannel) sentCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sent)
}

func (c *fakeChannel) attemptCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attempts
}

type recordingQueue struct {
	msgs []Message
}

func (q *recordingQueue) Enqueue(msg Message) bool {
	q.msgs = append(q.msgs, msg)
	return true
}
