package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hys-retail/storedesk/internal/infrastructure/email"
	"github.com/hys-retail/storedesk/internal/infrastructure/telegram"
)

// ErrPermanent marks a delivery failure that retrying cannot fix.
var ErrPermanent = errors.New("notification: permanent failure")

// Channel delivers a Message to one destination.
type Channel interface {
	Name() string
	Enabled() bool
	Send(ctx context.Context, msg Message) error
}

type TelegramChannel struct {
	client *telegram.BotClient
}

func NewTelegramChannel(client *telegram.BotClient) *TelegramChannel {
	return &TelegramChannel{client: client}
}

func (c *TelegramChannel) Name() string  { return "telegram" }
func (c *TelegramChannel) Enabled() bool { return c.client.Enabled() }

func (c *TelegramChannel) Send(ctx context.Context, msg Message) error {
	err := c.client.SendMessage(ctx, msg.HTML)
	if err != nil && telegram.IsPermanent(err) {
		return fmt.Errorf("%w: %w", ErrPermanent, err)
	}
	return err
}

type EmailChannel struct {
	sender *email.Sender
}

func NewEmailChannel(sender *email.Sender) *EmailChannel {
	return &EmailChannel{sender: sender}
}

func (c *EmailChannel) Name() string  { return "email" }
func (c *EmailChannel) Enabled() bool { return c.sender.Enabled() }

// Send ignores ctx: the SMTP dialer has no cancellation hook.
func (c *EmailChannel) Send(_ context.Context, msg Message) error {
	html := "<html><body><p>" + strings.ReplaceAll(msg.HTML, "\n", "<br>\n") + "</p></body></html>"
	return c.sender.Send(msg.Subject, html, msg.Plain)
}
