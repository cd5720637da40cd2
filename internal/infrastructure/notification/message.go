package notification

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hys-retail/storedesk/internal/domain/ticket"
	"github.com/hys-retail/storedesk/internal/infrastructure/telegram"
)

const maxDescriptionRunes = 600

// Message is one notification rendered for every channel.
// HTML uses the Telegram subset of tags and newlines for breaks.
type Message struct {
	Subject string
	HTML    string
	Plain   string
}

// FormatTicketCreated renders the new-ticket alert sent to IT.
func FormatTicketCreated(t *ticket.Ticket) Message {
	desc := truncateRunes(t.Description(), maxDescriptionRunes)
	device := "-"
	if t.DeviceID() != nil {
		device = *t.DeviceID()
	}

	lines := [][2]string{
		{"Store", t.StoreID()},
		{"Requester", t.RequesterName()},
		{"Category", t.Category().String()},
		{"Impact", t.Impact().String()},
		{"Device", device},
		{"Ticket", t.ID()},
	}

	var h, p strings.Builder
	fmt.Fprintf(&h, "<b>[%s] %s</b>\n", t.Priority(), telegram.EscapeHTML(t.Title()))
	fmt.Fprintf(&p, "[%s] %s\n", t.Priority(), t.Title())
	for _, l := range lines {
		fmt.Fprintf(&h, "<b>%s:</b> %s\n", l[0], telegram.EscapeHTML(l[1]))
		fmt.Fprintf(&p, "%s: %s\n", l[0], l[1])
	}
	fmt.Fprintf(&h, "\n%s", telegram.EscapeHTML(desc))
	fmt.Fprintf(&p, "\n%s", desc)

	return Message{
		Subject: fmt.Sprintf("[%s] %s - %s", t.Priority(), t.StoreID(), t.Title()),
		HTML:    h.String(),
		Plain:   p.String(),
	}
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "…"
}
