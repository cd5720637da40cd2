package ticket

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	vo "github.com/hys-retail/storedesk/internal/domain/ticket/valueobjects"
)

const maxCommentLength = 5000

type Comment struct {
	id         string
	ticketID   string
	authorRole vo.AuthorRole
	authorName string
	body       string
	createdAt  time.Time
}

func NewComment(ticketID string, authorRole vo.AuthorRole, authorName, body string, now time.Time) (*Comment, error) {
	if ticketID == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !authorRole.IsValid() {
		return nil, fmt.Errorf("invalid author role: %s", authorRole)
	}
	if body == "" {
		return nil, fmt.Errorf("comment body cannot be empty")
	}
	if utf8.RuneCountInString(body) > maxCommentLength {
		return nil, fmt.Errorf("comment exceeds maximum length of %d characters", maxCommentLength)
	}
	if utf8.RuneCountInString(authorName) > maxNameLength {
		return nil, fmt.Errorf("author name exceeds maximum length of %d characters", maxNameLength)
	}

	return &Comment{
		id:         uuid.NewString(),
		ticketID:   ticketID,
		authorRole: authorRole,
		authorName: authorName,
		body:       body,
		createdAt:  now,
	}, nil
}

func ReconstructComment(id, ticketID string, authorRole vo.AuthorRole, authorName, body string, createdAt time.Time) *Comment {
	return &Comment{
		id:         id,
		ticketID:   ticketID,
		authorRole: authorRole,
		authorName: authorName,
		body:       body,
		createdAt:  createdAt,
	}
}

func (c *Comment) ID() string {
	return c.id
}

func (c *Comment) TicketID() string {
	return c.ticketID
}

func (c *Comment) AuthorRole() vo.AuthorRole {
	return c.authorRole
}

func (c *Comment) AuthorName() string {
	return c.authorName
}

func (c *Comment) Body() string {
	return c.body
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}
