package dto

import (
	"time"

	"github.com/hys-retail/storedesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID             string       `json:"id"`
	StoreID        string       `json:"store_id"`
	DeviceID       *string      `json:"device_id,omitempty"`
	RequesterName  string       `json:"requester_name"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Category       string       `json:"category"`
	Impact         string       `json:"impact"`
	Priority       string       `json:"priority"`
	Status         string       `json:"status"`
	AssignedTo     *string      `json:"assigned_to,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	ClosedAt       *time.Time   `json:"closed_at,omitempty"`
	CloseCode      *string      `json:"close_code,omitempty"`
	ResolutionNote *string      `json:"resolution_note,omitempty"`
	Comments       []CommentDTO `json:"comments,omitempty"`
}

type CommentDTO struct {
	ID         string    `json:"id"`
	TicketID   string    `json:"ticket_id"`
	AuthorRole string    `json:"author_role"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToTicketDTO(t *ticket.Ticket, comments []*ticket.Comment) *TicketDTO {
	if t == nil {
		return nil
	}

	result := &TicketDTO{
		ID:             t.ID(),
		StoreID:        t.StoreID(),
		DeviceID:       t.DeviceID(),
		RequesterName:  t.RequesterName(),
		Title:          t.Title(),
		Description:    t.Description(),
		Category:       t.Category().String(),
		Impact:         t.Impact().String(),
		Priority:       t.Priority().String(),
		Status:         t.Status().String(),
		AssignedTo:     t.AssignedTo(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
		ClosedAt:       t.ClosedAt(),
		ResolutionNote: t.ResolutionNote(),
	}
	if cc := t.CloseCode(); cc != nil {
		s := cc.String()
		result.CloseCode = &s
	}
	if len(comments) > 0 {
		result.Comments = ToCommentDTOs(comments)
	}
	return result
}

func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	result := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, ToTicketDTO(t, nil))
	}
	return result
}

func ToCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		AuthorRole: c.AuthorRole().String(),
		AuthorName: c.AuthorName(),
		Body:       c.Body(),
		CreatedAt:  c.CreatedAt(),
	}
}

func ToCommentDTOs(comments []*ticket.Comment) []CommentDTO {
	result := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		result = append(result, ToCommentDTO(c))
	}
	return result
}
