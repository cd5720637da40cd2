// Package mappers converts between domain entities and gorm models.
package mappers

import (
	"fmt"
	"time"

	"github.com/hys-retail/storedesk/internal/domain/ticket"
	vo "github.com/hys-retail/storedesk/internal/domain/ticket/valueobjects"
	"github.com/hys-retail/storedesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) *ticket.Comment
}

type ticketMapper struct{}

func NewTicketMapper() TicketMapper {
	return ticketMapper{}
}

func (ticketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
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
		ResolutionNote: t.ResolutionNote(),
		CreatedAt:      t.CreatedAt().UnixMilli(),
		UpdatedAt:      t.UpdatedAt().UnixMilli(),
		ClosedAt:       timeToMillis(t.ClosedAt()),
	}
	if cc := t.CloseCode(); cc != nil {
		s := cc.String()
		model.CloseCode = &s
	}
	return model
}

func (ticketMapper) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	var closeCode *vo.CloseCode
	if model.CloseCode != nil {
		cc := vo.CloseCode(*model.CloseCode)
		closeCode = &cc
	}

	t, err := ticket.ReconstructTicket(
		model.ID,
		model.StoreID,
		model.DeviceID,
		model.RequesterName,
		model.Title,
		model.Description,
		vo.Category(model.Category),
		vo.Impact(model.Impact),
		vo.Priority(model.Priority),
		vo.TicketStatus(model.Status),
		model.AssignedTo,
		model.ResolutionNote,
		closeCode,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
		millisToTime(model.ClosedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket %s: %w", model.ID, err)
	}
	return t, nil
}

func (ticketMapper) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		AuthorRole: c.AuthorRole().String(),
		AuthorName: c.AuthorName(),
		Body:       c.Body(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
	}
}

func (ticketMapper) CommentToDomain(model *models.CommentModel) *ticket.Comment {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		vo.AuthorRole(model.AuthorRole),
		model.AuthorName,
		model.Body,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}

func timeToMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func millisToTime(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms).UTC()
	return &t
}
