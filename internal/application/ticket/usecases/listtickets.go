package usecases

import (
	"context"
	"time"

	"github.com/hys-retail/storedesk/internal/application/ticket/dto"
	"github.com/hys-retail/storedesk/internal/domain/access"
	"github.com/hys-retail/storedesk/internal/domain/ticket"
	vo "github.com/hys-retail/storedesk/internal/domain/ticket/valueobjects"
	"github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
)

// ListTicketsQuery carries the optional filters. Stores may only filter by
// status; the rest apply to administrators.
type ListTicketsQuery struct {
	Status   string
	StoreID  string
	Category string
	Priority string
	Impact   string
	From     time.Time
	To       time.Time
	Limit    int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, principal access.Principal, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	filter, err := uc.buildFilter(principal, query)
	if err != nil {
		return nil, err
	}

	tickets, err := uc.ticketRepo.List(ctx, principal.Scope(), filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewUpstreamError("list tickets", err)
	}

	return dto.ToTicketDTOs(tickets), nil
}

func (uc *ListTicketsUseCase) buildFilter(principal access.Principal, query ListTicketsQuery) (ticket.Filter, error) {
	filter := ticket.Filter{Limit: query.Limit}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return filter, errors.NewValidationError("Invalid status", query.Status)
		}
		filter.Status = &status
	}

	if !principal.IsAdmin() {
		return filter, nil
	}

	filter.StoreID = query.StoreID
	filter.From = query.From
	filter.To = query.To

	if query.Category != "" {
		category, err := vo.NewCategory(query.Category)
		if err != nil {
			return filter, errors.NewValidationError("Invalid category", query.Category)
		}
		filter.Category = &category
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return filter, errors.NewValidationError("Invalid priority", query.Priority)
		}
		filter.Priority = &priority
	}
	if query.Impact != "" {
		impact, err := vo.NewImpact(query.Impact)
		if err != nil {
			return filter, errors.NewValidationError("Invalid impact", query.Impact)
		}
		filter.Impact = &impact
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return filter, errors.NewValidationError("Invalid date range")
	}
	return filter, nil
}
