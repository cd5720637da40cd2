package ticket

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	vo "github.com/hys-retail/storedesk/internal/domain/ticket/valueobjects"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
	maxNameLength        = 120
)

// Ticket is an equipment fault reported by a store. The owning store is fixed
// at creation; triage fields are only changed through ApplyPatch.
type Ticket struct {
	id             string
	storeID        string
	deviceID       *string
	requesterName  string
	title          string
	description    string
	category       vo.Category
	impact         vo.Impact
	priority       vo.Priority
	status         vo.TicketStatus
	assignedTo     *string
	resolutionNote *string
	closeCode      *vo.CloseCode
	createdAt      time.Time
	updatedAt      time.Time
	closedAt       *time.Time
}

// NewTicket opens a ticket. Impact and priority are derived from severity.
func NewTicket(
	storeID string,
	deviceID *string,
	requesterName string,
	title string,
	description string,
	category vo.Category,
	severity string,
	now time.Time,
) (*Ticket, error) {
	if storeID == "" {
		return nil, fmt.Errorf("store ID is required")
	}
	if requesterName == "" || title == "" || description == "" {
		return nil, fmt.Errorf("requester name, title and description are required")
	}
	if utf8.RuneCountInString(requesterName) > maxNameLength {
		return nil, fmt.Errorf("requester name exceeds maximum length of %d characters", maxNameLength)
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}

	impact := vo.ImpactFromSeverity(severity)
	return &Ticket{
		id:            uuid.NewString(),
		storeID:       storeID,
		deviceID:      deviceID,
		requesterName: requesterName,
		title:         title,
		description:   description,
		category:      category,
		impact:        impact,
		priority:      impact.Priority(),
		status:        vo.StatusOpen,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from storage.
func ReconstructTicket(
	id string,
	storeID string,
	deviceID *string,
	requesterName string,
	title string,
	description string,
	category vo.Category,
	impact vo.Impact,
	priority vo.Priority,
	status vo.TicketStatus,
	assignedTo *string,
	resolutionNote *string,
	closeCode *vo.CloseCode,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if storeID == "" {
		return nil, fmt.Errorf("store ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:             id,
		storeID:        storeID,
		deviceID:       deviceID,
		requesterName:  requesterName,
		title:          title,
		description:    description,
		category:       category,
		impact:         impact,
		priority:       priority,
		status:         status,
		assignedTo:     assignedTo,
		resolutionNote: resolutionNote,
		closeCode:      closeCode,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		closedAt:       closedAt,
	}, nil
}

func (t *Ticket) ID() string {
	return t.id
}

func (t *Ticket) StoreID() string {
	return t.storeID
}

func (t *Ticket) DeviceID() *string {
	return t.deviceID
}

func (t *Ticket) RequesterName() string {
	return t.requesterName
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Category() vo.Category {
	return t.category
}

func (t *Ticket) Impact() vo.Impact {
	return t.impact
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) AssignedTo() *string {
	return t.assignedTo
}

func (t *Ticket) ResolutionNote() *string {
	return t.resolutionNote
}

func (t *Ticket) CloseCode() *vo.CloseCode {
	return t.closeCode
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

// ApplyPatch changes only the fields present in p. Closing stamps closedAt
// and any other status clears it. Assigning an OPEN ticket without an
// explicit status moves it to IN_PROGRESS.
func (t *Ticket) ApplyPatch(p Patch, now time.Time) error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if p.Priority != nil {
		t.priority = *p.Priority
	}
	if p.AssignedTo != nil {
		t.assignedTo = emptyToNil(*p.AssignedTo)
		if p.Status == nil && t.assignedTo != nil && t.status.IsOpen() {
			t.status = vo.StatusInProgress
		}
	}
	if p.ResolutionNote != nil {
		t.resolutionNote = emptyToNil(*p.ResolutionNote)
	}
	switch {
	case p.CloseCode != nil:
		cc := *p.CloseCode
		t.closeCode = &cc
	case p.ClearCloseCode:
		t.closeCode = nil
	}
	if p.Status != nil {
		t.status = *p.Status
		switch {
		case t.status.IsClosed() && t.closedAt == nil:
			closedAt := now
			t.closedAt = &closedAt
		case !t.status.IsClosed():
			t.closedAt = nil
		}
	}

	t.updatedAt = now
	return nil
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
