package ticket

import (
	"fmt"
	"unicode/utf8"

	vo "github.com/hys-retail/storedesk/internal/domain/ticket/valueobjects"
)

// Patch is the admin-editable subset of a ticket. A nil field is absent.
// ClearCloseCode removes the close code; it is ignored when CloseCode is set.
type Patch struct {
	Status         *vo.TicketStatus
	Priority       *vo.Priority
	AssignedTo     *string
	ResolutionNote *string
	CloseCode      *vo.CloseCode
	ClearCloseCode bool
}

func (p Patch) IsEmpty() bool {
	return p.Status == nil &&
		p.Priority == nil &&
		p.AssignedTo == nil &&
		p.ResolutionNote == nil &&
		p.CloseCode == nil &&
		!p.ClearCloseCode
}

// Fields lists the names of the present fields, for logging and auditing.
func (p Patch) Fields() []string {
	var fields []string
	if p.Status != nil {
		fields = append(fields, "status")
	}
	if p.Priority != nil {
		fields = append(fields, "priority")
	}
	if p.AssignedTo != nil {
		fields = append(fields, "assigned_to")
	}
	if p.ResolutionNote != nil {
		fields = append(fields, "resolution_note")
	}
	if p.CloseCode != nil || p.ClearCloseCode {
		fields = append(fields, "close_code")
	}
	return fields
}

func (p Patch) Validate() error {
	if p.Status != nil && !p.Status.IsValid() {
		return fmt.Errorf("invalid status: %s", *p.Status)
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", *p.Priority)
	}
	if p.CloseCode != nil && !p.CloseCode.IsValid() {
		return fmt.Errorf("invalid close code: %s", *p.CloseCode)
	}
	if p.ResolutionNote != nil && utf8.RuneCountInString(*p.ResolutionNote) > maxDescriptionLength {
		return fmt.Errorf("resolution note exceeds maximum length of %d characters", maxDescriptionLength)
	}
	return nil
}
