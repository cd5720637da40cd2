package ticket

import (
	"encoding/json"
	"time"

	"github.com/hys-retail/storedesk/internal/application/ticket/usecases"
	"github.com/hys-retail/storedesk/internal/interfaces/http/validation"
	"github.com/hys-retail/storedesk/internal/shared/errors"
)

// CreateTicketRequest accepts both the current field names and the older
// form names (full_name, device, impact).
type CreateTicketRequest struct {
	RequesterName string `json:"requester_name"`
	FullName      string `json:"full_name"`
	DeviceID      string `json:"device_id"`
	Device        string `json:"device"`
	Category      string `json:"category"`
	Severity      string `json:"severity"`
	Impact        string `json:"impact"`
	Title         string `json:"title"`
	Description   string `json:"description"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (r *CreateTicketRequest) ToCommand(path string) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		RequesterName: firstNonEmpty(r.RequesterName, r.FullName),
		DeviceID:      firstNonEmpty(r.DeviceID, r.Device),
		Category:      r.Category,
		Severity:      firstNonEmpty(r.Severity, r.Impact),
		Title:         r.Title,
		Description:   r.Description,
		Path:          path,
	}
}

type CreateTicketResponse struct {
	OK       bool   `json:"ok"`
	TicketID string `json:"ticketId"`
}

// ListTicketsRequest holds the list query. Stores may only use status.
type ListTicketsRequest struct {
	Status   string `form:"status" binding:"omitempty,ticket_status"`
	StoreID  string `form:"store_id" binding:"omitempty,store_id"`
	Category string `form:"category" binding:"omitempty,ticket_category"`
	Priority string `form:"priority" binding:"omitempty,ticket_priority"`
	Impact   string `form:"impact" binding:"omitempty,ticket_impact"`
	From     string `form:"from" binding:"omitempty,day"`
	To       string `form:"to" binding:"omitempty,day"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

func (r *ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	q := usecases.ListTicketsQuery{
		Status:   r.Status,
		StoreID:  r.StoreID,
		Category: r.Category,
		Priority: r.Priority,
		Impact:   r.Impact,
		Limit:    r.Limit,
	}
	// Both bounds were validated by the binding.
	if r.From != "" {
		q.From, _ = validation.ParseDay(r.From)
	}
	if r.To != "" {
		to, _ := validation.ParseDay(r.To)
		if len(r.To) == len(time.DateOnly) {
			// A bare date includes the whole day
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		q.To = to
	}
	return q
}

// patchableFields are the only body keys a ticket patch reads.
var patchableFields = []string{"status", "priority", "assigned_to", "resolution_note", "close_code"}

// parsePatchBody keeps the known keys and ignores the rest. A JSON null
// clears a text field.
func parsePatchBody(raw []byte, ticketID, path string) (usecases.PatchTicketCommand, error) {
	cmd := usecases.PatchTicketCommand{TicketID: ticketID, Path: path}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil || body == nil {
		return cmd, errors.NewValidationError("Invalid JSON body")
	}

	targets := map[string]**string{
		"status":          &cmd.Status,
		"priority":        &cmd.Priority,
		"assigned_to":     &cmd.AssignedTo,
		"resolution_note": &cmd.ResolutionNote,
		"close_code":      &cmd.CloseCode,
	}

	for _, key := range patchableFields {
		value, ok := body[key]
		if !ok {
			continue
		}
		var s *string
		if err := json.Unmarshal(value, &s); err != nil {
			return cmd, errors.NewValidationError("Invalid " + key)
		}
		if s == nil {
			empty := ""
			s = &empty
		}
		*targets[key] = s
	}
	return cmd, nil
}

type AddCommentRequest struct {
	AuthorName string `json:"author_name" binding:"max=120"`
	Body       string `json:"body" binding:"max=5000"`
}
