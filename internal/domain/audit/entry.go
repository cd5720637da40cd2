// Package audit records store actions for later review by administrators.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	ActionTicketCreate = "ticket_create"
	ActionTicketPatch  = "ticket_patch"
	ActionLogin        = "store_login"
)

// Entry is one recorded action. Metadata holds free-form JSON.
type Entry struct {
	ID        string
	StoreID   string
	Action    string
	Path      string
	Metadata  map[string]any
	CreatedAt time.Time
}

func NewEntry(storeID, action, path string, metadata map[string]any, now time.Time) (*Entry, error) {
	if action == "" {
		return nil, fmt.Errorf("action is required")
	}
	if len(action) > 64 || len(path) > 255 {
		return nil, fmt.Errorf("action or path too long")
	}
	if metadata == nil {
		metadata = map[string]any{}
	}
	return &Entry{
		ID:        uuid.NewString(),
		StoreID:   storeID,
		Action:    action,
		Path:      path,
		Metadata:  metadata,
		CreatedAt: now,
	}, nil
}

type Filter struct {
	StoreID string
	Action  string
	Limit   int
}

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	List(ctx context.Context, filter Filter) ([]*Entry, error)
}
