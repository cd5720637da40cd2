package audit

import (
	"context"
	"strings"
	"time"

	"github.com/hys-retail/storedesk/internal/domain/audit"
	"github.com/hys-retail/storedesk/internal/shared/biztime"
	"github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
)

// EntryDTO is the wire form of an audit entry.
type EntryDTO struct {
	ID        string         `json:"id"`
	StoreID   string         `json:"store_id"`
	Action    string         `json:"action"`
	Path      string         `json:"path"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"created_at"`
}

type ListQuery struct {
	StoreID string
	Action  string
	Limit   int
}

// Service records store actions and lists them for administrators.
type Service struct {
	repo   audit.Repository
	logger logger.Interface
	now    func() time.Time
}

func NewService(repo audit.Repository, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    biztime.NowUTC,
	}
}

// Record writes one entry. storeID must come from the session, never from
// the request body.
func (s *Service) Record(ctx context.Context, storeID, action, path string, metadata map[string]any) error {
	action = strings.TrimSpace(action)
	path = strings.TrimSpace(path)
	if action == "" || path == "" {
		return errors.NewValidationError("action, path required")
	}

	entry, err := audit.NewEntry(storeID, action, path, metadata, s.now())
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Errorw("failed to write audit entry", "store_id", storeID, "action", action, "error", err)
		return errors.NewUpstreamError("create audit log", err)
	}

	s.logger.Debugw("audit entry recorded", "store_id", storeID, "action", action)
	return nil
}

func (s *Service) List(ctx context.Context, query ListQuery) ([]EntryDTO, error) {
	entries, err := s.repo.List(ctx, audit.Filter{
		StoreID: query.StoreID,
		Action:  query.Action,
		Limit:   query.Limit,
	})
	if err != nil {
		s.logger.Errorw("failed to list audit entries", "error", err)
		return nil, errors.NewUpstreamError("list audit logs", err)
	}

	result := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		result = append(result, EntryDTO{
			ID:        e.ID,
			StoreID:   e.StoreID,
			Action:    e.Action,
			Path:      e.Path,
			Metadata:  e.Metadata,
			CreatedAt: e.CreatedAt,
		})
	}
	return result, nil
}
