package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hys-retail/storedesk/internal/domain/audit"
	apperrors "github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
)

type mockAuditRepository struct {
	entries    []*audit.Entry
	lastFilter audit.Filter
	err        error
}

func (m *mockAuditRepository) Create(_ context.Context, e *audit.Entry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, e)
	return nil
}

func (m *mockAuditRepository) List(_ context.Context, filter audit.Filter) ([]*audit.Entry, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func TestService_Record(t *testing.T) {
	repo := &mockAuditRepository{}
	svc := NewService(repo, logger.NewNopLogger())

	err := svc.Record(context.Background(), "02", "page_view", "/store/tickets", nil)
	require.NoError(t, err)
	require.Len(t, repo.entries, 1)
	assert.Equal(t, "02", repo.entries[0].StoreID)
	assert.NotNil(t, repo.entries[0].Metadata)

	t.Run("action and path are required", func(t *testing.T) {
		err := svc.Record(context.Background(), "02", " ", "/x", nil)
		assert.True(t, apperrors.IsValidationError(err))
		err = svc.Record(context.Background(), "02", "view", "", nil)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("store failure is upstream", func(t *testing.T) {
		failing := NewService(&mockAuditRepository{err: errors.New("down")}, logger.NewNopLogger())
		err := failing.Record(context.Background(), "02", "view", "/x", nil)
		assert.True(t, apperrors.IsUpstreamError(err))
	})
}

func TestService_List(t *testing.T) {
	repo := &mockAuditRepository{}
	svc := NewService(repo, logger.NewNopLogger())
	require.NoError(t, svc.Record(context.Background(), "03", audit.ActionTicketCreate, "/tickets", map[string]any{"ticketId": "t1"}))

	result, err := svc.List(context.Background(), ListQuery{StoreID: "03", Limit: 5})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "t1", result[0].Metadata["ticketId"])
	assert.Equal(t, audit.Filter{StoreID: "03", Limit: 5}, repo.lastFilter)
}
