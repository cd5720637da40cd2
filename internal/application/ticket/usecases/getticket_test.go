package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hys-retail/storedesk/internal/domain/access"
	"github.com/hys-retail/storedesk/internal/domain/ticket"
	vo "github.com/hys-retail/storedesk/internal/domain/ticket/valueobjects"
	apperrors "github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
)

func newTestTicket(t *testing.T, storeID string) *ticket.Ticket {
	tk, err := ticket.NewTicket(storeID, nil, "Mehmet", "Yazıcı", "Barkod yazıcı kağıt almıyor", vo.CategoryPrinterBarcode, "PARTIAL", time.Now().UTC())
	require.NoError(t, err)
	return tk
}

func TestGetTicketUseCase_Execute(t *testing.T) {
	own := newTestTicket(t, "02")
	other := newTestTicket(t, "03")
	repo := newMockTicketRepository(own, other)

	comment, err := ticket.NewComment(own.ID(), vo.AuthorRoleAdmin, "IT", "Bakıyoruz", time.Now().UTC())
	require.NoError(t, err)
	comments := &mockCommentRepository{comments: []*ticket.Comment{comment}}

	uc := NewGetTicketUseCase(repo, comments, logger.NewNopLogger())
	ctx := context.Background()

	t.Run("own ticket with comments", func(t *testing.T) {
		result, err := uc.Execute(ctx, access.StorePrincipal("02"), GetTicketQuery{TicketID: own.ID()})
		require.NoError(t, err)
		assert.Equal(t, own.ID(), result.ID)
		assert.Equal(t, "PARTIAL", result.Impact)
		assert.Equal(t, "P2", result.Priority)
		require.Len(t, result.Comments, 1)
		assert.Equal(t, "ADMIN", result.Comments[0].AuthorRole)
	})

	t.Run("other store ticket is not found", func(t *testing.T) {
		_, err := uc.Execute(ctx, access.StorePrincipal("02"), GetTicketQuery{TicketID: other.ID()})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("admin reads any ticket", func(t *testing.T) {
		result, err := uc.Execute(ctx, access.AdminPrincipal(), GetTicketQuery{TicketID: other.ID()})
		require.NoError(t, err)
		assert.Equal(t, "03", result.StoreID)
	})

	t.Run("absent ticket is not found", func(t *testing.T) {
		_, err := uc.Execute(ctx, access.AdminPrincipal(), GetTicketQuery{TicketID: "missing"})
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestGetTicketUseCase_Execute_StoreFailure(t *testing.T) {
	repo := newMockTicketRepository()
	repo.GetByIDFunc = func(context.Context, access.Scope, string) (*ticket.Ticket, error) {
		return nil, errors.New("timeout")
	}
	uc := NewGetTicketUseCase(repo, &mockCommentRepository{}, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), access.AdminPrincipal(), GetTicketQuery{TicketID: "x"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstreamError(err))
	assert.False(t, apperrors.GetAppError(err).Exposed())
}
