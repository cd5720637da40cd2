package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hys-retail/storedesk/internal/domain/access"
	apperrors "github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
)

func TestAddCommentUseCase_Execute(t *testing.T) {
	own := newTestTicket(t, "02")
	other := newTestTicket(t, "03")
	repo := newMockTicketRepository(own, other)
	comments := &mockCommentRepository{}
	uc := NewAddCommentUseCase(repo, comments, logger.NewNopLogger())
	ctx := context.Background()

	t.Run("store comment defaults author to store id", func(t *testing.T) {
		result, err := uc.Execute(ctx, access.StorePrincipal("02"), AddCommentCommand{TicketID: own.ID(), Body: "Hâlâ bozuk"})
		require.NoError(t, err)
		assert.Equal(t, "STORE", result.AuthorRole)
		assert.Equal(t, "02", result.AuthorName)
	})

	t.Run("admin comment", func(t *testing.T) {
		result, err := uc.Execute(ctx, access.AdminPrincipal(), AddCommentCommand{TicketID: other.ID(), Body: "Parça sipariş edildi"})
		require.NoError(t, err)
		assert.Equal(t, "ADMIN", result.AuthorRole)
		assert.Equal(t, "IT", result.AuthorName)
	})

	t.Run("cross store comment is not found", func(t *testing.T) {
		_, err := uc.Execute(ctx, access.StorePrincipal("02"), AddCommentCommand{TicketID: other.ID(), Body: "merhaba"})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := uc.Execute(ctx, access.StorePrincipal("02"), AddCommentCommand{TicketID: own.ID(), Body: " <b></b> "})
		assert.True(t, apperrors.IsValidationError(err))
	})

	assert.Len(t, comments.comments, 2)
}

func TestListCommentsUseCase_Execute(t *testing.T) {
	own := newTestTicket(t, "02")
	other := newTestTicket(t, "03")
	repo := newMockTicketRepository(own, other)
	comments := &mockCommentRepository{}

	add := NewAddCommentUseCase(repo, comments, logger.NewNopLogger())
	_, err := add.Execute(context.Background(), access.StorePrincipal("03"), AddCommentCommand{TicketID: other.ID(), Body: "Ağ yok"})
	require.NoError(t, err)

	uc := NewListCommentsUseCase(repo, comments, logger.NewNopLogger())

	list, err := uc.Execute(context.Background(), access.StorePrincipal("03"), other.ID())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = uc.Execute(context.Background(), access.StorePrincipal("02"), other.ID())
	assert.True(t, apperrors.IsNotFoundError(err))
}
