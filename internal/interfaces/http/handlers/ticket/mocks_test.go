package ticket

import (
	"context"

	"github.com/hys-retail/storedesk/internal/application/ticket/dto"
	"github.com/hys-retail/storedesk/internal/application/ticket/usecases"
	"github.com/hys-retail/storedesk/internal/domain/access"
)

type mockCreateTicketUC struct {
	gotPrincipal access.Principal
	gotCmd       usecases.CreateTicketCommand
	result       *usecases.CreateTicketResult
	err          error
}

func (m *mockCreateTicketUC) Execute(ctx context.Context, principal access.Principal, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	m.gotPrincipal = principal
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetTicketUC struct {
	gotQuery usecases.GetTicketQuery
	called   bool
	result   *dto.TicketDTO
	err      error
}

func (m *mockGetTicketUC) Execute(ctx context.Context, principal access.Principal, query usecases.GetTicketQuery) (*dto.TicketDTO, error) {
	m.called = true
	m.gotQuery = query
	return m.result, m.err
}

type mockListTicketsUC struct {
	gotQuery usecases.ListTicketsQuery
	called   bool
	result   []*dto.TicketDTO
	err      error
}

func (m *mockListTicketsUC) Execute(ctx context.Context, principal access.Principal, query usecases.ListTicketsQuery) ([]*dto.TicketDTO, error) {
	m.called = true
	m.gotQuery = query
	return m.result, m.err
}

type mockPatchTicketUC struct {
	gotCmd usecases.PatchTicketCommand
	called bool
	result *dto.TicketDTO
	err    error
}

func (m *mockPatchTicketUC) Execute(ctx context.Context, principal access.Principal, cmd usecases.PatchTicketCommand) (*dto.TicketDTO, error) {
	m.called = true
	m.gotCmd = cmd
	return m.result, m.err
}

type mockAddCommentUC struct {
	gotCmd usecases.AddCommentCommand
	result *dto.CommentDTO
	err    error
}

func (m *mockAddCommentUC) Execute(ctx context.Context, principal access.Principal, cmd usecases.AddCommentCommand) (*dto.CommentDTO, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockListCommentsUC struct {
	gotTicketID string
	result      []dto.CommentDTO
	err         error
}

func (m *mockListCommentsUC) Execute(ctx context.Context, principal access.Principal, ticketID string) ([]dto.CommentDTO, error) {
	m.gotTicketID = ticketID
	return m.result, m.err
}
