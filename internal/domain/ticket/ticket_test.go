package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/hys-retail/storedesk/internal/domain/ticket/valueobjects"
)

var testNow = time.Date(2025, 5, 12, 9, 0, 0, 0, time.UTC)

func newTestTicket(t *testing.T, severity string) *Ticket {
	t.Helper()
	tk, err := NewTicket("02", nil, "Ayse", "printer down", "label printer offline", vo.CategoryPrinterBarcode, severity, testNow)
	require.NoError(t, err)
	return tk
}

func ptr[T any](v T) *T {
	return &v
}

func TestNewTicket_DerivesImpactAndPriority(t *testing.T) {
	tests := []struct {
		severity string
		impact   vo.Impact
		priority vo.Priority
	}{
		{"P1", vo.ImpactSalesStopped, vo.PriorityP1},
		{"PARTIAL", vo.ImpactPartial, vo.PriorityP2},
		{"whatever-else", vo.ImpactInfo, vo.PriorityP3},
	}

	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			tk := newTestTicket(t, tt.severity)
			assert.Equal(t, tt.impact, tk.Impact())
			assert.Equal(t, tt.priority, tk.Priority())
			assert.Equal(t, vo.StatusOpen, tk.Status())
			assert.Equal(t, testNow, tk.CreatedAt())
			assert.Nil(t, tk.ClosedAt())
			assert.NotEmpty(t, tk.ID())
		})
	}
}

func TestNewTicket_Validation(t *testing.T) {
	tests := []struct {
		name     string
		storeID  string
		title    string
		category vo.Category
	}{
		{"missing store", "", "printer down", vo.CategoryPOS},
		{"missing title", "02", "", vo.CategoryPOS},
		{"title too long", "02", strings.Repeat("x", 201), vo.CategoryPOS},
		{"unknown category", "02", "printer down", vo.Category("COFFEE")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.storeID, nil, "Ayse", tt.title, "desc", tt.category, "P1", testNow)
			assert.Error(t, err)
		})
	}
}

func TestNewTicket_LengthLimitsCountCharacters(t *testing.T) {
	title := strings.Repeat("ş", maxTitleLength)
	require.Greater(t, len(title), maxTitleLength)

	tk, err := NewTicket("02", nil, "Ayşe", title, "açıklama", vo.CategoryPOS, "P2", testNow)
	require.NoError(t, err)
	assert.Equal(t, title, tk.Title())

	_, err = NewTicket("02", nil, "Ayşe", title+"ş", "açıklama", vo.CategoryPOS, "P2", testNow)
	assert.Error(t, err)

	note := strings.Repeat("ğ", maxDescriptionLength)
	assert.NoError(t, Patch{ResolutionNote: &note}.Validate())

	body := strings.Repeat("ü", maxCommentLength)
	_, err = NewComment("t-1", vo.AuthorRoleAdmin, "IT", body, testNow)
	assert.NoError(t, err)
	_, err = NewComment("t-1", vo.AuthorRoleAdmin, "IT", body+"ü", testNow)
	assert.Error(t, err)
}

func TestApplyPatch_Empty(t *testing.T) {
	tk := newTestTicket(t, "P1")
	assert.ErrorIs(t, tk.ApplyPatch(Patch{}, testNow), ErrEmptyPatch)
}

func TestApplyPatch_CloseTouchesOnlyStatus(t *testing.T) {
	tk := newTestTicket(t, "P1")
	later := testNow.Add(time.Hour)

	require.NoError(t, tk.ApplyPatch(Patch{Status: ptr(vo.StatusClosed)}, later))

	assert.Equal(t, vo.StatusClosed, tk.Status())
	require.NotNil(t, tk.ClosedAt())
	assert.Equal(t, later, *tk.ClosedAt())
	assert.Equal(t, vo.PriorityP1, tk.Priority())
	assert.Nil(t, tk.AssignedTo())
	assert.Nil(t, tk.CloseCode())
	assert.Nil(t, tk.ResolutionNote())
	assert.Equal(t, "printer down", tk.Title())
}

func TestApplyPatch_ReopenClearsClosedAt(t *testing.T) {
	tk := newTestTicket(t, "P1")
	require.NoError(t, tk.ApplyPatch(Patch{Status: ptr(vo.StatusClosed)}, testNow))
	require.NoError(t, tk.ApplyPatch(Patch{Status: ptr(vo.StatusOpen)}, testNow))

	assert.Nil(t, tk.ClosedAt())
}

func TestApplyPatch_AssignmentStartsWork(t *testing.T) {
	tk := newTestTicket(t, "P2")
	require.NoError(t, tk.ApplyPatch(Patch{AssignedTo: ptr("mehmet")}, testNow))

	assert.Equal(t, vo.StatusInProgress, tk.Status())
	require.NotNil(t, tk.AssignedTo())
	assert.Equal(t, "mehmet", *tk.AssignedTo())
}

func TestApplyPatch_ExplicitStatusWinsOverAssignment(t *testing.T) {
	tk := newTestTicket(t, "P2")
	require.NoError(t, tk.ApplyPatch(Patch{AssignedTo: ptr("mehmet"), Status: ptr(vo.StatusWaitingStore)}, testNow))

	assert.Equal(t, vo.StatusWaitingStore, tk.Status())
}

func TestApplyPatch_EmptyAssigneeUnassigns(t *testing.T) {
	tk := newTestTicket(t, "P2")
	require.NoError(t, tk.ApplyPatch(Patch{AssignedTo: ptr("mehmet")}, testNow))
	require.NoError(t, tk.ApplyPatch(Patch{AssignedTo: ptr("")}, testNow))

	assert.Nil(t, tk.AssignedTo())
	assert.Equal(t, vo.StatusInProgress, tk.Status())
}

func TestApplyPatch_ClearCloseCode(t *testing.T) {
	tk := newTestTicket(t, "P2")
	require.NoError(t, tk.ApplyPatch(Patch{Status: ptr(vo.StatusResolved), CloseCode: ptr(vo.CloseCodeFixed)}, testNow))
	require.NotNil(t, tk.CloseCode())

	p := Patch{ClearCloseCode: true}
	assert.False(t, p.IsEmpty())
	assert.Equal(t, []string{"close_code"}, p.Fields())
	require.NoError(t, tk.ApplyPatch(p, testNow))

	assert.Nil(t, tk.CloseCode())
	assert.Equal(t, vo.StatusResolved, tk.Status())
}

func TestApplyPatch_RejectsInvalidEnums(t *testing.T) {
	tk := newTestTicket(t, "P2")

	assert.Error(t, tk.ApplyPatch(Patch{Status: ptr(vo.TicketStatus("DONE"))}, testNow))
	assert.Error(t, tk.ApplyPatch(Patch{CloseCode: ptr(vo.CloseCode("WONTFIX"))}, testNow))
	assert.Equal(t, vo.StatusOpen, tk.Status())
}

func TestPatchFields(t *testing.T) {
	p := Patch{Status: ptr(vo.StatusResolved), CloseCode: ptr(vo.CloseCodeFixed)}
	assert.Equal(t, []string{"status", "close_code"}, p.Fields())
}

func TestNewComment(t *testing.T) {
	c, err := NewComment("t-1", vo.AuthorRoleStore, "Ayse", "still broken", testNow)
	require.NoError(t, err)
	assert.Equal(t, vo.AuthorRoleStore, c.AuthorRole())
	assert.NotEmpty(t, c.ID())

	_, err = NewComment("t-1", vo.AuthorRoleStore, "Ayse", "", testNow)
	assert.Error(t, err)
	_, err = NewComment("t-1", vo.AuthorRole("GUEST"), "Ayse", "hi", testNow)
	assert.Error(t, err)
}
