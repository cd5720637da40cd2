package report

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hys-retail/storedesk/internal/application/report/dto"
	"github.com/hys-retail/storedesk/internal/interfaces/http/handlers/testutil"
	"github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
)

type mockReportQuerier struct {
	gotDays int
	err     error
}

func (m *mockReportQuerier) Overview(ctx context.Context) (*dto.OverviewDTO, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &dto.OverviewDTO{
		TotalTickets:  3,
		TopStores:     []dto.StoreCount{{StoreID: "03", Count: 2}},
		TopCategories: []dto.CategoryCount{{Category: "POS", Count: 3}},
	}, nil
}

func (m *mockReportQuerier) StoreCategory(ctx context.Context) ([]dto.StoreCategoryDTO, error) {
	return []dto.StoreCategoryDTO{{StoreID: "03", Category: "POS", Count: 2}}, m.err
}

func (m *mockReportQuerier) Timeline(ctx context.Context, days int) (*dto.TimelineDTO, error) {
	m.gotDays = days
	return &dto.TimelineDTO{Days: days, Timeline: []dto.DayCount{}}, m.err
}

func TestHandler_Overview(t *testing.T) {
	h := NewHandler(&mockReportQuerier{}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/reports/overview", nil)
	h.Overview(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.OverviewDTO
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, int64(3), resp.TotalTickets)
	assert.Equal(t, "03", resp.TopStores[0].StoreID)
}

func TestHandler_Overview_Upstream(t *testing.T) {
	h := NewHandler(&mockReportQuerier{err: errors.NewUpstreamError("count tickets", assert.AnError)}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/reports/overview", nil)
	h.Overview(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_StoreCategory(t *testing.T) {
	h := NewHandler(&mockReportQuerier{}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/reports/store-category", nil)
	h.StoreCategory(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"store_id":"03","category":"POS","count":2}]`, w.Body.String())
}

func TestHandler_Timeline_DaysParam(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"7", 7},
		{"abc", 0},
		{"-4", -4},
	}

	for _, tt := range tests {
		q := &mockReportQuerier{}
		h := NewHandler(q, logger.NewNopLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/admin/reports/timeline", nil)
		testutil.SetQueryParams(c, map[string]string{"days": tt.raw})
		h.Timeline(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, tt.want, q.gotDays, "days=%q", tt.raw)
	}
}
