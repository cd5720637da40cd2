package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/tickets/:id", "404"))
	RecordHTTPRequest("GET", "/tickets/:id", 404, 15*time.Millisecond)
	after := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/tickets/:id", "404"))
	assert.Equal(t, before+1, after)

	RecordHTTPRequest("GET", "", 404, time.Millisecond)
	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestHandler(t *testing.T) {
	TicketsCreated.WithLabelValues("POS", "P1").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "storedesk_tickets_created_total")
}
