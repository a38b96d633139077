package metric

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", StatusClass(http.StatusCreated))
	assert.Equal(t, "3xx", StatusClass(http.StatusFound))
	assert.Equal(t, "4xx", StatusClass(http.StatusNotFound))
	assert.Equal(t, "5xx", StatusClass(http.StatusServiceUnavailable))
}

func TestRecordOrderCreated(t *testing.T) {
	before := testutil.ToFloat64(ordersCreated.WithLabelValues("PICK_UP"))
	RecordOrderCreated("PICK_UP")
	RecordOrderCreated("PICK_UP")
	assert.Equal(t, before+2, testutil.ToFloat64(ordersCreated.WithLabelValues("PICK_UP")))
}

func TestRecordNotification(t *testing.T) {
	before := testutil.ToFloat64(notificationsSent.WithLabelValues("email", "false"))
	RecordNotification("email", errors.New("smtp down"))
	assert.Equal(t, before+1, testutil.ToFloat64(notificationsSent.WithLabelValues("email", "false")))
}

func TestHandler(t *testing.T) {
	RecordHTTPRequest(http.MethodGet, "/api/orders", http.StatusOK, 15*time.Millisecond)
	RecordOrderCreated("DELIVERY")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/api/orders",status="2xx"}`)
	assert.Contains(t, rec.Body.String(), "bakery_orders_created_total")
}
