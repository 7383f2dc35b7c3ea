package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordBookingAttempt(t *testing.T) {
	before := testutil.ToFloat64(bookingAttempts.WithLabelValues("conflict"))

	RecordBookingAttempt("conflict")
	RecordBookingAttempt("conflict")

	assert.Equal(t, before+2, testutil.ToFloat64(bookingAttempts.WithLabelValues("conflict")))
}

func TestRequestFinished_UnmatchedRoute(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404"))

	RequestStarted()
	RequestFinished("GET", "", http.StatusNotFound, 10*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	RecordStaleCancelled(3)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "stayhub_bookings_stale_cancelled_total")
}
