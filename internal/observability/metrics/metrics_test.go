package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestBookingMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)
	m.ObserveSubmission("therapy", "succeeded")
	m.ObserveSubmission("therapy", "succeeded")
	m.ObserveValidationFailure("speaking")
	m.ObserveDeliveryLatency("therapy", 0.25)
	m.ObserveFilterQuery()

	if got := testutil.ToFloat64(m.submissionsTotal.WithLabelValues("therapy", "succeeded")); got != 2 {
		t.Fatalf("expected 2 submissions, got %f", got)
	}
	if got := testutil.ToFloat64(m.validationFailures.WithLabelValues("speaking")); got != 1 {
		t.Fatalf("expected 1 validation failure, got %f", got)
	}
	if got := testutil.ToFloat64(m.filterTotal); got != 1 {
		t.Fatalf("expected 1 filter query, got %f", got)
	}
}

func TestBookingMetricsNilSafe(t *testing.T) {
	var m *BookingMetrics
	m.ObserveSubmission("therapy", "failed")
	m.ObserveValidationFailure("therapy")
	m.ObserveDeliveryLatency("speaking", 0.1)
	m.ObserveFilterQuery()
}
