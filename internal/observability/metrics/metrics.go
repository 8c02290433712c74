package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the booking workflow and
// the content filter.
type BookingMetrics struct {
	submissionsTotal   *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	deliveryLatency    *prometheus.HistogramVec
	filterTotal        prometheus.Counter
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "recovery",
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Total submission attempts by form kind and result",
		}, []string{"kind", "result"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "recovery",
			Subsystem: "booking",
			Name:      "validation_failures_total",
			Help:      "Total submit attempts rejected by validation",
		}, []string{"kind"}),
		deliveryLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "recovery",
			Subsystem: "booking",
			Name:      "delivery_latency_seconds",
			Help:      "Latency of delivery collaborator calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		filterTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "recovery",
			Subsystem: "content",
			Name:      "filter_total",
			Help:      "Total content filter queries",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.validationFailures, m.deliveryLatency, m.filterTotal)
	return m
}

func (m *BookingMetrics) ObserveSubmission(kind, result string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(kind, result).Inc()
}

func (m *BookingMetrics) ObserveValidationFailure(kind string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(kind).Inc()
}

func (m *BookingMetrics) ObserveDeliveryLatency(kind string, seconds float64) {
	if m == nil {
		return
	}
	m.deliveryLatency.WithLabelValues(kind).Observe(seconds)
}

func (m *BookingMetrics) ObserveFilterQuery() {
	if m == nil {
		return
	}
	m.filterTotal.Inc()
}
