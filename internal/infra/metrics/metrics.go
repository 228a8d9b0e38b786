// Package metrics exposes booking activity as Prometheus series.
package metrics

import (
	"strconv"
	"time"

	"club-booking/internal/domain/booking"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "club_booking"

type Recorder struct {
	outcomes      *prometheus.CounterVec
	paymentsTotal *prometheus.CounterVec
	requests      *prometheus.HistogramVec
}

// NewRecorder registers the collectors on reg. Passing a fresh
// prometheus.NewRegistry keeps tests isolated from the default registry.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_outcomes_total",
			Help:      "Booking attempts by operation and outcome.",
		}, []string{"operation", "outcome"}),
		paymentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_reconciliation_items_total",
			Help:      "Statement records by reconciliation result.",
		}, []string{"result"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	for _, c := range []prometheus.Collector{r.outcomes, r.paymentsTotal, r.requests} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) RecordOutcome(operation string, kind booking.OutcomeKind) {
	r.outcomes.WithLabelValues(operation, string(kind)).Inc()
}

func (r *Recorder) RecordReconciliation(paid, problems, unmatched int) {
	r.paymentsTotal.WithLabelValues("paid").Add(float64(paid))
	r.paymentsTotal.WithLabelValues("problem").Add(float64(problems))
	r.paymentsTotal.WithLabelValues("unmatched").Add(float64(unmatched))
}

// ObserveRequest records one served request. route is the matched pattern,
// not the raw path, to keep label cardinality bounded.
func (r *Recorder) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
