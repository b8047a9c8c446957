package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for intake operations.
type Metrics struct {
	SessionsCreated   *prometheus.CounterVec
	SessionsResumed   prometheus.Counter
	AnswersRecorded   *prometheus.CounterVec
	Disqualifications *prometheus.CounterVec
	ReviewLatency     prometheus.Histogram
	CoverageGapDays   prometheus.Histogram
}

// New registers and returns intake metrics collectors.
func New() *Metrics {
	return &Metrics{
		SessionsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "promissa_sessions_created_total",
			Help: "Total number of questionnaire sessions created, labeled by role",
		}, []string{"role"}),
		SessionsResumed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "promissa_sessions_resumed_total",
			Help: "Total number of sessions reopened with a resume credential",
		}),
		AnswersRecorded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "promissa_answers_recorded_total",
			Help: "Total number of answers recorded, labeled by section",
		}, []string{"section"}),
		Disqualifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "promissa_disqualifications_total",
			Help: "Total number of hard-stop verdicts raised, labeled by rule",
		}, []string{"rule"}),
		ReviewLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "promissa_review_latency_seconds",
			Help:    "Latency of full readiness evaluations in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		CoverageGapDays: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "promissa_coverage_gap_days",
			Help:    "Distribution of total uncovered days found per history review",
			Buckets: []float64{1, 7, 30, 90, 180, 365, 730},
		}),
	}
}

func (m *Metrics) IncrementSessionsCreated(role string) {
	m.SessionsCreated.WithLabelValues(role).Inc()
}

func (m *Metrics) IncrementSessionsResumed() {
	m.SessionsResumed.Inc()
}

func (m *Metrics) IncrementAnswersRecorded(section string) {
	m.AnswersRecorded.WithLabelValues(section).Inc()
}

func (m *Metrics) IncrementDisqualifications(rule string) {
	m.Disqualifications.WithLabelValues(rule).Inc()
}

func (m *Metrics) ObserveReviewLatency(seconds float64) {
	m.ReviewLatency.Observe(seconds)
}

func (m *Metrics) ObserveCoverageGapDays(days float64) {
	m.CoverageGapDays.Observe(days)
}
