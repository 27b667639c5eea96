package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomePartial = "partial"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
)

// Metrics provides observability for the records workflows.
// Tracks workflow runs, per-child outcomes and workflow durations.
type Metrics struct {
	WorkflowRuns     *prometheus.CounterVec
	ChildOperations  *prometheus.CounterVec
	WorkflowDuration *prometheus.HistogramVec
}

// New creates a Metrics instance registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		WorkflowRuns: f.NewCounterVec(prometheus.CounterOpts{
			Name: "persondesk_workflow_runs_total",
			Help: "Workflow runs by workflow and outcome",
		}, []string{"workflow", "outcome"}),
		ChildOperations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "persondesk_child_operations_total",
			Help: "Child-record requests by kind, operation and outcome",
		}, []string{"kind", "op", "outcome"}),
		WorkflowDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "persondesk_workflow_duration_seconds",
			Help:    "Duration of save, update and delete workflows",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"workflow"}),
	}
}

// IncrementWorkflow records one finished workflow run.
func (m *Metrics) IncrementWorkflow(workflow, outcome string) {
	m.WorkflowRuns.WithLabelValues(workflow, outcome).Inc()
}

// IncrementChildOperation records one child-record request.
func (m *Metrics) IncrementChildOperation(kind, op string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.ChildOperations.WithLabelValues(kind, op, outcome).Inc()
}

// ObserveWorkflow records how long a workflow ran.
func (m *Metrics) ObserveWorkflow(workflow string, d time.Duration) {
	m.WorkflowDuration.WithLabelValues(workflow).Observe(d.Seconds())
}
