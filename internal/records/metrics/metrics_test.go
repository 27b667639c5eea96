package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementWorkflow("save", OutcomePartial)
	m.IncrementChildOperation("official", "create", nil)
	m.IncrementChildOperation("official", "create", errors.New("boom"))
	m.IncrementChildOperation("official", "create", errors.New("boom"))
	m.ObserveWorkflow("save", 250*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.WorkflowRuns.WithLabelValues("save", OutcomePartial)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChildOperations.WithLabelValues("official", "create", OutcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ChildOperations.WithLabelValues("official", "create", OutcomeFailure)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.WorkflowDuration))
}
