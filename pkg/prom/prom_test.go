package prom

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainMetrics(t *testing.T) {
	t.Run("disabled system ignores updates", func(t *testing.T) {
		AddEntityWrite("customer", OpCreate)
		ObserveRequest("GET", 200, time.Millisecond)
		assert.Empty(t, MetricCollectionCounterVec)
	})

	require.NoError(t, Create("localhost", "test", "billing"))

	t.Run("entity writes", func(t *testing.T) {
		AddEntityWrite("customer", OpCreate)
		AddEntityWrite("customer", OpCreate)
		AddEntityWrite("invoice", OpDelete)

		assert.Equal(t, 2.0, counterValue(t, SystemEntity+MetricEntityWrites, "customer", OpCreate))
		assert.Equal(t, 1.0, counterValue(t, SystemEntity+MetricEntityWrites, "invoice", OpDelete))
	})

	t.Run("validation failures and conflicts", func(t *testing.T) {
		AddValidationFailure("customer")
		AddConflict("invoice")

		assert.Equal(t, 1.0, counterValue(t, SystemValidation+MetricValidationFailures, "customer"))
		assert.Equal(t, 1.0, counterValue(t, MetricConflicts, "invoice"))
	})

	t.Run("request duration", func(t *testing.T) {
		ObserveRequest("POST", 201, 30*time.Millisecond)

		var m dto.Metric
		h := MetricCollectionHistogramVec[SystemHTTP+MetricRequestDuration].WithLabelValues("POST", "201")
		require.NoError(t, h.(interface{ Write(*dto.Metric) error }).Write(&m))
		assert.Equal(t, uint64(1), m.GetHistogram().GetSampleCount())
	})

	t.Run("unknown metric type", func(t *testing.T) {
		assert.Error(t, CreateMetric("summary", "x", "y"))
	})
}

func counterValue(t *testing.T, key string, labels ...string) float64 {
	t.Helper()
	vec, ok := MetricCollectionCounterVec[key]
	require.True(t, ok, key)

	var m dto.Metric
	require.NoError(t, vec.WithLabelValues(labels...).Write(&m))
	return m.GetCounter().GetValue()
}
