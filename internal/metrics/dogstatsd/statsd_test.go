package dogstatsd

import (
	"testing"
	"time"

	"github.com/0xb10ckdev/Aera-Vault-V2/internal/metrics/metricsTypes"
	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func Test_DogStatsdMetricsClient(t *testing.T) {
	l, _ := zap.NewDevelopment()

	t.Run("Labels are formatted as tags", func(t *testing.T) {
		c := newDogStatsdMetricsClient(&statsd.NoOpClient{}, 1, l)
		tags := c.formatLabels([]metricsTypes.MetricsLabel{
			{Name: "contract", Value: "AeraVaultV2"},
			{Name: "outcome", Value: "ok"},
		})
		assert.Equal(t, []string{"contract:AeraVaultV2", "outcome:ok"}, tags)
	})
	t.Run("Out of range sample rates fall back to 1", func(t *testing.T) {
		assert.Equal(t, 1.0, newDogStatsdMetricsClient(&statsd.NoOpClient{}, 0, l).sampleRate)
		assert.Equal(t, 1.0, newDogStatsdMetricsClient(&statsd.NoOpClient{}, 2, l).sampleRate)
		assert.Equal(t, 0.25, newDogStatsdMetricsClient(&statsd.NoOpClient{}, 0.25, l).sampleRate)
	})
	t.Run("Metrics are forwarded to the statsd client", func(t *testing.T) {
		c := newDogStatsdMetricsClient(&statsd.NoOpClient{}, 1, l)
		labels := []metricsTypes.MetricsLabel{{Name: "contract", Value: "AeraVaultHooks"}}

		assert.NoError(t, c.Incr(metricsTypes.Metric_Incr_AbiExtracted, labels, 1))
		assert.NoError(t, c.Gauge(metricsTypes.Metric_Gauge_AbiBytes, 10, labels))
		assert.NoError(t, c.Timing(metricsTypes.Metric_Timing_AbiExtractDuration, time.Second, labels))
		assert.NoError(t, c.Flush())
	})
}
