package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/0xb10ckdev/Aera-Vault-V2/internal/config"
	"github.com/0xb10ckdev/Aera-Vault-V2/internal/metrics/metricsTypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type recordingClient struct {
	incrs    map[string]float64
	gauges   map[string]float64
	timings  map[string]time.Duration
	labels   [][]metricsTypes.MetricsLabel
	flushErr error
	flushed  int
}

func newRecordingClient() *recordingClient {
	return &recordingClient{
		incrs:   map[string]float64{},
		gauges:  map[string]float64{},
		timings: map[string]time.Duration{},
	}
}

func (r *recordingClient) Incr(name string, labels []metricsTypes.MetricsLabel, value float64) error {
	r.incrs[name] += value
	r.labels = append(r.labels, labels)
	return nil
}

func (r *recordingClient) Gauge(name string, value float64, labels []metricsTypes.MetricsLabel) error {
	r.gauges[name] = value
	r.labels = append(r.labels, labels)
	return nil
}

func (r *recordingClient) Timing(name string, value time.Duration, labels []metricsTypes.MetricsLabel) error {
	r.timings[name] = value
	r.labels = append(r.labels, labels)
	return nil
}

func (r *recordingClient) Flush() error {
	r.flushed++
	return r.flushErr
}

func Test_MetricsSink(t *testing.T) {
	t.Run("Fans out to every client", func(t *testing.T) {
		a, b := newRecordingClient(), newRecordingClient()
		sink, err := NewMetricsSink(&MetricsSinkConfig{}, []metricsTypes.IMetricsClient{a, b})
		require.NoError(t, err)

		labels := []metricsTypes.MetricsLabel{{Name: "contract", Value: "AeraVaultV2"}}
		assert.NoError(t, sink.Incr(metricsTypes.Metric_Incr_AbiExtracted, labels, 1))
		assert.NoError(t, sink.Gauge(metricsTypes.Metric_Gauge_AbiBytes, 42, labels))
		assert.NoError(t, sink.Timing(metricsTypes.Metric_Timing_AbiExtractDuration, time.Millisecond, labels))

		for _, c := range []*recordingClient{a, b} {
			assert.Equal(t, 1.0, c.incrs[metricsTypes.Metric_Incr_AbiExtracted])
			assert.Equal(t, 42.0, c.gauges[metricsTypes.Metric_Gauge_AbiBytes])
			assert.Equal(t, time.Millisecond, c.timings[metricsTypes.Metric_Timing_AbiExtractDuration])
		}
	})
	t.Run("Default labels are prepended", func(t *testing.T) {
		c := newRecordingClient()
		sink, _ := NewMetricsSink(&MetricsSinkConfig{
			DefaultLabels: []metricsTypes.MetricsLabel{{Name: "repo", Value: "vault"}},
		}, []metricsTypes.IMetricsClient{c})

		assert.NoError(t, sink.Incr("x", []metricsTypes.MetricsLabel{{Name: "contract", Value: "A"}}, 1))
		assert.Equal(t, []metricsTypes.MetricsLabel{
			{Name: "repo", Value: "vault"},
			{Name: "contract", Value: "A"},
		}, c.labels[0])
	})
	t.Run("Flush reaches every client and combines errors", func(t *testing.T) {
		a, b := newRecordingClient(), newRecordingClient()
		a.flushErr = errors.New("a failed")
		b.flushErr = errors.New("b failed")
		sink, _ := NewMetricsSink(&MetricsSinkConfig{}, []metricsTypes.IMetricsClient{a, b})

		err := sink.Flush()
		assert.Len(t, multierr.Errors(err), 2)
		assert.Equal(t, 1, a.flushed)
		assert.Equal(t, 1, b.flushed)
	})
	t.Run("Noop sink accepts metrics without clients", func(t *testing.T) {
		sink := NewNoopMetricsSink()
		labels := []metricsTypes.MetricsLabel{{Name: "contract", Value: "A"}}
		assert.NoError(t, sink.Incr(metricsTypes.Metric_Incr_AbiExtracted, labels, 1))
		assert.NoError(t, sink.Gauge(metricsTypes.Metric_Gauge_AbiBytes, 1, labels))
		assert.NoError(t, sink.Timing(metricsTypes.Metric_Timing_AbiExtractDuration, time.Millisecond, nil))
		assert.NoError(t, sink.Flush())
	})
	t.Run("No clients is a no-op", func(t *testing.T) {
		sink, _ := NewMetricsSink(&MetricsSinkConfig{}, nil)
		assert.NoError(t, sink.Incr("x", nil, 1))
		assert.NoError(t, sink.Flush())
	})
}

func Test_InitMetricsSinksFromConfig(t *testing.T) {
	l, _ := zap.NewDevelopment()

	t.Run("Nothing enabled yields no clients", func(t *testing.T) {
		clients, err := InitMetricsSinksFromConfig(&config.Config{}, l)
		require.NoError(t, err)
		assert.Empty(t, clients)
	})
	t.Run("Prometheus enabled yields a client", func(t *testing.T) {
		clients, err := InitMetricsSinksFromConfig(&config.Config{
			PrometheusConfig: config.PrometheusConfig{Enabled: true},
		}, l)
		require.NoError(t, err)
		assert.Len(t, clients, 1)
	})
}
