package metricsTypes

import "time"

type IMetricsClient interface {
	Incr(name string, labels []MetricsLabel, value float64) error
	Gauge(name string, value float64, labels []MetricsLabel) error
	Timing(name string, value time.Duration, labels []MetricsLabel) error
	Flush() error
}

type MetricsLabel struct {
	Name  string
	Value string
}

type MetricsType string

var (
	MetricsType_Incr   MetricsType = "incr"
	MetricsType_Gauge  MetricsType = "gauge"
	MetricsType_Timing MetricsType = "timing"
)

type MetricsTypeConfig struct {
	Name   string
	Labels []string
}

var (
	Metric_Incr_AbiExtracted = "abi.extracted"

	Metric_Gauge_AbiBytes = "abi.bytes"

	Metric_Timing_AbiExtractDuration = "abi.extract.duration"
)

// Values of the "outcome" label on Metric_Incr_AbiExtracted.
const (
	Outcome_Ok         = "ok"
	Outcome_NotFound   = "not_found"
	Outcome_ParseError = "parse_error"
	Outcome_MissingAbi = "missing_abi"
	Outcome_WriteError = "write_error"
)

var MetricTypes = map[MetricsType][]MetricsTypeConfig{
	MetricsType_Incr: {
		MetricsTypeConfig{
			Name:   Metric_Incr_AbiExtracted,
			Labels: []string{"contract", "outcome"},
		},
	},
	MetricsType_Gauge: {
		MetricsTypeConfig{
			Name:   Metric_Gauge_AbiBytes,
			Labels: []string{"contract"},
		},
	},
	MetricsType_Timing: {
		MetricsTypeConfig{
			Name:   Metric_Timing_AbiExtractDuration,
			Labels: []string{"contract"},
		},
	},
}
