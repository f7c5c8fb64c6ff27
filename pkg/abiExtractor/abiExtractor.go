package abiExtractor

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/0xb10ckdev/Aera-Vault-V2/internal/metrics"
	"github.com/0xb10ckdev/Aera-Vault-V2/internal/metrics/metricsTypes"
	"github.com/0xb10ckdev/Aera-Vault-V2/pkg/artifact"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type FailurePolicy int

const (
	// FailFast stops at the first contract that fails. Outputs written before
	// the failure are left in place.
	FailFast FailurePolicy = iota
	// ContinueOnError attempts every contract and returns all failures together.
	ContinueOnError
)

func (p FailurePolicy) String() string {
	switch p {
	case ContinueOnError:
		return "continue-on-error"
	default:
		return "fail-fast"
	}
}

type AbiExtractorConfig struct {
	Layout artifact.Layout
	Policy FailurePolicy
}

type AbiExtractor struct {
	config      *AbiExtractorConfig
	logger      *zap.Logger
	metricsSink *metrics.MetricsSink
}

// Result describes one extracted ABI.
type Result struct {
	Contract     string
	ArtifactPath string
	OutputPath   string
	Bytes        int
	Digest       string
}

func NewAbiExtractor(cfg *AbiExtractorConfig, ms *metrics.MetricsSink, l *zap.Logger) *AbiExtractor {
	if ms == nil {
		ms = metrics.NewNoopMetricsSink()
	}
	return &AbiExtractor{
		config:      cfg,
		logger:      l,
		metricsSink: ms,
	}
}

// ExtractAndSave extracts the ABI of every named contract, in order.
func (ae *AbiExtractor) ExtractAndSave(ctx context.Context, contractNames []string) ([]*Result, error) {
	ae.logger.Sugar().Infow("Extracting contract ABIs",
		zap.Strings("contracts", contractNames),
		zap.String("artifactDir", ae.config.Layout.ArtifactDir),
		zap.String("outputDir", ae.config.Layout.OutputDir),
		zap.String("policy", ae.config.Policy.String()),
	)

	results := make([]*Result, 0, len(contractNames))
	var errs error
	for _, name := range contractNames {
		if err := ctx.Err(); err != nil {
			return results, multierr.Append(errs, fmt.Errorf("extraction interrupted before %s: %w", name, err))
		}

		res, err := ae.ExtractContract(ctx, name)
		if err != nil {
			err = fmt.Errorf("failed to extract abi for %s: %w", name, err)
			if ae.config.Policy == FailFast {
				return results, err
			}
			errs = multierr.Append(errs, err)
			continue
		}
		results = append(results, res)
	}

	if errs != nil {
		ae.logger.Sugar().Errorw("Finished extracting contract ABIs with failures",
			zap.Int("succeeded", len(results)),
			zap.Int("failed", len(multierr.Errors(errs))),
		)
		return results, errs
	}
	ae.logger.Sugar().Infow("Finished extracting contract ABIs", zap.Int("succeeded", len(results)))
	return results, nil
}

// ExtractContract reads the build artifact for name and writes its ABI to the
// output path. The output file is only opened once the artifact has been read
// and its abi field located.
func (ae *AbiExtractor) ExtractContract(ctx context.Context, name string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	res := &Result{
		Contract:     name,
		ArtifactPath: ae.config.Layout.ArtifactPath(name),
		OutputPath:   ae.config.Layout.OutputPath(name),
	}

	abi, err := artifact.ReadAbi(res.ArtifactPath)
	if err != nil {
		ae.logger.Sugar().Errorw("Failed to read abi from build artifact",
			zap.Error(err),
			zap.String("contract", name),
			zap.String("artifactPath", res.ArtifactPath),
		)
		ae.recordOutcome(name, outcomeForError(err))
		return nil, err
	}

	data, err := artifact.CompactAbi(abi)
	if err == nil {
		err = artifact.WriteAbi(res.OutputPath, data)
	}
	if err != nil {
		ae.logger.Sugar().Errorw("Failed to write abi",
			zap.Error(err),
			zap.String("contract", name),
			zap.String("outputPath", res.OutputPath),
		)
		ae.recordOutcome(name, metricsTypes.Outcome_WriteError)
		return nil, err
	}

	sum := sha256.Sum256(data)
	res.Bytes = len(data)
	res.Digest = hexutil.Encode(sum[:])

	ae.logger.Sugar().Infow("Saved contract abi",
		zap.String("contract", name),
		zap.String("artifactPath", res.ArtifactPath),
		zap.String("outputPath", res.OutputPath),
		zap.Int("bytes", res.Bytes),
		zap.String("sha256", res.Digest),
	)

	ae.recordOutcome(name, metricsTypes.Outcome_Ok)
	ae.recordSize(name, res.Bytes)
	ae.recordDuration(name, time.Since(start))
	return res, nil
}

func outcomeForError(err error) string {
	switch {
	case errors.Is(err, artifact.ErrArtifactNotFound):
		return metricsTypes.Outcome_NotFound
	case errors.Is(err, artifact.ErrMissingAbiField):
		return metricsTypes.Outcome_MissingAbi
	default:
		return metricsTypes.Outcome_ParseError
	}
}

func (ae *AbiExtractor) recordOutcome(name string, outcome string) {
	labels := []metricsTypes.MetricsLabel{
		{Name: "contract", Value: name},
		{Name: "outcome", Value: outcome},
	}
	if err := ae.metricsSink.Incr(metricsTypes.Metric_Incr_AbiExtracted, labels, 1); err != nil {
		ae.logger.Sugar().Warnw("Failed to record metric", zap.Error(err))
	}
}

func (ae *AbiExtractor) recordSize(name string, n int) {
	labels := []metricsTypes.MetricsLabel{{Name: "contract", Value: name}}
	if err := ae.metricsSink.Gauge(metricsTypes.Metric_Gauge_AbiBytes, float64(n), labels); err != nil {
		ae.logger.Sugar().Warnw("Failed to record metric", zap.Error(err))
	}
}

func (ae *AbiExtractor) recordDuration(name string, d time.Duration) {
	labels := []metricsTypes.MetricsLabel{{Name: "contract", Value: name}}
	if err := ae.metricsSink.Timing(metricsTypes.Metric_Timing_AbiExtractDuration, d, labels); err != nil {
		ae.logger.Sugar().Warnw("Failed to record metric", zap.Error(err))
	}
}
