package cmd

import (
	"context"
	"fmt"

	"github.com/0xb10ckdev/Aera-Vault-V2/internal/config"
	"github.com/0xb10ckdev/Aera-Vault-V2/internal/logger"
	"github.com/0xb10ckdev/Aera-Vault-V2/internal/metrics"
	"github.com/0xb10ckdev/Aera-Vault-V2/internal/shutdown"
	"github.com/0xb10ckdev/Aera-Vault-V2/pkg/abiExtractor"
	"github.com/0xb10ckdev/Aera-Vault-V2/pkg/artifact"
	"go.uber.org/zap"
)

func runSaveAbis(ctx context.Context, cfg *config.Config) error {
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug, Name: "save-abis"})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync() //nolint:errcheck

	l.Sugar().Debugw("Loaded config", zap.Any("config", cfg))

	ctx, cancel := shutdown.ContextWithShutdown(ctx, shutdown.CreateGracefulShutdownChannel(), l)
	defer cancel()

	return saveAbis(ctx, cfg, l)
}

func saveAbis(ctx context.Context, cfg *config.Config, l *zap.Logger) error {
	metricsClients, err := metrics.InitMetricsSinksFromConfig(cfg, l)
	if err != nil {
		l.Sugar().Errorw("Failed to setup metrics sink", zap.Error(err))
		return err
	}

	sink, err := metrics.NewMetricsSink(&metrics.MetricsSinkConfig{}, metricsClients)
	if err != nil {
		l.Sugar().Errorw("Failed to setup metrics sink", zap.Error(err))
		return err
	}

	policy := abiExtractor.FailFast
	if cfg.ContinueOnError {
		policy = abiExtractor.ContinueOnError
	}

	ae := abiExtractor.NewAbiExtractor(&abiExtractor.AbiExtractorConfig{
		Layout: artifact.Layout{
			ArtifactDir: cfg.ArtifactDir,
			OutputDir:   cfg.OutputDir,
		},
		Policy: policy,
	}, sink, l)

	_, extractErr := ae.ExtractAndSave(ctx, cfg.Contracts)

	if err := sink.Flush(); err != nil {
		l.Sugar().Warnw("Failed to flush metrics", zap.Error(err))
	}

	return extractErr
}
