package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func CreateGracefulShutdownChannel() chan os.Signal {
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGTERM, syscall.SIGINT)

	return gracefulShutdown
}

// ContextWithShutdown returns a context that is cancelled when SIGINT or
// SIGTERM arrives on signalChan. The returned CancelFunc stops listening.
func ContextWithShutdown(parent context.Context, signalChan chan os.Signal, l *zap.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	go func() {
		select {
		case sig := <-signalChan:
			l.Sugar().Infow("Caught signal, stopping after the current contract",
				zap.String("signal", sig.String()),
			)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(signalChan)
		cancel()
	}
}
