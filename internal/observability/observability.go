package observability

import (
	"context"
	"net/http"

	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/fpl-league-hub/internal/config"
	"github.com/riskibarqy/fpl-league-hub/internal/platform/logging"
	"go.uber.org/multierr"
)

// Stack holds whichever of tracing, continuous profiling and the pprof
// listener were enabled. The zero value shuts down cleanly.
type Stack struct {
	logger          *logging.Logger
	shutdownTracing func(context.Context) error
	profiler        *pyroscope.Profiler
	pprofServer     *http.Server
}

// Start brings up the observability stack described by cfg.
func Start(cfg config.Config, logger *logging.Logger) (*Stack, error) {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("observability")

	s := &Stack{logger: logger}
	s.shutdownTracing = initUptrace(cfg, logger)

	profiler, err := startPyroscope(cfg, logger)
	if err != nil {
		shutdownErr := s.Shutdown(context.Background())
		return nil, multierr.Append(err, shutdownErr)
	}
	s.profiler = profiler
	s.pprofServer = startPprof(cfg, logger)

	return s, nil
}

// Shutdown flushes spans and stops the profilers, reporting every failure.
func (s *Stack) Shutdown(ctx context.Context) error {
	if s == nil {
		return nil
	}

	var err error
	if s.pprofServer != nil {
		err = multierr.Append(err, s.pprofServer.Shutdown(ctx))
	}
	if s.profiler != nil {
		err = multierr.Append(err, s.profiler.Stop())
	}
	if s.shutdownTracing != nil {
		err = multierr.Append(err, s.shutdownTracing(ctx))
	}
	if err == nil && s.logger != nil {
		s.logger.Info("observability stopped")
	}
	return err
}
