package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/fpl-league-hub/external/fplapi"
	"github.com/riskibarqy/fpl-league-hub/internal/config"
	"github.com/riskibarqy/fpl-league-hub/internal/interfaces/httpapi"
	"github.com/riskibarqy/fpl-league-hub/internal/platform/logging"
	"github.com/riskibarqy/fpl-league-hub/internal/platform/resilience"
	"github.com/riskibarqy/fpl-league-hub/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	fplClient := fplapi.NewClient(fplapi.ClientConfig{
		BaseURL:   cfg.FPLBaseURL,
		Token:     cfg.FPLAPIToken,
		UserAgent: cfg.FPLUserAgent,
		Timeout:   cfg.FPLTimeout,
		Logger:    logger,
		CircuitBreaker: resilience.NormalizeCircuitBreakerConfig(resilience.CircuitBreakerConfig{
			Enabled:          cfg.FPLCircuitEnabled,
			FailureThreshold: cfg.FPLCircuitFailureCount,
			OpenTimeout:      cfg.FPLCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FPLCircuitHalfOpenMaxReq,
		}),
	})

	leagueSvc := usecase.NewLeagueService(fplClient, cfg.ActivityWorkers, logger.Named("league"))
	entrySvc := usecase.NewEntryService(fplClient, logger.Named("entry"))
	playerSvc := usecase.NewPlayerService(fplClient)

	handler := httpapi.NewHandler(leagueSvc, entrySvc, playerSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}, nil
}
