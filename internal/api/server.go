package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/exchange"
	"github.com/vfg2006/publisher-dashboard-api/internal/api/handler"
	"github.com/vfg2006/publisher-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/publisher-dashboard-api/internal/config"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/authorizing"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/financials"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/sheetdata"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/steamstats"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/utmlinks"
	"github.com/vfg2006/publisher-dashboard-api/pkg/middleware"
)

// Services reúne os casos de uso expostos pela API
type Services struct {
	Financials   financials.FinancialsService
	SteamStats   steamstats.SteamStatsService
	SheetData    sheetdata.SheetDataService
	UTMLinks     utmlinks.UTMLinkService
	Exchange     exchange.RateProvider
	Authorizer   authorizing.Authorizer
	CronServices handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, services Services, clock clockwork.Clock) (*Server, error) {
	auth := services.Authorizer

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(clock)...),
		router.WithRoutes(handler.Authorization(auth)...),
		router.WithRoutes(handler.Financials(services.Financials, auth)...),
		router.WithRoutes(handler.SteamStats(services.SteamStats, auth)...),
		router.WithRoutes(handler.SheetData(services.SheetData, auth)...),
		router.WithRoutes(handler.UTMLinks(services.UTMLinks, auth)...),
		router.WithRoutes(handler.ExchangeRates(services.Exchange, auth)...),
		router.WithRoutes(handler.CronJobs(services.CronServices, auth)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.CORS.AllowedOrigins),
		middleware.AuthMiddleware(auth),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
