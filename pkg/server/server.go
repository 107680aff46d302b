package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Marcus-dot/project-dashboard-sub000/pkg/services/portfolio"

	calchandler "github.com/Marcus-dot/project-dashboard-sub000/pkg/handlers/calc"
	portfoliohandler "github.com/Marcus-dot/project-dashboard-sub000/pkg/handlers/portfolio"

	dashboardmiddleware "github.com/Marcus-dot/project-dashboard-sub000/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server

	shutdownTimeout time.Duration
}

type Dependencies struct {
	Portfolio portfolio.ManagementService
	Logger    zerolog.Logger
}
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter wires the calculation and portfolio endpoints onto a
// chi router. Split out from NewWebAPI so tests can exercise the route
// tree without binding a listener.
func ConfigureRouter(config Config) *chi.Mux {
	calcHandler := calchandler.NewHandler()
	portfolioHandler := portfoliohandler.NewHandler(config.Dependencies.Portfolio)

	logger := config.Dependencies.Logger

	router := chi.NewRouter()

	router.Use(dashboardmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/calculations", func(r chi.Router) {
			r.Post("/npv", calcHandler.ComputeNPV)
			r.Post("/risk", calcHandler.ComputeRiskScore)
			r.Post("/wastage", calcHandler.ComputeWastage)
			r.Post("/health", calcHandler.ComputeHealthScore)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", portfolioHandler.ListProjects)
			r.Put("/{project}", portfolioHandler.UpsertProject)
			r.Post("/{project}/npv", portfolioHandler.RecordNPV)
			r.Post("/{project}/risk", portfolioHandler.RecordRiskAssessment)
			r.Post("/{project}/wastage", portfolioHandler.RecordWastage)
			r.Get("/{project}/calculations", portfolioHandler.ListCalculations)
			r.Get("/{project}/health", portfolioHandler.GetProjectHealth)
		})

		r.Get("/portfolio/summary", portfolioHandler.GetPortfolioSummary)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	logger := config.Dependencies.Logger

	return &WebAPI{
		router:          router,
		logger:          &logger,
		shutdownTimeout: config.ShutdownTimeout,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		timeout := w.shutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
