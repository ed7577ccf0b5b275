package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/report-forge/pkg/handlers/report"
	forgemiddleware "github.com/de-tools/report-forge/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Reports *handlers.Handler
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := ConfigureRouter(logger, config.Dependencies)

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

func ConfigureRouter(logger zerolog.Logger, deps Dependencies) *chi.Mux {
	router := chi.NewRouter()

	router.Use(forgemiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/widgets", deps.Reports.ListWidgets)

		r.Get("/reports", deps.Reports.ListReports)
		r.Post("/reports", deps.Reports.CreateReport)
		r.Get("/reports/{report}", deps.Reports.GetReport)
		r.Put("/reports/{report}", deps.Reports.UpdateReport)
		r.Delete("/reports/{report}", deps.Reports.DeleteReport)

		r.Post("/reports/{report}/drop", deps.Reports.ApplyDrop)
		r.Post("/reports/{report}/sections", deps.Reports.AddSection)
		r.Post("/reports/{report}/sections/{section}/duplicate", deps.Reports.DuplicateSection)
		r.Get("/reports/{report}/preview", deps.Reports.PreviewReport)
		r.Post("/reports/{report}/export", deps.Reports.ExportReport)
		r.Post("/reports/{report}/template", deps.Reports.SaveAsTemplate)

		r.Get("/templates", deps.Reports.ListTemplates)
		r.Post("/templates/{template}/instantiate", deps.Reports.InstantiateTemplate)
	})

	return router
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

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
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
