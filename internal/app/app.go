package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/rentique/rental-service/internal/config"
	custommw "github.com/rentique/rental-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"
)

type application struct {
	logger *slog.Logger

	router    chi.Router
	httpSrv   *http.Server
	consumers []Consumer
	starters  []Starter
}

func New(logger *slog.Logger, cfg config.Config) *application {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(custommw.Logger(logger))
	router.Use(custommw.Metrics)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
	}))

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.Handler())

	httpSrv := &http.Server{
		Handler: router,
		Addr:    net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
	}

	return &application{
		logger:  logger,
		httpSrv: httpSrv,
		router:  router,
	}
}

type HTTPHandler interface {
	Init(r chi.Router)
}

func (a *application) SetHTTPHandlers(handlers ...HTTPHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

type Consumer interface {
	Consume(ctx context.Context)
	Close() error
}

func (a *application) SetConsumers(consumers ...Consumer) {
	a.consumers = consumers
}

// Starter runs once on startup, before traffic is served.
type Starter interface {
	Start(ctx context.Context) error
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = starters
}

func (a *application) Start(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, s := range a.starters {
		s := s
		eg.Go(func() error { return s.Start(ctx) })
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for _, c := range a.consumers {
		go c.Consume(ctx)
	}

	go a.startServer()

	a.logger.Info("application started")
	return nil
}

func (a *application) startServer() {
	a.logger.Info("starting http server", slog.String("addr", a.httpSrv.Addr))
	if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Error("failed to start http server", slog.Any("error", err))
		os.Exit(1)
	}
}

const gracefulShutdownTimeout = 5 * time.Second

func (a *application) Stop() error {
	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			a.logger.Error("failed to close consumer", slog.Any("error", err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	if err := a.httpSrv.Shutdown(ctx); err != nil {
		return err
	}

	a.logger.Info("application stopped")
	return nil
}
