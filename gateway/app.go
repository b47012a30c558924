package gateway

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/alovak/paystack-gateway/internal/middleware"
	"github.com/alovak/paystack-gateway/internal/paystack"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
)

// App is the main application, it wires the gateway service behind its
// interceptors and is responsible for starting and stopping the HTTP server.
type App struct {
	srv    *http.Server
	wg     *sync.WaitGroup
	Addr   string
	logger *slog.Logger
	config *Config
}

func NewApp(logger *slog.Logger, config *Config) *App {
	logger = logger.With(slog.String("app", "paystack-gateway"))

	if config == nil {
		config = DefaultConfig()
	}

	return &App{
		wg:     &sync.WaitGroup{},
		logger: logger,
		config: config,
	}
}

// Handler builds the full interceptor chain around the API routes:
// recoverer, request id, request log, CORS, static files, then routes.
func (a *App) Handler() (http.Handler, error) {
	if err := a.config.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	catalog, err := NewCatalog(a.config.Products)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	upstream := paystack.New(a.config.BaseURL, a.config.SecretKey, &http.Client{
		Timeout: a.config.UpstreamTimeout,
	})
	svc := NewService(catalog, upstream, a.config)

	router := chi.NewRouter()
	router.Use(chimw.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.NewStructuredLogger(a.logger))
	router.Use(middleware.CORS(a.config.AllowedOrigins))
	if a.config.StaticDir != "" {
		router.Use(middleware.Static(a.config.StaticDir))
	}

	api := NewAPI(svc, a.config, a.logger)
	api.AppendRoutes(router)

	return router, nil
}

func (a *App) Start() error {
	a.logger.Info("starting app...")

	handler, err := a.Handler()
	if err != nil {
		return err
	}

	l, err := net.Listen("tcp", a.config.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listening tcp port: %w", err)
	}

	a.Addr = l.Addr().String()

	a.srv = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	a.wg.Add(1)
	go func() {
		a.logger.Info("http server started",
			slog.String("addr", a.Addr),
			slog.String("upstream", a.config.BaseURL),
			slog.Bool("customers", a.config.CustomersEnabled),
		)

		if err := a.srv.Serve(l); err != nil {
			if err != http.ErrServerClosed {
				a.logger.Error("starting http server", "err", err)
			}

			a.logger.Info("http server stopped")
		}

		a.wg.Done()
	}()

	return nil
}

func (a *App) Shutdown() {
	a.logger.Info("shutting down app...")

	if a.srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.srv.Shutdown(ctx); err != nil {
			a.logger.Error("shutting down http server", "err", err)
		}
	}

	a.wg.Wait()

	a.logger.Info("app stopped")
}
