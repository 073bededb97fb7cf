package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/dictproxy/internal/adapter/provider/youdao"
	"github.com/heartmarshall/dictproxy/internal/config"
	"github.com/heartmarshall/dictproxy/internal/service/lookup"
	"github.com/heartmarshall/dictproxy/internal/transport/middleware"
	"github.com/heartmarshall/dictproxy/internal/transport/rest"
)

// NewLookupService wires the Youdao provider into the lookup service.
func NewLookupService(cfg *config.Config, logger *slog.Logger) *lookup.Service {
	dictProvider := youdao.NewProvider(cfg.Provider, logger)
	return lookup.NewService(logger, dictProvider, cfg.Lookup)
}

// NewHandler builds the full HTTP handler: routes behind the standard
// middleware chain.
func NewHandler(cfg *config.Config, logger *slog.Logger) http.Handler {
	health := rest.NewHealthHandler()
	define := rest.NewDefineHandler(NewLookupService(cfg, logger), logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", health.Healthz)
	mux.HandleFunc("GET /define", define.Define)

	return middleware.Standard(logger, cfg.CORS)(mux)
}

// NewServer creates the http.Server for the given config.
func NewServer(cfg *config.Config, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

// Run is the application entry point. It loads configuration, initializes
// the logger, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	return Serve(ctx, cfg, logger)
}

// Serve listens on the configured address and blocks until ctx is cancelled
// or the listener fails. On cancellation in-flight requests get
// server.shutdown_timeout to finish.
func Serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	srv := NewServer(cfg, logger)

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("addr", ln.Addr().String()),
		slog.String("provider", cfg.Provider.BaseURL),
		slog.String("log_level", cfg.Log.Level),
	)

	return serveListener(ctx, srv, ln, cfg.Server, logger)
}

func serveListener(ctx context.Context, srv *http.Server, ln net.Listener, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
