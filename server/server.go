// Package server assembles the restaurant website and runs it until the
// process is told to stop.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/IrumShehryar/Restaurant-Website/config"
	controller "github.com/IrumShehryar/Restaurant-Website/controllers"
	"github.com/IrumShehryar/Restaurant-Website/routes"
	"github.com/IrumShehryar/Restaurant-Website/seed"
	"github.com/IrumShehryar/Restaurant-Website/services"
	"github.com/IrumShehryar/Restaurant-Website/store"
	"github.com/IrumShehryar/Restaurant-Website/web"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const storeCloseTimeout = 5 * time.Second

// Server is the HTTP server together with its readiness state.
type Server struct {
	config     config.ServerConfig
	httpServer *http.Server
	health     *controller.HealthController
}

// Build wires the store into services, controllers and the router.
func Build(st store.Store, cfg *config.Config) (*Server, error) {
	pages, err := web.NewPages()
	if err != nil {
		return nil, err
	}

	menu := services.NewMenuService(st)
	submissions := services.NewSubmissionService(st)
	health := controller.NewHealthController(st)
	timeout := cfg.Server.RequestTimeout

	router := routes.NewRouter(routes.Controllers{
		Menu:        controller.NewMenuController(menu, timeout),
		Submissions: controller.NewSubmissionController(submissions, timeout),
		Pages:       controller.NewPageController(menu, pages, timeout),
		Health:      health,
	}, rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateLimitBurst))

	return &Server{
		config: cfg.Server,
		health: health,
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Server.Address, strconv.Itoa(cfg.Server.Port)),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// SetReady marks the server as ready to serve traffic.
func (s *Server) SetReady(ready bool) {
	s.health.SetReady(ready)
}

// Start listens on the configured address and serves until ctx is done,
// then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	s.SetReady(true)
	slog.Info("server listening", "address", ln.Addr().String())

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		s.SetReady(false)
		return err
	}
}

// Shutdown stops accepting requests and waits for in-flight ones, up to
// the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	return s.httpServer.Shutdown(shutdownCtx)
}

// Run opens the configured store, optionally seeds it and serves until
// SIGINT or SIGTERM.
func Run(ctx context.Context, cfg *config.Config) error {
	slog.Info("server config",
		slog.String("address", cfg.Server.Address),
		slog.Int("port", cfg.Server.Port),
		slog.String("store", cfg.Store.Driver),
		slog.Float64("rateLimit", cfg.Server.RateLimit),
		slog.Int("rateLimitBurst", cfg.Server.RateLimitBurst),
		slog.Duration("requestTimeout", cfg.Server.RequestTimeout),
		slog.Duration("shutdownTimeout", cfg.Server.ShutdownTimeout),
		slog.String("logLevel", cfg.Log.Level.String()),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), storeCloseTimeout)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()

	if cfg.AutoSeed {
		items, err := seed.Load("")
		if err != nil {
			return err
		}
		if _, err := seed.MenuIfEmpty(ctx, services.NewMenuService(st), items); err != nil {
			return fmt.Errorf("seed menu: %w", err)
		}
	}

	srv, err := Build(st, cfg)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
