package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpLayer "calcdrills/http"
	"calcdrills/repository"
	"calcdrills/service"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the loan and calendar endpoints over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) newCache(ctx context.Context) repository.CacheRepository {
	if a.cfg.RedisAddr == "" {
		a.log.Info("REDIS_ADDR not set, using in-memory cache")
		return repository.NewMemoryCache()
	}

	cache := repository.NewRedisCache(a.cfg.RedisAddr, a.cfg.CacheTTL)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := cache.Ping(pingCtx); err != nil {
		a.log.WithError(err).WithField("addr", a.cfg.RedisAddr).Warn("redis unreachable, using in-memory cache")
		cache.Close()
		return repository.NewMemoryCache()
	}
	return cache
}

func (a *app) serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cache := a.newCache(ctx)
	if closer, ok := cache.(*repository.RedisCache); ok {
		defer closer.Close()
	}

	loanRepo := repository.NewLoanRepositoryMemory()
	opts := service.SolverOptions{Epsilon: a.cfg.Epsilon, MaxIterations: a.cfg.MaxIterations}

	loanService := service.NewLoanService(loanRepo, cache, opts, a.log)
	loanHandler := httpLayer.NewLoanHandler(loanService, a.log)

	calendarService := service.NewCalendarService(cache, a.log)
	calendarHandler := httpLayer.NewCalendarHandler(calendarService, a.log)

	rateLimiter := httpLayer.NewRateLimiter(a.cfg.RateLimit, a.cfg.RateWindow)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      httpLayer.NewRouter(loanHandler, calendarHandler, rateLimiter, a.log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		a.log.Infof("API listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		a.log.Info("Shutting down server...")
	case <-ctx.Done():
		a.log.Info("Context cancelled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		a.log.WithError(err).Error("Error during server shutdown")
		return err
	}

	a.log.Info("Server exited")
	return nil
}
