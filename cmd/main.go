package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"catalog/internal/config"
	"catalog/internal/discount"
	httpapi "catalog/internal/http"
	"catalog/internal/metrics"
	"catalog/internal/obs"
	"catalog/internal/repository"
	"catalog/internal/service"
	"catalog/internal/statuscache"

	_ "catalog/docs"
)

func main() {
	cfg := config.Load()
	log := obs.NewLogger()

	var repo repository.ProductRepository
	if cfg.DatabaseURL != "" {
		pg, err := repository.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			log.Error("postgres init", "err", err)
			os.Exit(1)
		}
		repo = pg
	} else {
		// без DATABASE_URL сервис работает на in-memory хранилище
		repo = repository.NewMemoryStore()
	}

	statuses := statuscache.New(cfg.StatusCacheTTL)
	discounts := discount.NewClient(&http.Client{Timeout: cfg.HTTPClientTimeout}, cfg.DiscountAPIURL, log)
	products := service.NewProductService(repo, statuses, discounts, log)

	m := metrics.NewServerMetrics("api")
	srv := httpapi.NewServer(products, m)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error("shutdown error", "err", err)
	}
}
