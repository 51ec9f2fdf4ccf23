// Command orderapi runs the order service: CRUD over orders with a
// synchronous user-existence check against the user API on every write.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lojaviva/commerce-system/internal/api"
	"github.com/lojaviva/commerce-system/internal/api/handler"
	"github.com/lojaviva/commerce-system/internal/core/service"
	"github.com/lojaviva/commerce-system/internal/infrastructure/client"
	"github.com/lojaviva/commerce-system/internal/infrastructure/config"
	"github.com/lojaviva/commerce-system/internal/infrastructure/db/postgres"
	"github.com/lojaviva/commerce-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logger.Init(logger.Options{
		Service: "order_api",
		Level:   os.Getenv("LOG_LEVEL"),
		Pretty:  os.Getenv("ENV") == "development",
	})

	ctx := context.Background()
	cfg := config.Load(ctx, log)

	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Database.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	orderRepo := postgres.NewOrderRepository(pool)
	if err := orderRepo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure orders schema")
	}

	orderService := service.NewOrderService(
		orderRepo,
		client.NewUserClient(cfg.Peer.UsersAPI),
		log,
	)

	e := api.NewOrderRouter(handler.NewOrderHandler(orderService), log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("order API started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("order API stopped")
}
