package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bairro-ads/internal/adapter/http"
	"bairro-ads/internal/adapter/notify"
	"bairro-ads/internal/adapter/postgres"
	"bairro-ads/internal/adapter/rabbitmq"
	"bairro-ads/internal/adapter/usecase"
	"bairro-ads/internal/config"
	"bairro-ads/internal/core/domain"
	"bairro-ads/internal/core/port"
	"bairro-ads/internal/db"
)

// main is the entry point of the booking service. It loads configuration,
// optionally runs database migrations, initializes the database pool, the
// broker adapters and the use case, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout))

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	// the use case re-derives the periods on sale from the clock; this
	// snapshot only seeds demo data
	catalog := domain.NewCatalog(time.Now())
	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool, catalog); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo data seeded")
	}

	var (
		notifier port.Notifier
		payments port.PaymentGateway
	)
	if cfg.Rabbit.Enabled() {
		pub, err := rabbitmq.NewPublisher(cfg.Rabbit.URL, cfg.Rabbit.BookingExchange)
		if err != nil {
			logger.Error("rabbitmq publisher error", slog.Any("error", err))
			return
		}
		defer pub.Close()

		payPub, err := rabbitmq.NewPublisher(cfg.Rabbit.URL, cfg.Rabbit.PaymentExchange)
		if err != nil {
			logger.Error("rabbitmq publisher error", slog.Any("error", err))
			return
		}
		defer payPub.Close()

		cons, err := rabbitmq.NewConsumer(cfg.Rabbit.URL, cfg.Rabbit.PaymentExchange, cfg.Rabbit.PaymentQueue, rabbitmq.PaymentKeys)
		if err != nil {
			logger.Error("rabbitmq consumer error", slog.Any("error", err))
			return
		}
		defer cons.Close()

		gateway := rabbitmq.NewPaymentGateway(payPub, cons, logger)
		if err = gateway.Run(ctx); err != nil {
			logger.Error("payment consumer error", slog.Any("error", err))
			return
		}
		notifier, payments = rabbitmq.NewNotifier(pub), gateway
	} else {
		logger.Warn("RABBIT_URL not set, payments are auto-approved and notifications logged")
		notifier, payments = notify.NewLogNotifier(logger), notify.NewApproveGateway(logger)
	}

	repo := postgres.NewBookingRepository(pool)
	svc := usecase.NewBookingUseCase(repo, notifier, payments, catalog, logger, usecase.Options{
		PaymentTimeout: cfg.Booking.PaymentTimeout,
		SessionTTL:     cfg.Booking.SessionTTL,
	})

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
