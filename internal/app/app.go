package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/hotelops/settlement/internal/clients/catalog"
	"github.com/hotelops/settlement/internal/dal/postgres"
	"github.com/hotelops/settlement/internal/dal/rabbitmq"
	outboxrepo "github.com/hotelops/settlement/internal/dal/repositories/outbox/postgres"
	"github.com/hotelops/settlement/internal/otel"
	outboxmodel "github.com/hotelops/settlement/internal/service/models/outbox"
	"github.com/hotelops/settlement/internal/service/services/reportsvc"
	"github.com/hotelops/settlement/internal/service/services/settlementsvc"
	httptransport "github.com/hotelops/settlement/internal/transport/http"
	outboxworker "github.com/hotelops/settlement/internal/worker/outbox"
	"github.com/hotelops/settlement/pkg/cache"
)

// App wires the service dependencies together.
type App struct {
	settlementSvc  *settlementsvc.SettlementService
	reportSvc      *reportsvc.ReportService
	transport      *httptransport.HTTPTransport
	outboxWorker   *outboxworker.Worker
	postgresClient *postgres.Client
	rabbitClient   *rabbitmq.Client
	otelController *otel.OtelController
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	otelController := otel.MustInitOtel()

	postgresClient := postgres.MustNewClient()
	rabbitClient := rabbitmq.MustNewClient(outboxmodel.ExchangeSettlementEvents)

	redisCache := cache.NewRedisCache(viper.GetString("redis.addr"), "settlement-svc")
	catalogClient := catalog.NewHTTPClient(redisCache)

	settlementSvc := settlementsvc.MustNewSettlementService(
		settlementsvc.WithPostgresClient(postgresClient),
		settlementsvc.WithCatalog(catalogClient),
	)

	reportSvc := reportsvc.MustNewReportService(
		reportsvc.WithPostgresClient(postgresClient),
	)

	transport := httptransport.NewHTTPTransport(settlementSvc, reportSvc)
	transport.RegisterRoutes()

	worker := outboxworker.NewWorker(
		outboxrepo.NewOutboxRepository(postgresClient.Pool()),
		rabbitClient,
	)

	return &App{
		settlementSvc:  settlementSvc,
		reportSvc:      reportSvc,
		transport:      transport,
		outboxWorker:   worker,
		postgresClient: postgresClient,
		rabbitClient:   rabbitClient,
		otelController: otelController,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	go a.outboxWorker.Start(workerCtx)

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	cancelWorker()

	if err := a.rabbitClient.Close(); err != nil {
		slog.Error("RabbitMQ connection close error", "error", err)
	} else {
		slog.Info("RabbitMQ connection closed gracefully")
	}

	a.postgresClient.Close()
	slog.Info("Database connection closed gracefully")

	if err := a.otelController.Shutdown(); err != nil {
		slog.Error("Trace provider shutdown error", "error", err)
	}

	slog.Info("Application shutdown complete")
}
