package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/bizmatters/groundcite-gateway/docs"
	"github.com/bizmatters/groundcite-gateway/internal/config"
	"github.com/bizmatters/groundcite-gateway/internal/gateway"
	"github.com/bizmatters/groundcite-gateway/internal/metrics"
	"github.com/bizmatters/groundcite-gateway/internal/orchestration"
	"github.com/bizmatters/groundcite-gateway/internal/store"
)

// @title GroundCite Query Analysis API
// @version 1.0
// @description Gateway in front of the GroundCite analysis engine.
// @description
// @description Validates analysis requests, assembles engine settings, forwards them with a correlation id
// @description and returns a uniform result envelope. Saved configurations are kept with masked provider keys.

// @contact.name API Support
// @contact.email support@bizmatters.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	tp, err := initTracer(cfg.TracePretty)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}

	configStore, closeStore, err := initStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize configuration store: %v", err)
	}
	defer closeStore()

	analysisMetrics, err := metrics.NewAnalysisMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize orchestration layer
	engineClient := orchestration.NewEngineClient(cfg.EngineURL, cfg.EngineTimeout)
	orchestrationService := orchestration.NewService(engineClient, analysisMetrics)

	// Initialize gateway layer
	handler := gateway.NewHandler(orchestrationService, configStore, gateway.ServiceInfo{
		Version:     cfg.Version,
		Environment: cfg.Environment,
	})
	streamHandler := gateway.NewStreamHandler(orchestrationService)

	docs.SwaggerInfo.Version = cfg.Version
	router := gateway.NewRouter(handler, streamHandler)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting GroundCite gateway on port %s (engine %s)\n", cfg.Port, cfg.EngineURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := tp.Shutdown(ctx); err != nil {
		log.Printf("Failed to flush traces: %v", err)
	}

	log.Println("Server exited")
}

// initTracer initializes OpenTelemetry tracing
func initTracer(pretty bool) (*trace.TracerProvider, error) {
	var opts []stdouttrace.Option
	if pretty {
		opts = append(opts, stdouttrace.WithPrettyPrint())
	}

	exporter, err := stdouttrace.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout exporter: %w", err)
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// initStore selects PostgreSQL when a database URL is configured, otherwise memory
func initStore(databaseURL string) (store.ConfigurationStore, func(), error) {
	if databaseURL == "" {
		log.Println("DATABASE_URL not set, saved configurations are kept in memory")
		return store.NewMemoryStore(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	log.Println("Connecting to PostgreSQL database...")
	pool, err := store.Connect(ctx, databaseURL, 10, 3*time.Second)
	if err != nil {
		return nil, nil, err
	}
	log.Println("Connected to PostgreSQL database")

	pgStore := store.NewPostgresStore(pool)
	if err := pgStore.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return pgStore, pool.Close, nil
}
