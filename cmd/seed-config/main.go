package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/bizmatters/groundcite-gateway/internal/analysis"
	"github.com/bizmatters/groundcite-gateway/internal/config"
	"github.com/bizmatters/groundcite-gateway/internal/store"
)

func main() {
	name := flag.String("name", "", "Name of the saved configuration (required)")
	file := flag.String("file", "", "Path to an analysis request JSON file (required)")
	flag.Parse()

	if err := initTracer(); err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}

	if strings.TrimSpace(*name) == "" || *file == "" {
		log.Fatalf("Validation error: -name and -file are required")
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatalf("DATABASE_URL must be set to seed configurations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := store.Connect(ctx, cfg.DatabaseURL, 3, 2*time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()
	log.Println("Connected to PostgreSQL database")

	pgStore := store.NewPostgresStore(pool)
	if err := pgStore.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to prepare schema: %v", err)
	}

	saved, err := seedConfiguration(ctx, pgStore, *name, raw)
	if err != nil {
		log.Fatalf("Failed to seed configuration: %v", err)
	}

	log.Printf("✓ Successfully saved configuration")
	log.Printf("  ID: %s", saved.ID)
	log.Printf("  Name: %s", saved.Name)
	log.Printf("  Query: %s", saved.Settings.AnalysisConfig.Query)
}

// seedConfiguration validates an analysis request and stores its settings
func seedConfiguration(ctx context.Context, configStore store.ConfigurationStore, name string, raw []byte) (*store.StoredConfiguration, error) {
	tracer := otel.Tracer("seed-config")
	ctx, span := tracer.Start(ctx, "seed_configuration")
	defer span.End()

	body, err := analysis.DecodeRequest(raw)
	if err != nil {
		return nil, err
	}

	if valid, message := analysis.Validate(body); !valid {
		return nil, fmt.Errorf("invalid analysis request: %s", message)
	}

	saved := store.NewConfiguration(name, analysis.AssembleSettings(body))
	if err := configStore.Put(ctx, saved); err != nil {
		return nil, fmt.Errorf("failed to save configuration: %w", err)
	}

	return saved, nil
}

// initTracer initializes OpenTelemetry tracing
func initTracer() error {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return fmt.Errorf("failed to create stdout exporter: %w", err)
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
	)

	otel.SetTracerProvider(tp)

	return nil
}
