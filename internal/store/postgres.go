package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/bizmatters/groundcite-gateway/internal/models"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS configurations (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	settings   JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PostgresStore keeps configurations in PostgreSQL
type PostgresStore struct {
	pool   *pgxpool.Pool
	tracer trace.Tracer
}

// NewPostgresStore creates a store backed by pool
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		pool:   pool,
		tracer: otel.Tracer("configuration-store"),
	}
}

// Connect opens a pool and pings it, retrying while the database starts up
func Connect(ctx context.Context, databaseURL string, attempts int, wait time.Duration) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	for i := 0; i < attempts; i++ {
		pool, err = pgxpool.New(ctx, databaseURL)
		if err == nil {
			err = pool.Ping(ctx)
			if err == nil {
				return pool, nil
			}
			pool.Close()
		}
		log.Printf("Waiting for database... (attempt %d/%d): %v", i+1, attempts, err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
}

// EnsureSchema creates the configurations table if it does not exist
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create configurations table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Put(ctx context.Context, cfg *StoredConfiguration) error {
	ctx, span := s.tracer.Start(ctx, "store.put")
	defer span.End()

	span.SetAttributes(attribute.String("configuration.id", cfg.ID))

	id, err := uuid.Parse(cfg.ID)
	if err != nil {
		return fmt.Errorf("invalid configuration id %q: %w", cfg.ID, err)
	}

	settingsJSON, err := json.Marshal(cfg.Settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO configurations (id, name, settings, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id)
		DO UPDATE SET name = EXCLUDED.name, settings = EXCLUDED.settings
	`, id, cfg.Name, settingsJSON, cfg.CreatedAt)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*StoredConfiguration, error) {
	ctx, span := s.tracer.Start(ctx, "store.get")
	defer span.End()

	span.SetAttributes(attribute.String("configuration.id", id))

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	row := s.pool.QueryRow(ctx, `
		SELECT id, name, settings, created_at
		FROM configurations
		WHERE id = $1
	`, parsed)

	cfg, err := scanConfiguration(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get configuration: %w", err)
	}

	return cfg, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*StoredConfiguration, error) {
	ctx, span := s.tracer.Start(ctx, "store.list")
	defer span.End()

	rows, err := s.pool.Query(ctx, `
		SELECT id, name, settings, created_at
		FROM configurations
		ORDER BY created_at ASC
	`)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to query configurations: %w", err)
	}
	defer rows.Close()

	configs := []*StoredConfiguration{}
	for rows.Next() {
		cfg, err := scanConfiguration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan configuration: %w", err)
		}
		configs = append(configs, cfg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating configurations: %w", err)
	}

	span.SetAttributes(attribute.Int("configuration.count", len(configs)))
	return configs, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "store.delete")
	defer span.End()

	span.SetAttributes(attribute.String("configuration.id", id))

	parsed, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	tag, err := s.pool.Exec(ctx, `DELETE FROM configurations WHERE id = $1`, parsed)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete configuration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func scanConfiguration(row pgx.Row) (*StoredConfiguration, error) {
	var id uuid.UUID
	var settingsJSON []byte
	cfg := &StoredConfiguration{}

	if err := row.Scan(&id, &cfg.Name, &settingsJSON, &cfg.CreatedAt); err != nil {
		return nil, err
	}

	var settings models.Settings
	if err := json.Unmarshal(settingsJSON, &settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	cfg.ID = id.String()
	cfg.Settings = &settings
	cfg.CreatedAt = cfg.CreatedAt.UTC()
	return cfg, nil
}
