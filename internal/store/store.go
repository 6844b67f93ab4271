// Package store holds saved analysis configurations.
package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bizmatters/groundcite-gateway/internal/models"
)

// ErrNotFound is returned when no configuration has the requested id
var ErrNotFound = errors.New("configuration not found")

// StoredConfiguration is a saved Settings snapshot
type StoredConfiguration struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	CreatedAt time.Time        `json:"created_at"`
	Settings  *models.Settings `json:"settings"`
}

// ConfigurationStore persists configuration snapshots
type ConfigurationStore interface {
	Put(ctx context.Context, cfg *StoredConfiguration) error
	Get(ctx context.Context, id string) (*StoredConfiguration, error)
	// List returns all configurations, oldest first
	List(ctx context.Context) ([]*StoredConfiguration, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// NewConfiguration builds a snapshot with a fresh id. Provider keys are
// masked so saved configurations never hold usable credentials.
func NewConfiguration(name string, settings *models.Settings) *StoredConfiguration {
	snapshot := *settings
	snapshot.AIConfig.GeminiAIKeyPrimary = MaskSecret(settings.AIConfig.GeminiAIKeyPrimary)
	snapshot.AIConfig.OpenAIKey = MaskSecret(settings.AIConfig.OpenAIKey)

	id := uuid.NewString()
	if strings.TrimSpace(name) == "" {
		name = "configuration-" + id[:8]
	}

	return &StoredConfiguration{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Settings:  &snapshot,
	}
}

// MaskSecret keeps at most the last four characters of a secret
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	runes := []rune(secret)
	if len(runes) <= 4 {
		return "****"
	}
	return "****" + string(runes[len(runes)-4:])
}
