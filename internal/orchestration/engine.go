package orchestration

import (
	"context"
	"encoding/json"

	"github.com/bizmatters/groundcite-gateway/internal/models"
)

// Engine is the external GroundCite analysis engine
type Engine interface {
	// Analyze runs search, optional validation and optional parsing for settings.
	// It may block for as long as the underlying models take.
	Analyze(ctx context.Context, settings *models.Settings, correlationID string) Result
	IsHealthy(ctx context.Context) bool
}

// FailureKind distinguishes engine-reported failures from everything else
type FailureKind int

const (
	// FailureEngine is a failure the engine reported itself (quota, provider error, bad schema)
	FailureEngine FailureKind = iota + 1
	// FailureUnexpected covers transport, decoding and internal faults
	FailureUnexpected
)

func (k FailureKind) String() string {
	switch k {
	case FailureEngine:
		return "engine"
	case FailureUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// Failure is the failure variant of Result
type Failure struct {
	Kind    FailureKind
	Message string
}

func (f *Failure) Error() string {
	return f.Kind.String() + ": " + f.Message
}

// Result is the outcome of one engine invocation: Data on success, Failure otherwise
type Result struct {
	Data    json.RawMessage
	Failure *Failure
}

// Succeeded builds a success Result
func Succeeded(data json.RawMessage) Result {
	return Result{Data: data}
}

// Failed builds a failure Result
func Failed(kind FailureKind, message string) Result {
	return Result{Failure: &Failure{Kind: kind, Message: message}}
}
