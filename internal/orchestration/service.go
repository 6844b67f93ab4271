package orchestration

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bizmatters/groundcite-gateway/internal/analysis"
	"github.com/bizmatters/groundcite-gateway/internal/metrics"
	"github.com/bizmatters/groundcite-gateway/internal/models"
)

// Transports reported in metrics and spans
const (
	TransportHTTP      = "http"
	TransportWebSocket = "websocket"
)

// Error prefixes for the two 500 classes
const (
	engineErrorPrefix     = "GroundCite Error: "
	unexpectedErrorPrefix = "Unexpected error: "
)

// Stage marks progress through one analysis request
type Stage string

const (
	StageReceived      Stage = "received"
	StageValidated     Stage = "validated"
	StageEngineStarted Stage = "engine_started"
)

// StageFunc observes stage transitions of a request
type StageFunc func(stage Stage, correlationID string)

// Service handles analysis orchestration: decode, validate, assemble settings,
// call the engine and wrap the outcome in a ResponseEnvelope.
// It holds no per-request state, so concurrent calls are independent.
type Service struct {
	engine  Engine
	metrics *metrics.AnalysisMetrics
	tracer  trace.Tracer
	newID   func() string
}

// NewService creates a new orchestration service
func NewService(engine Engine, analysisMetrics *metrics.AnalysisMetrics) *Service {
	return &Service{
		engine:  engine,
		metrics: analysisMetrics,
		tracer:  otel.Tracer("analysis-orchestrator"),
		newID:   uuid.NewString,
	}
}

// Engine returns the engine the service forwards to
func (s *Service) Engine() Engine {
	return s.engine
}

// Handle runs one analysis request and returns the HTTP status with its envelope
func (s *Service) Handle(ctx context.Context, raw []byte) (int, *models.ResponseEnvelope) {
	return s.run(ctx, raw, TransportHTTP, nil)
}

// HandleStream is Handle with stage notifications, used by the websocket surface
func (s *Service) HandleStream(ctx context.Context, raw []byte, notify StageFunc) (int, *models.ResponseEnvelope) {
	return s.run(ctx, raw, TransportWebSocket, notify)
}

func (s *Service) run(ctx context.Context, raw []byte, transport string, notify StageFunc) (int, *models.ResponseEnvelope) {
	start := time.Now()
	correlationID := s.newID()

	ctx, span := s.tracer.Start(ctx, "analysis.handle")
	defer span.End()

	span.SetAttributes(
		attribute.String("correlation_id", correlationID),
		attribute.String("transport", transport),
	)

	if notify == nil {
		notify = func(Stage, string) {}
	}

	s.metrics.RecordReceived(ctx, transport)
	notify(StageReceived, correlationID)

	elapsed := func() float64 {
		return time.Since(start).Seconds()
	}

	fail := func(status int, errorType, message string) (int, *models.ResponseEnvelope) {
		span.SetAttributes(
			attribute.String("error.type", errorType),
			attribute.Int("http.status_code", status),
		)
		span.SetStatus(codes.Error, message)
		s.metrics.RecordFailed(ctx, transport, errorType, time.Since(start))
		return status, models.NewErrorEnvelope(message, elapsed(), correlationID)
	}

	body, err := analysis.DecodeRequest(raw)
	if err != nil {
		return fail(http.StatusBadRequest, metrics.ErrorTypeDecode, err.Error())
	}

	if valid, message := analysis.Validate(body); !valid {
		return fail(http.StatusBadRequest, metrics.ErrorTypeValidation, message)
	}
	notify(StageValidated, correlationID)

	result, provider := s.invoke(ctx, body, correlationID, notify)

	if result.Failure == nil {
		s.metrics.RecordCompleted(ctx, transport, provider, time.Since(start))
		span.SetAttributes(attribute.Int("http.status_code", http.StatusOK))
		return http.StatusOK, models.NewSuccessEnvelope(result.Data, elapsed(), correlationID)
	}

	span.RecordError(result.Failure)

	switch result.Failure.Kind {
	case FailureEngine:
		log.Printf(`{"level":"error","message":"GroundCite engine error","error":%q,"correlation_id":"%s"}`,
			result.Failure.Message, correlationID)
		return fail(http.StatusInternalServerError, metrics.ErrorTypeEngine, engineErrorPrefix+result.Failure.Message)
	default:
		log.Printf(`{"level":"error","message":"Unexpected error in analyze_query","error":%q,"correlation_id":"%s"}`,
			result.Failure.Message, correlationID)
		return fail(http.StatusInternalServerError, metrics.ErrorTypeUnexpected, unexpectedErrorPrefix+result.Failure.Message)
	}
}

// invoke assembles settings and awaits the engine. Panics from either step are
// reported as unexpected failures.
func (s *Service) invoke(ctx context.Context, body *models.RequestBody, correlationID string, notify StageFunc) (result Result, provider string) {
	defer func() {
		if r := recover(); r != nil {
			result = Failed(FailureUnexpected, fmt.Sprint(r))
		}
	}()

	settings := analysis.AssembleSettings(body)
	provider = settings.AIConfig.ParsingProvider

	notify(StageEngineStarted, correlationID)
	return s.engine.Analyze(ctx, settings, correlationID), provider
}
