package orchestration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/bizmatters/groundcite-gateway/internal/models"
)

// CorrelationHeader carries the correlation id to the engine and back to callers
const CorrelationHeader = "X-Correlation-ID"

// maxErrorBody bounds how much of an error response is echoed into messages
const maxErrorBody = 4096

// EngineClient calls a GroundCite engine over HTTP
type EngineClient struct {
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
	breaker    *gobreaker.CircuitBreaker
}

// AnalyzeRequest is the payload posted to the engine
type AnalyzeRequest struct {
	CorrelationID string           `json:"correlation_id"`
	Settings      *models.Settings `json:"settings"`
}

// engineErrorBody is the error shape the engine uses for failures it recognises
type engineErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// engineReply is what a completed HTTP exchange produced. A reply that carries
// an engine failure still counts as a healthy exchange for the breaker.
type engineReply struct {
	data    json.RawMessage
	failure string
}

// callerGone wraps an exchange abandoned because the caller's context ended.
// It is reported to that caller but not counted against the engine.
type callerGone struct {
	err error
}

func (e *callerGone) Error() string {
	return e.err.Error()
}

func (e *callerGone) Unwrap() error {
	return e.err
}

// NewEngineClient creates a new GroundCite engine client
func NewEngineClient(baseURL string, timeout time.Duration) *EngineClient {
	settings := gobreaker.Settings{
		Name:        "groundcite-engine",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		IsSuccessful: func(err error) bool {
			var gone *callerGone
			return err == nil || errors.As(err, &gone)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Printf(`{"level":"warn","message":"Circuit breaker state changed","breaker":"%s","from":"%s","to":"%s"}`, name, from, to)
		},
	}

	return &EngineClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tracer:  otel.Tracer("groundcite-engine-client"),
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Analyze posts settings to the engine and waits for the analysis result
func (c *EngineClient) Analyze(ctx context.Context, settings *models.Settings, correlationID string) Result {
	ctx, span := c.tracer.Start(ctx, "groundcite_engine.analyze")
	defer span.End()

	span.SetAttributes(
		attribute.String("correlation_id", correlationID),
		attribute.String("parsing_provider", settings.AIConfig.ParsingProvider),
		attribute.Bool("analysis.validate", settings.AnalysisConfig.Validate),
		attribute.Bool("analysis.parse", settings.AnalysisConfig.Parse),
	)

	out, err := c.breaker.Execute(func() (interface{}, error) {
		reply, err := c.analyzeInternal(ctx, AnalyzeRequest{
			CorrelationID: correlationID,
			Settings:      settings,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, &callerGone{err: err}
			}
			return nil, err
		}
		return reply, nil
	})
	if err != nil {
		span.RecordError(err)
		return Failed(FailureUnexpected, err.Error())
	}

	reply := out.(*engineReply)
	if reply.failure != "" {
		span.SetAttributes(attribute.String("engine.failure", reply.failure))
		return Failed(FailureEngine, reply.failure)
	}

	span.SetAttributes(attribute.Int("engine.response_bytes", len(reply.data)))
	return Succeeded(reply.data)
}

// analyzeInternal performs the actual HTTP request
func (c *EngineClient) analyzeInternal(ctx context.Context, req AnalyzeRequest) (*engineReply, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/analyze", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(CorrelationHeader, req.CorrelationID)

	// Inject trace context
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read engine response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if message := engineErrorMessage(bodyBytes); message != "" {
			return &engineReply{failure: message}, nil
		}
		return nil, fmt.Errorf("engine returned status %d: %s", resp.StatusCode, truncate(bodyBytes))
	}

	if !json.Valid(bodyBytes) {
		return nil, fmt.Errorf("failed to decode response: invalid JSON from engine")
	}

	return &engineReply{data: json.RawMessage(bodyBytes)}, nil
}

// IsHealthy checks if the engine is reachable
func (c *EngineClient) IsHealthy(ctx context.Context) bool {
	ctx, span := c.tracer.Start(ctx, "groundcite_engine.health_check")
	defer span.End()

	// Use circuit breaker state as a quick health indicator
	if c.breaker.State() == gobreaker.StateOpen {
		span.SetAttributes(attribute.Bool("healthy", false), attribute.String("reason", "circuit_breaker_open"))
		return false
	}

	url := fmt.Sprintf("%s/health", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		span.RecordError(err)
		return false
	}

	// Short timeout for health checks
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		return false
	}
	defer resp.Body.Close()

	healthy := resp.StatusCode == http.StatusOK
	span.SetAttributes(attribute.Bool("healthy", healthy))

	return healthy
}

func engineErrorMessage(body []byte) string {
	var payload engineErrorBody
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, candidate := range []string{payload.Error, payload.Message, payload.Detail} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return ""
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}
