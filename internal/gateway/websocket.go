package gateway

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/bizmatters/groundcite-gateway/internal/orchestration"
)

const (
	// EventResult carries the final envelope
	EventResult = "result"

	requestReadTimeout = 30 * time.Second
	writeTimeout       = 10 * time.Second
	maxRequestBytes    = 1 << 20
)

// StreamEvent is one message sent to a websocket client
type StreamEvent struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
	Status    int         `json:"status,omitempty"`
}

// StreamHandler runs analyses over websocket connections, reporting each stage
type StreamHandler struct {
	service  *orchestration.Service
	tracer   trace.Tracer
	upgrader websocket.Upgrader
}

// NewStreamHandler creates a websocket analysis handler
func NewStreamHandler(service *orchestration.Service) *StreamHandler {
	return &StreamHandler{
		service: service,
		tracer:  otel.Tracer("analysis-stream"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Authentication and origin policy belong to the hosting environment
				return true
			},
			HandshakeTimeout: 10 * time.Second,
		},
	}
}

// StreamAnalysis handles WebSocket /ws/analyze
// @Summary Stream an analysis
// @Description The client sends one analysis request as a text message. The server replies with received, validated and engine_started events followed by a result event holding the envelope, then closes.
// @Tags analysis
// @Success 101 "Switching Protocols"
// @Router /ws/analyze [get]
func (s *StreamHandler) StreamAnalysis(c *gin.Context) {
	ctx, span := s.tracer.Start(c.Request.Context(), "analysis_stream.session")
	defer span.End()

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		span.RecordError(err)
		log.Printf(`{"level":"warn","message":"Failed to upgrade connection","error":%q}`, err.Error())
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxRequestBytes)
	conn.SetReadDeadline(time.Now().Add(requestReadTimeout))

	_, raw, err := conn.ReadMessage()
	if err != nil {
		span.RecordError(err)
		log.Printf(`{"level":"warn","message":"Failed to read analysis request","error":%q}`, err.Error())
		return
	}

	// Once the client has gone, stop emitting stage events but still finish the analysis
	var writeErr error
	send := func(event StreamEvent) {
		if writeErr != nil {
			return
		}
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if writeErr = conn.WriteJSON(event); writeErr != nil {
			span.RecordError(writeErr)
			log.Printf(`{"level":"warn","message":"Client connection write error","error":%q}`, writeErr.Error())
		}
	}

	status, envelope := s.service.HandleStream(ctx, raw, func(stage orchestration.Stage, correlationID string) {
		send(StreamEvent{
			EventType: string(stage),
			Data:      gin.H{"correlation_id": correlationID},
		})
	})

	span.SetAttributes(
		attribute.String("correlation_id", envelope.CorrelationID),
		attribute.Int("result.status", status),
	)

	send(StreamEvent{
		EventType: EventResult,
		Data:      envelope,
		Status:    status,
	})
	if writeErr != nil {
		return
	}

	conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "analysis complete"),
		time.Now().Add(writeTimeout),
	)
}
