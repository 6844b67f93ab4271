package models

import (
	"bytes"
	"encoding/json"
)

var emptyObject = json.RawMessage(`{}`)

// ResponseEnvelope is the uniform wrapper returned by the analyze endpoints.
// Data is set if and only if Success is true; Error otherwise.
type ResponseEnvelope struct {
	Success       bool            `json:"success"`
	Data          json.RawMessage `json:"data,omitempty"`
	Error         string          `json:"error,omitempty"`
	ExecutionTime float64         `json:"execution_time"`
	CorrelationID string          `json:"correlation_id"`
}

// NewSuccessEnvelope wraps an engine result. An absent or null result is
// rewritten to {} so a successful envelope always carries data; every other
// JSON value, falsy ones included, is passed through unchanged.
func NewSuccessEnvelope(data json.RawMessage, executionTime float64, correlationID string) *ResponseEnvelope {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		trimmed = emptyObject
	}
	return &ResponseEnvelope{
		Success:       true,
		Data:          trimmed,
		ExecutionTime: executionTime,
		CorrelationID: correlationID,
	}
}

// NewErrorEnvelope wraps a failure message
func NewErrorEnvelope(message string, executionTime float64, correlationID string) *ResponseEnvelope {
	if message == "" {
		message = "unknown error"
	}
	return &ResponseEnvelope{
		Success:       false,
		Error:         message,
		ExecutionTime: executionTime,
		CorrelationID: correlationID,
	}
}
