package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseEnvelope_Exclusivity(t *testing.T) {
	tests := []struct {
		name     string
		envelope *ResponseEnvelope
		success  bool
	}{
		{
			name:     "success_with_object",
			envelope: NewSuccessEnvelope(json.RawMessage(`{"answer":"42"}`), 0.5, "cid-1"),
			success:  true,
		},
		{
			name:     "success_with_null_data",
			envelope: NewSuccessEnvelope(json.RawMessage(`null`), 0.1, "cid-2"),
			success:  true,
		},
		{
			name:     "success_with_no_data",
			envelope: NewSuccessEnvelope(nil, 0, "cid-3"),
			success:  true,
		},
		{
			name:     "error",
			envelope: NewErrorEnvelope("Query cannot be empty", 0.01, "cid-4"),
			success:  false,
		},
		{
			name:     "error_without_message",
			envelope: NewErrorEnvelope("", 0.01, "cid-5"),
			success:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.envelope)
			require.NoError(t, err)

			var decoded map[string]interface{}
			require.NoError(t, json.Unmarshal(raw, &decoded))

			_, hasData := decoded["data"]
			_, hasError := decoded["error"]

			assert.Equal(t, tt.success, decoded["success"])
			assert.Equal(t, tt.success, hasData)
			assert.Equal(t, !tt.success, hasError)
			assert.Contains(t, decoded, "execution_time")
			assert.Contains(t, decoded, "correlation_id")
		})
	}
}

func TestNewSuccessEnvelope_Data(t *testing.T) {
	tests := []struct {
		name     string
		data     json.RawMessage
		expected string
	}{
		{name: "null_becomes_empty_object", data: json.RawMessage(`null`), expected: `{}`},
		{name: "padded_null_becomes_empty_object", data: json.RawMessage(" null\n"), expected: `{}`},
		{name: "absent_becomes_empty_object", data: nil, expected: `{}`},
		{name: "object_unchanged", data: json.RawMessage(`{"answer":"42"}`), expected: `{"answer":"42"}`},
		{name: "empty_array_unchanged", data: json.RawMessage(`[]`), expected: `[]`},
		{name: "false_unchanged", data: json.RawMessage(`false`), expected: `false`},
		{name: "zero_unchanged", data: json.RawMessage(`0`), expected: `0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope := NewSuccessEnvelope(tt.data, 0, "cid")
			assert.True(t, envelope.Success)
			assert.Equal(t, tt.expected, string(envelope.Data))
		})
	}
}

func TestNewSettings_Defaults(t *testing.T) {
	settings := NewSettings()

	assert.Equal(t, DefaultParseSchema, settings.AnalysisConfig.ParseSchema)
	assert.Equal(t, DefaultParsingProvider, settings.AIConfig.ParsingProvider)
	assert.False(t, settings.AnalysisConfig.Validate)
	assert.False(t, settings.AnalysisConfig.Parse)
	assert.NotNil(t, settings.AIConfig.SearchGeminiParams)
	assert.NotNil(t, settings.AIConfig.ParsingOpenAIParams)
}

func TestRequestBody_Provider(t *testing.T) {
	body := &RequestBody{}
	assert.Equal(t, "gemini", body.Provider())

	openai := "openai"
	body.ParsingProvider = &openai
	assert.Equal(t, "openai", body.Provider())
}
