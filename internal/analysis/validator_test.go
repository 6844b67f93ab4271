package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectedValid bool
		expectedMsg   string
	}{
		{
			name:          "minimal_valid_request",
			body:          `{"query": "What is quantum computing?", "api_keys": {"gemini": {"primary": "k1"}}, "search_model_name": "m1"}`,
			expectedValid: true,
		},
		{
			name:        "missing_query",
			body:        `{"api_keys": {"gemini": {"primary": "k1"}}, "search_model_name": "m1"}`,
			expectedMsg: "Query cannot be empty",
		},
		{
			name:        "empty_query",
			body:        `{"query": "", "api_keys": {"gemini": {"primary": "k1"}}}`,
			expectedMsg: "Query cannot be empty",
		},
		{
			name:        "whitespace_query",
			body:        `{"query": " \t\n ", "api_keys": {"gemini": {"primary": "k1"}}}`,
			expectedMsg: "Query cannot be empty",
		},
		{
			name:        "query_checked_before_keys",
			body:        `{"query": "   ", "search_model_name": "m1"}`,
			expectedMsg: "Query cannot be empty",
		},
		{
			name:        "missing_gemini_key",
			body:        `{"query": "x", "search_model_name": "m1"}`,
			expectedMsg: "Gemini API key is required",
		},
		{
			name:        "empty_gemini_key",
			body:        `{"query": "x", "api_keys": {"gemini": {"primary": ""}}, "search_model_name": "m1"}`,
			expectedMsg: "Gemini API key is required",
		},
		{
			name:        "openai_provider_without_key",
			body:        `{"query": "x", "api_keys": {"gemini": {"primary": "k"}}, "parsing_provider": "openai", "search_model_name": "m"}`,
			expectedMsg: "OpenAI API key is required when using OpenAI as parsing provider",
		},
		{
			name:          "openai_provider_with_key",
			body:          `{"query": "x", "api_keys": {"gemini": {"primary": "k"}, "openai": "sk"}, "parsing_provider": "openai", "search_model_name": "m"}`,
			expectedValid: true,
		},
		{
			name:          "gemini_provider_ignores_openai_key",
			body:          `{"query": "x", "api_keys": {"gemini": {"primary": "k"}}, "parsing_provider": "gemini", "search_model_name": "m"}`,
			expectedValid: true,
		},
		{
			name:        "missing_search_model",
			body:        `{"query": "x", "api_keys": {"gemini": {"primary": "k"}}}`,
			expectedMsg: "Missing required model configuration(s): search_model_name",
		},
		{
			name:        "validate_without_model",
			body:        `{"query": "x", "api_keys": {"gemini": {"primary": "k"}}, "config": {"validate": true}, "search_model_name": "m"}`,
			expectedMsg: "Missing required model configuration(s): validate_model_name",
		},
		{
			name:        "parse_without_model",
			body:        `{"query": "x", "api_keys": {"gemini": {"primary": "k"}}, "config": {"parse": true}, "search_model_name": "m"}`,
			expectedMsg: "Missing required model configuration(s): parse_model_name",
		},
		{
			name:        "all_models_missing",
			body:        `{"query": "x", "api_keys": {"gemini": {"primary": "k"}}, "config": {"validate": true, "parse": true}}`,
			expectedMsg: "Missing required model configuration(s): search_model_name, validate_model_name, parse_model_name",
		},
		{
			name:        "validate_and_parse_models_missing",
			body:        `{"query": "x", "api_keys": {"gemini": {"primary": "k"}}, "config": {"validate": true, "parse": true}, "search_model_name": "m"}`,
			expectedMsg: "Missing required model configuration(s): validate_model_name, parse_model_name",
		},
		{
			name:          "flags_off_do_not_require_models",
			body:          `{"query": "x", "api_keys": {"gemini": {"primary": "k"}}, "config": {"validate": false, "parse": false}, "search_model_name": "m"}`,
			expectedValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := DecodeRequest([]byte(tt.body))
			require.NoError(t, err)

			valid, msg := Validate(body)
			assert.Equal(t, tt.expectedValid, valid)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}

func TestValidate_NilBody(t *testing.T) {
	valid, msg := Validate(nil)
	assert.False(t, valid)
	assert.Equal(t, MsgEmptyQuery, msg)
}

func TestValidate_Deterministic(t *testing.T) {
	body, err := DecodeRequest([]byte(`{"query": "x", "api_keys": {"gemini": {"primary": "k"}}, "config": {"parse": true}}`))
	require.NoError(t, err)

	firstValid, firstMsg := Validate(body)
	for i := 0; i < 5; i++ {
		valid, msg := Validate(body)
		assert.Equal(t, firstValid, valid)
		assert.Equal(t, firstMsg, msg)
	}
}
