package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRequest(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectedError string
	}{
		{name: "empty_body", body: "", expectedError: MsgInvalidJSON},
		{name: "whitespace_body", body: "  \n", expectedError: MsgInvalidJSON},
		{name: "null_body", body: "null", expectedError: MsgInvalidJSON},
		{name: "empty_object", body: "{}", expectedError: MsgInvalidJSON},
		{name: "empty_array", body: "[]", expectedError: MsgInvalidJSON},
		{name: "false_body", body: "false", expectedError: MsgInvalidJSON},
		{name: "zero_body", body: "0", expectedError: MsgInvalidJSON},
		{name: "zero_float_body", body: "0.0", expectedError: MsgInvalidJSON},
		{name: "empty_string_body", body: `""`, expectedError: MsgInvalidJSON},
		{name: "true_body", body: "true", expectedError: "Failed to parse JSON"},
		{name: "string_body", body: `"query"`, expectedError: "Failed to parse JSON"},
		{name: "malformed_json", body: `{"query": `, expectedError: "Failed to parse JSON"},
		{name: "array_body", body: `["query"]`, expectedError: "Failed to parse JSON"},
		{name: "wrong_query_type", body: `{"query": 42}`, expectedError: "Failed to parse JSON"},
		{name: "api_keys_not_object", body: `{"query": "x", "api_keys": "k"}`, expectedError: "Failed to parse JSON"},
		{name: "validate_not_bool", body: `{"query": "x", "config": {"validate": "yes"}}`, expectedError: "Failed to parse JSON"},
		{name: "unknown_fields_tolerated", body: `{"query": "x", "schema_keys": ["a"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := DecodeRequest([]byte(tt.body))
			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Nil(t, body)
				assert.Contains(t, err.Error(), tt.expectedError)

				var decodeErr *DecodeError
				assert.True(t, errors.As(err, &decodeErr))
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, body)
		})
	}
}

func TestDecodeRequest_ParsingProvider(t *testing.T) {
	body, err := DecodeRequest([]byte(`{"query": "x"}`))
	require.NoError(t, err)
	assert.Nil(t, body.ParsingProvider)
	assert.Equal(t, "gemini", body.Provider())

	body, err = DecodeRequest([]byte(`{"query": "x", "parsing_provider": "openai"}`))
	require.NoError(t, err)
	assert.Equal(t, "openai", body.Provider())
}
