package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizmatters/groundcite-gateway/internal/store"
)

func TestSeedConfiguration(t *testing.T) {
	ctx := context.Background()
	configStore := store.NewMemoryStore()

	raw := []byte(`{
		"query": "Latest EU AI regulation",
		"api_keys": {"gemini": {"primary": "gemini-key-9876"}, "openai": "sk-openai-5555"},
		"parsing_provider": "openai",
		"config": {"parse": true, "schema": {"type": "object"}},
		"search_model_name": "gemini-2.5-flash",
		"parse_model_name": "gpt-4o-mini"
	}`)

	saved, err := seedConfiguration(ctx, configStore, "eu-ai", raw)
	require.NoError(t, err)

	assert.Equal(t, "eu-ai", saved.Name)
	assert.Equal(t, "****9876", saved.Settings.AIConfig.GeminiAIKeyPrimary)
	assert.Equal(t, "****5555", saved.Settings.AIConfig.OpenAIKey)
	assert.Equal(t, "openai", saved.Settings.AIConfig.ParsingProvider)
	assert.JSONEq(t, `{"type":"object"}`, saved.Settings.AnalysisConfig.ParseSchema)

	got, err := configStore.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestSeedConfiguration_Rejected(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		expectedErr string
	}{
		{
			name:        "empty_file",
			raw:         ``,
			expectedErr: "Invalid JSON in request body",
		},
		{
			name:        "fails_validation",
			raw:         `{"query": "x", "api_keys": {"gemini": {"primary": "k"}}}`,
			expectedErr: "invalid analysis request: Missing required model configuration(s): search_model_name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configStore := store.NewMemoryStore()

			_, err := seedConfiguration(context.Background(), configStore, "rejected", []byte(tt.raw))

			require.Error(t, err)
			assert.Equal(t, tt.expectedErr, err.Error())

			list, err := configStore.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}
