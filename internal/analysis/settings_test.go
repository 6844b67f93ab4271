package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizmatters/groundcite-gateway/internal/models"
)

func TestAssembleSettings_Defaults(t *testing.T) {
	body, err := DecodeRequest([]byte(`{"query": "What is quantum computing?", "api_keys": {"gemini": {"primary": "k1"}}, "search_model_name": "m1"}`))
	require.NoError(t, err)

	valid, _ := Validate(body)
	require.True(t, valid)

	settings := AssembleSettings(body)

	assert.Equal(t, "What is quantum computing?", settings.AnalysisConfig.Query)
	assert.Equal(t, "", settings.AnalysisConfig.SystemInstruction)
	assert.False(t, settings.AnalysisConfig.Validate)
	assert.False(t, settings.AnalysisConfig.Parse)
	assert.Equal(t, "{}", settings.AnalysisConfig.ParseSchema)
	assert.Equal(t, "", settings.AnalysisConfig.IncludedSites)
	assert.Equal(t, "", settings.AnalysisConfig.ExcludedSites)

	assert.Equal(t, "k1", settings.AIConfig.GeminiAIKeyPrimary)
	assert.Equal(t, "", settings.AIConfig.OpenAIKey)
	assert.Equal(t, "gemini", settings.AIConfig.ParsingProvider)
	assert.Equal(t, "m1", settings.AIConfig.SearchModelName)
	assert.Equal(t, "", settings.AIConfig.ValidateModelName)
	assert.Equal(t, "", settings.AIConfig.ParseModelName)

	assert.Equal(t, map[string]interface{}{}, settings.AIConfig.SearchGeminiParams)
	assert.Equal(t, map[string]interface{}{}, settings.AIConfig.ValidateGeminiParams)
	assert.Equal(t, map[string]interface{}{}, settings.AIConfig.ParsingGeminiParams)
	assert.Equal(t, map[string]interface{}{}, settings.AIConfig.ParsingOpenAIParams)
}

func TestAssembleSettings_FullRequest(t *testing.T) {
	body, err := DecodeRequest([]byte(`{
		"query": "latest fusion results",
		"system_instruction": "cite sources",
		"api_keys": {"gemini": {"primary": "g-key"}, "openai": "o-key"},
		"config": {
			"validate": true,
			"parse": true,
			"schema": "{\"type\": \"object\"}",
			"siteConfig": {"includeList": "nature.com", "excludeList": "reddit.com"}
		},
		"parsing_provider": "openai",
		"search_model_name": "gemini-2.5-flash",
		"validate_model_name": "gemini-2.5-pro",
		"parse_model_name": "gpt-4o",
		"search_gemini_params": {"temperature": 0.5},
		"validate_gemini_params": {"max_output_tokens": 2048},
		"parsing_gemini_params": {"top_p": 0.9},
		"parsing_openai_params": {"max_tokens": 4096}
	}`))
	require.NoError(t, err)

	settings := AssembleSettings(body)

	assert.Equal(t, "cite sources", settings.AnalysisConfig.SystemInstruction)
	assert.True(t, settings.AnalysisConfig.Validate)
	assert.True(t, settings.AnalysisConfig.Parse)
	assert.Equal(t, `{"type": "object"}`, settings.AnalysisConfig.ParseSchema)
	assert.Equal(t, "nature.com", settings.AnalysisConfig.IncludedSites)
	assert.Equal(t, "reddit.com", settings.AnalysisConfig.ExcludedSites)
	assert.Equal(t, "o-key", settings.AIConfig.OpenAIKey)
	assert.Equal(t, "openai", settings.AIConfig.ParsingProvider)
	assert.Equal(t, "gpt-4o", settings.AIConfig.ParseModelName)
	assert.Equal(t, 0.5, settings.AIConfig.SearchGeminiParams["temperature"])
	assert.Equal(t, float64(2048), settings.AIConfig.ValidateGeminiParams["max_output_tokens"])
	assert.Equal(t, 0.9, settings.AIConfig.ParsingGeminiParams["top_p"])
	assert.Equal(t, float64(4096), settings.AIConfig.ParsingOpenAIParams["max_tokens"])
}

func TestAssembleSettings_InlineSchema(t *testing.T) {
	body, err := DecodeRequest([]byte(`{"query": "x", "config": {"schema": {"type": "object", "properties": {}}}}`))
	require.NoError(t, err)

	settings := AssembleSettings(body)
	assert.Equal(t, `{"type":"object","properties":{}}`, settings.AnalysisConfig.ParseSchema)
}

func TestAssembleSettings_ParamsAreCopied(t *testing.T) {
	body := &models.RequestBody{
		Query:              "x",
		SearchGeminiParams: map[string]interface{}{"temperature": 0.7},
	}

	settings := AssembleSettings(body)
	body.SearchGeminiParams["temperature"] = 0.1

	assert.Equal(t, 0.7, settings.AIConfig.SearchGeminiParams["temperature"])
}

func TestAssembleSettings_RoundTrip(t *testing.T) {
	inputs := []string{
		`{"query": "What is quantum computing?", "api_keys": {"gemini": {"primary": "k1"}}, "search_model_name": "m1"}`,
		`{"query": "q", "system_instruction": "s", "api_keys": {"gemini": {"primary": "g"}, "openai": "o"}, "parsing_provider": "openai",
		  "config": {"validate": true, "parse": true, "schema": "{\"a\":1}", "siteConfig": {"includeList": "a.com", "excludeList": "b.com"}},
		  "search_model_name": "s1", "validate_model_name": "v1", "parse_model_name": "p1",
		  "search_gemini_params": {"temperature": 0.2}, "parsing_openai_params": {"max_tokens": 10}}`,
		`{"query": "q", "parsing_provider": "", "config": {"schema": ""}}`,
	}

	for _, input := range inputs {
		body, err := DecodeRequest([]byte(input))
		require.NoError(t, err)

		settings := AssembleSettings(body)
		again := AssembleSettings(ToRequestBody(settings))

		assert.Equal(t, settings, again)
		assert.Equal(t, settings, AssembleSettings(body))
	}
}
