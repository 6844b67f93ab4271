package analysis

import (
	"bytes"
	"encoding/json"
	"maps"

	"github.com/bizmatters/groundcite-gateway/internal/models"
)

// AssembleSettings maps a validated request into engine Settings.
// Absent values fall back to defaults; nothing is validated here.
func AssembleSettings(body *models.RequestBody) *models.Settings {
	settings := models.NewSettings()

	settings.AnalysisConfig.Query = body.Query
	settings.AnalysisConfig.SystemInstruction = body.SystemInstruction
	settings.AnalysisConfig.Validate = body.Config.Validate
	settings.AnalysisConfig.Parse = body.Config.Parse
	settings.AnalysisConfig.ParseSchema = schemaText(body.Config.Schema)
	settings.AnalysisConfig.IncludedSites = body.Config.SiteConfig.IncludeList
	settings.AnalysisConfig.ExcludedSites = body.Config.SiteConfig.ExcludeList

	settings.AIConfig.GeminiAIKeyPrimary = body.APIKeys.Gemini.Primary
	settings.AIConfig.OpenAIKey = body.APIKeys.OpenAI
	settings.AIConfig.ParsingProvider = body.Provider()

	settings.AIConfig.SearchModelName = body.SearchModelName
	settings.AIConfig.ValidateModelName = body.ValidateModelName
	settings.AIConfig.ParseModelName = body.ParseModelName

	settings.AIConfig.SearchGeminiParams = params(body.SearchGeminiParams)
	settings.AIConfig.ValidateGeminiParams = params(body.ValidateGeminiParams)
	settings.AIConfig.ParsingGeminiParams = params(body.ParsingGeminiParams)
	settings.AIConfig.ParsingOpenAIParams = params(body.ParsingOpenAIParams)

	return settings
}

// ToRequestBody is the inverse of AssembleSettings
func ToRequestBody(settings *models.Settings) *models.RequestBody {
	provider := settings.AIConfig.ParsingProvider
	schema, _ := json.Marshal(settings.AnalysisConfig.ParseSchema)

	return &models.RequestBody{
		Query:             settings.AnalysisConfig.Query,
		SystemInstruction: settings.AnalysisConfig.SystemInstruction,
		APIKeys: models.APIKeys{
			Gemini: models.GeminiKeys{Primary: settings.AIConfig.GeminiAIKeyPrimary},
			OpenAI: settings.AIConfig.OpenAIKey,
		},
		Config: models.AnalysisOptions{
			Validate: settings.AnalysisConfig.Validate,
			Parse:    settings.AnalysisConfig.Parse,
			Schema:   schema,
			SiteConfig: models.SiteConfig{
				IncludeList: settings.AnalysisConfig.IncludedSites,
				ExcludeList: settings.AnalysisConfig.ExcludedSites,
			},
		},
		ParsingProvider:      &provider,
		SearchModelName:      settings.AIConfig.SearchModelName,
		ValidateModelName:    settings.AIConfig.ValidateModelName,
		ParseModelName:       settings.AIConfig.ParseModelName,
		SearchGeminiParams:   settings.AIConfig.SearchGeminiParams,
		ValidateGeminiParams: settings.AIConfig.ValidateGeminiParams,
		ParsingGeminiParams:  settings.AIConfig.ParsingGeminiParams,
		ParsingOpenAIParams:  settings.AIConfig.ParsingOpenAIParams,
	}
}

// schemaText accepts the schema either as a JSON string holding the schema
// text or as an inline JSON value.
func schemaText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return models.DefaultParseSchema
	}

	var text string
	if err := json.Unmarshal(trimmed, &text); err == nil {
		return text
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err == nil {
		return compact.String()
	}
	return string(trimmed)
}

func params(in map[string]interface{}) map[string]interface{} {
	if in == nil {
		return map[string]interface{}{}
	}
	return maps.Clone(in)
}
