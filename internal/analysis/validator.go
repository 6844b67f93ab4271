package analysis

import (
	"strings"

	"github.com/bizmatters/groundcite-gateway/internal/models"
)

// Validation messages returned to callers
const (
	MsgEmptyQuery        = "Query cannot be empty"
	MsgMissingGeminiKey  = "Gemini API key is required"
	MsgMissingOpenAIKey  = "OpenAI API key is required when using OpenAI as parsing provider"
	msgMissingModelsHead = "Missing required model configuration(s): "
)

// Validate checks a decoded request for completeness and cross-field
// consistency. Rules run in order and the first failing rule wins; the model
// rule reports every missing model name at once.
func Validate(body *models.RequestBody) (bool, string) {
	if body == nil || strings.TrimSpace(body.Query) == "" {
		return false, MsgEmptyQuery
	}

	if body.APIKeys.Gemini.Primary == "" {
		return false, MsgMissingGeminiKey
	}

	if body.Provider() == models.ParsingProviderOpenAI && body.APIKeys.OpenAI == "" {
		return false, MsgMissingOpenAIKey
	}

	if missing := missingModels(body); len(missing) > 0 {
		return false, msgMissingModelsHead + strings.Join(missing, ", ")
	}

	return true, ""
}

func missingModels(body *models.RequestBody) []string {
	var missing []string
	if body.SearchModelName == "" {
		missing = append(missing, "search_model_name")
	}
	if body.Config.Validate && body.ValidateModelName == "" {
		missing = append(missing, "validate_model_name")
	}
	if body.Config.Parse && body.ParseModelName == "" {
		missing = append(missing, "parse_model_name")
	}
	return missing
}
