package models

// DefaultParseSchema is used when a request carries no parse schema
const DefaultParseSchema = "{}"

// Settings is the configuration handed to the GroundCite engine for one analysis
type Settings struct {
	AnalysisConfig AnalysisConfig `json:"analysis_config"`
	AIConfig       AIConfig       `json:"ai_config"`
}

// AnalysisConfig controls what the engine does
type AnalysisConfig struct {
	Query             string `json:"query"`
	SystemInstruction string `json:"system_instruction"`
	Validate          bool   `json:"validate"`
	Parse             bool   `json:"parse"`
	ParseSchema       string `json:"parse_schema"`
	IncludedSites     string `json:"included_sites"`
	ExcludedSites     string `json:"excluded_sites"`
}

// AIConfig selects providers, credentials and models
type AIConfig struct {
	GeminiAIKeyPrimary string `json:"gemini_ai_key_primary"`
	OpenAIKey          string `json:"open_ai_key"`
	ParsingProvider    string `json:"parsing_provider"`

	SearchModelName   string `json:"search_model_name"`
	ValidateModelName string `json:"validate_model_name"`
	ParseModelName    string `json:"parse_model_name"`

	SearchGeminiParams   map[string]interface{} `json:"search_gemini_params"`
	ValidateGeminiParams map[string]interface{} `json:"validate_gemini_params"`
	ParsingGeminiParams  map[string]interface{} `json:"parsing_gemini_params"`
	ParsingOpenAIParams  map[string]interface{} `json:"parsing_openai_params"`
}

// NewSettings returns Settings populated with defaults only
func NewSettings() *Settings {
	return &Settings{
		AnalysisConfig: AnalysisConfig{
			ParseSchema: DefaultParseSchema,
		},
		AIConfig: AIConfig{
			ParsingProvider:      DefaultParsingProvider,
			SearchGeminiParams:   map[string]interface{}{},
			ValidateGeminiParams: map[string]interface{}{},
			ParsingGeminiParams:  map[string]interface{}{},
			ParsingOpenAIParams:  map[string]interface{}{},
		},
	}
}
