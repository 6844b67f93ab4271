package models

import "encoding/json"

// DefaultParsingProvider is used when a request does not name one
const DefaultParsingProvider = "gemini"

// ParsingProviderOpenAI selects OpenAI for the structured parsing step
const ParsingProviderOpenAI = "openai"

// RequestBody is the decoded payload of an analysis request
type RequestBody struct {
	Query             string          `json:"query"`
	SystemInstruction string          `json:"system_instruction,omitempty"`
	APIKeys           APIKeys         `json:"api_keys"`
	Config            AnalysisOptions `json:"config"`
	ParsingProvider   *string         `json:"parsing_provider,omitempty"`

	SearchModelName   string `json:"search_model_name,omitempty"`
	ValidateModelName string `json:"validate_model_name,omitempty"`
	ParseModelName    string `json:"parse_model_name,omitempty"`

	SearchGeminiParams   map[string]interface{} `json:"search_gemini_params,omitempty"`
	ValidateGeminiParams map[string]interface{} `json:"validate_gemini_params,omitempty"`
	ParsingGeminiParams  map[string]interface{} `json:"parsing_gemini_params,omitempty"`
	ParsingOpenAIParams  map[string]interface{} `json:"parsing_openai_params,omitempty"`
}

// APIKeys holds the provider credentials supplied by the caller
type APIKeys struct {
	Gemini GeminiKeys `json:"gemini"`
	OpenAI string     `json:"openai,omitempty"`
}

// GeminiKeys holds Gemini credentials
type GeminiKeys struct {
	Primary string `json:"primary,omitempty"`
}

// AnalysisOptions toggles the optional pipeline stages
type AnalysisOptions struct {
	Validate   bool            `json:"validate,omitempty"`
	Parse      bool            `json:"parse,omitempty"`
	Schema     json.RawMessage `json:"schema,omitempty"`
	SiteConfig SiteConfig      `json:"siteConfig"`
}

// SiteConfig restricts which sites the search stage may use
type SiteConfig struct {
	IncludeList string `json:"includeList,omitempty"`
	ExcludeList string `json:"excludeList,omitempty"`
}

// Provider returns the parsing provider, falling back to the default
func (b *RequestBody) Provider() string {
	if b.ParsingProvider == nil {
		return DefaultParsingProvider
	}
	return *b.ParsingProvider
}
