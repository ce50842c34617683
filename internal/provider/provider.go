// Package provider implements the per-vendor AI HTTP adapters and the
// client that performs the single outbound call per exchange.
package provider

// Provider identifiers accepted in configuration.
const (
	ProviderGemini  = "gemini"
	ProviderChatGPT = "chatgpt"
	ProviderMistral = "mistral"
)

// GenerationSettings are the sampling settings shared by every vendor.
type GenerationSettings struct {
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// Config selects and parameterizes one vendor adapter.
type Config struct {
	Provider   string
	APIKey     string
	Model      string
	Generation GenerationSettings
}

// Adapter is the capability set each vendor variant implements. Endpoint,
// AuthHeader and BuildRequestBody shape the outbound request; UnwrapContent
// digs the single text payload out of the vendor's response envelope.
type Adapter interface {
	Name() string
	Endpoint() string
	AuthHeader() (name, value string)
	BuildRequestBody(prompt string) ([]byte, error)
	UnwrapContent(raw []byte) (string, error)
}

// New returns the adapter for the configured provider identity. An unknown
// identity is a configuration error and should be treated as fatal at
// startup, not per request.
func New(cfg Config) (Adapter, error) {
	switch cfg.Provider {
	case ProviderGemini:
		return &geminiAdapter{cfg: cfg}, nil
	case ProviderChatGPT:
		return &chatGPTAdapter{cfg: cfg}, nil
	case ProviderMistral:
		return &mistralAdapter{cfg: cfg}, nil
	default:
		return nil, &UnsupportedProviderError{Provider: cfg.Provider}
	}
}
