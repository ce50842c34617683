package provider

import (
	"encoding/json"
	"fmt"
)

// geminiAdapter targets the Google Generative Language API. The model name
// is part of the URL and the credential travels in a custom header rather
// than a bearer token.
type geminiAdapter struct {
	cfg Config
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig geminiGeneration `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGeneration struct {
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"topP"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMIMEType string  `json:"responseMimeType"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (a *geminiAdapter) Name() string {
	return ProviderGemini
}

func (a *geminiAdapter) Endpoint() string {
	return fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent", a.cfg.Model)
}

func (a *geminiAdapter) AuthHeader() (string, string) {
	return "x-goog-api-key", a.cfg.APIKey
}

func (a *geminiAdapter) BuildRequestBody(prompt string) ([]byte, error) {
	req := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGeneration{
			Temperature:      a.cfg.Generation.Temperature,
			TopP:             a.cfg.Generation.TopP,
			MaxOutputTokens:  a.cfg.Generation.MaxTokens,
			ResponseMIMEType: "application/json",
		},
	}
	return json.Marshal(req)
}

func (a *geminiAdapter) UnwrapContent(raw []byte) (string, error) {
	var envelope geminiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", &MalformedEnvelopeError{Provider: a.Name(), Reason: err.Error()}
	}
	if len(envelope.Candidates) == 0 || len(envelope.Candidates[0].Content.Parts) == 0 {
		return "", &MalformedEnvelopeError{Provider: a.Name(), Reason: "no candidates/content/parts in response"}
	}
	text := envelope.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", &MalformedEnvelopeError{Provider: a.Name(), Reason: "empty text part"}
	}
	return text, nil
}
