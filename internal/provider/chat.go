package provider

import "encoding/json"

// systemDirective asks chat-completion vendors for strict JSON output, on
// top of the response_format hint.
const systemDirective = "You are an NPC in a game. Always respond with valid JSON only."

// chatRequest is the OpenAI-style chat-completions envelope shared by the
// ChatGPT and Mistral adapters.
type chatRequest struct {
	Model          string             `json:"model"`
	Messages       []chatMessage      `json:"messages"`
	Temperature    float64            `json:"temperature"`
	TopP           float64            `json:"top_p"`
	MaxTokens      int                `json:"max_tokens"`
	ResponseFormat chatResponseFormat `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func buildChatBody(cfg Config, prompt string) ([]byte, error) {
	req := chatRequest{
		Model: cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemDirective},
			{Role: "user", Content: prompt},
		},
		Temperature:    cfg.Generation.Temperature,
		TopP:           cfg.Generation.TopP,
		MaxTokens:      cfg.Generation.MaxTokens,
		ResponseFormat: chatResponseFormat{Type: "json_object"},
	}
	return json.Marshal(req)
}

func unwrapChatContent(provider string, raw []byte) (string, error) {
	var envelope chatResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", &MalformedEnvelopeError{Provider: provider, Reason: err.Error()}
	}
	if len(envelope.Choices) == 0 {
		return "", &MalformedEnvelopeError{Provider: provider, Reason: "no choices in response"}
	}
	content := envelope.Choices[0].Message.Content
	if content == "" {
		return "", &MalformedEnvelopeError{Provider: provider, Reason: "empty message content"}
	}
	return content, nil
}
