package provider

// chatGPTAdapter targets the OpenAI chat-completions API.
type chatGPTAdapter struct {
	cfg Config
}

func (a *chatGPTAdapter) Name() string {
	return ProviderChatGPT
}

func (a *chatGPTAdapter) Endpoint() string {
	return "https://api.openai.com/v1/chat/completions"
}

func (a *chatGPTAdapter) AuthHeader() (string, string) {
	return "Authorization", "Bearer " + a.cfg.APIKey
}

func (a *chatGPTAdapter) BuildRequestBody(prompt string) ([]byte, error) {
	return buildChatBody(a.cfg, prompt)
}

func (a *chatGPTAdapter) UnwrapContent(raw []byte) (string, error) {
	return unwrapChatContent(a.Name(), raw)
}
