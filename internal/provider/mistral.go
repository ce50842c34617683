package provider

// mistralAdapter targets the Mistral chat-completions API, which shares the
// OpenAI envelope but lives on its own host.
type mistralAdapter struct {
	cfg Config
}

func (a *mistralAdapter) Name() string {
	return ProviderMistral
}

func (a *mistralAdapter) Endpoint() string {
	return "https://api.mistral.ai/v1/chat/completions"
}

func (a *mistralAdapter) AuthHeader() (string, string) {
	return "Authorization", "Bearer " + a.cfg.APIKey
}

func (a *mistralAdapter) BuildRequestBody(prompt string) ([]byte, error) {
	return buildChatBody(a.cfg, prompt)
}

func (a *mistralAdapter) UnwrapContent(raw []byte) (string, error) {
	return unwrapChatContent(a.Name(), raw)
}
