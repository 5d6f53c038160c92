package llm

// LLM is a minimal chat-completion client. Implementations send one prompt
// and return the model's text response.
type LLM interface {
	Chat(prompt string) (string, error)
	Name() string
}
