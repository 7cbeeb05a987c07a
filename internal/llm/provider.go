// Package llm defines the interface for LLM providers used by the
// review pipeline and an OpenAI-compatible implementation. The Copilot
// SDK provider lives in internal/copilot; both satisfy LLMService so
// the backend is a configuration choice.
package llm

// TextGenerator provides basic text generation capability.
// This is the minimal interface that any LLM provider must implement.
type TextGenerator interface {
	GenerateText(prompt string) (string, error)
}

// LLMService is the full provider interface with lifecycle management
type LLMService interface {
	TextGenerator
	Start() error
	Stop() error
}
