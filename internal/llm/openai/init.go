package openai

import (
	"github.com/Anandakumar9/Ask-Anand-sub000/config"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/llm"
)

// Register OpenAI-compatible provider on package import
func init() {
	llm.RegisterProvider("openai", func(cfg *config.Config) (llm.Provider, error) {
		return NewClient(cfg)
	})
}
