package gemini

import (
	"github.com/Anandakumar9/Ask-Anand-sub000/config"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/llm"
)

// Register Gemini provider on package import
func init() {
	llm.RegisterProvider("gemini", func(cfg *config.Config) (llm.Provider, error) {
		return NewClient(cfg)
	})
}
