package gemini

import (
	"context"
	"errors"

	"github.com/Anandakumar9/Ask-Anand-sub000/config"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/llm"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client adapts a Gemini generative model to the llm.Provider interface.
type Client struct {
	model *genai.GenerativeModel
}

func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.LLM.GeminiAPIKey == "" {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "GEMINI_API_KEY is not set",
		}
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.LLM.GeminiAPIKey))
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "Failed to create Gemini client",
			Err:      err,
		}
	}

	model := client.GenerativeModel(cfg.LLM.Model)
	model.SetTemperature(float32(cfg.LLM.Temperature))
	model.ResponseMIMEType = "application/json"

	return &Client{model: model}, nil
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		code := llm.ErrCodeServiceDown
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			code = llm.ErrCodeTimeout
		}
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     code,
			Message:  "Failed to generate content",
			Err:      err,
		}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "No response generated",
		}
	}

	text := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text += string(txt)
		}
	}
	if text == "" {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Empty response generated",
		}
	}
	return text, nil
}

func (c *Client) Name() string {
	return "gemini"
}
