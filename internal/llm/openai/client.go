package openai

import (
	"context"
	"errors"

	"github.com/Anandakumar9/Ask-Anand-sub000/config"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/llm"
	openai "github.com/sashabaranov/go-openai"
)

// Client adapts an OpenAI-compatible chat API to the llm.Provider interface.
// A custom base URL allows pointing at local servers (Ollama, llama.cpp).
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
}

func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.LLM.OpenAIAPIKey == "" && cfg.LLM.OpenAIBaseURL == "" {
		return nil, &llm.ProviderError{
			Provider: "openai",
			Code:     llm.ErrCodeAPIKey,
			Message:  "OPENAI_API_KEY is not set",
		}
	}

	clientConfig := openai.DefaultConfig(cfg.LLM.OpenAIAPIKey)
	if cfg.LLM.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.LLM.OpenAIBaseURL
	}

	return &Client{
		api:         openai.NewClientWithConfig(clientConfig),
		model:       cfg.LLM.Model,
		temperature: float32(cfg.LLM.Temperature),
	}, nil
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: c.temperature,
	})
	if err != nil {
		code := llm.ErrCodeServiceDown
		if errors.Is(err, context.DeadlineExceeded) {
			code = llm.ErrCodeTimeout
		}
		return "", &llm.ProviderError{
			Provider: "openai",
			Code:     code,
			Message:  "Chat completion failed",
			Err:      err,
		}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &llm.ProviderError{
			Provider: "openai",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Empty response generated",
		}
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) Name() string {
	return "openai"
}
