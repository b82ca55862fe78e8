package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anandakumar9/Ask-Anand-sub000/config"
)

type testProvider struct{}

func (testProvider) Complete(context.Context, string) (string, error) { return "ok", nil }
func (testProvider) Name() string                                     { return "test" }

func TestProviderErrorError(t *testing.T) {
	err := &ProviderError{Provider: "gemini", Message: "failed"}
	assert.Equal(t, "gemini error: failed", err.Error())

	wrapped := &ProviderError{Provider: "gemini", Message: "failed", Err: errors.New("detail")}
	assert.Equal(t, "gemini error: failed (detail)", wrapped.Error())
}

func TestProviderErrorUnwrap(t *testing.T) {
	cause := errors.New("detail")
	wrapped := &ProviderError{Provider: "gemini", Message: "failed", Err: cause}
	assert.ErrorIs(t, wrapped, cause)
}

func TestRegisterAndNewProvider(t *testing.T) {
	RegisterProvider("test_provider", func(*config.Config) (Provider, error) {
		return testProvider{}, nil
	})
	defer delete(providers, "test_provider")

	provider, err := NewProvider("test_provider", &config.Config{})
	require.NoError(t, err)
	assert.Equal(t, "test", provider.Name())

	_, err = NewProvider("missing", &config.Config{})
	require.Error(t, err, "unsupported provider name")
}
