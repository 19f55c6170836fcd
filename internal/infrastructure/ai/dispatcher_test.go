package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/shaid/internal/domain"
	"github.com/doeshing/shaid/internal/ports"
)

type stubProvider struct {
	reply string
	err   error
	calls int
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Send(context.Context, domain.Prompt) (string, error) {
	s.calls++
	return s.reply, s.err
}

type stubFactory struct {
	provider ports.Provider
	err      error
}

func (s stubFactory) ForConfig(domain.Config) (ports.Provider, error) {
	return s.provider, s.err
}

var stubConfig = domain.Config{Type: domain.ProviderOpenAI, Model: "gpt-4o", APIKey: "sk-test"}

func TestDispatcherExtractsCommand(t *testing.T) {
	provider := &stubProvider{reply: "Sure! Here's the command:\nfind . -type f -mtime -7"}
	dispatcher := NewDispatcher(stubFactory{provider: provider}, nil)

	command, err := dispatcher.Dispatch(context.Background(), stubConfig, testPrompt())
	require.NoError(t, err)

	assert.Equal(t, "find . -type f -mtime -7", command)
	assert.Equal(t, 1, provider.calls)
}

func TestDispatcherEmptyReply(t *testing.T) {
	dispatcher := NewDispatcher(stubFactory{provider: &stubProvider{reply: ""}}, nil)

	_, err := dispatcher.Dispatch(context.Background(), stubConfig, testPrompt())

	assert.ErrorIs(t, err, domain.ErrNoCommandExtracted)
	assert.Equal(t, domain.CategoryNoCommand, domain.Classify(err))
}

func TestDispatcherClassifiesProviderErrors(t *testing.T) {
	provider := &stubProvider{err: context.DeadlineExceeded}
	dispatcher := NewDispatcher(stubFactory{provider: provider}, nil)

	_, err := dispatcher.Dispatch(context.Background(), stubConfig, testPrompt())

	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.Equal(t, 1, provider.calls, "no retry or fallback expected")
}

func TestDispatcherFactoryError(t *testing.T) {
	factoryErr := &domain.DispatchError{Kind: domain.ErrAuth, Provider: domain.ProviderClaude}
	dispatcher := NewDispatcher(stubFactory{err: factoryErr}, nil)

	_, err := dispatcher.Dispatch(context.Background(), stubConfig, testPrompt())

	assert.True(t, errors.Is(err, domain.ErrAuth))
}
