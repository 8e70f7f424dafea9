// Package llm generates records through a hosted completion model. One
// request per generation, no retries.
package llm

import (
	"context"
	"fmt"

	"github.com/slidesmith/slidesmith/pkg/content"
	"github.com/slidesmith/slidesmith/pkg/provider"
)

var _ content.Generator = (*Generator)(nil)

const (
	maxTokens   = 900
	temperature = float32(0.2)
)

type Generator struct {
	completer provider.Completer
}

func New(completer provider.Completer) *Generator {
	return &Generator{
		completer: completer,
	}
}

func (g *Generator) Generate(ctx context.Context, customer string) (*content.Record, error) {
	messages := []provider.Message{
		provider.SystemMessage(content.SystemInstructions),
		provider.UserMessage(content.UserPrompt(customer)),
	}

	tokens := maxTokens
	temp := temperature

	options := &provider.CompleteOptions{
		MaxTokens:   &tokens,
		Temperature: &temp,
	}

	completion, err := g.completer.Complete(ctx, messages, options)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", content.ErrTransport, err)
	}

	var body string

	if completion.Message != nil {
		body = completion.Message.Text()
	}

	return content.Parse(body)
}
