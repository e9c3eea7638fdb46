package llm

import "context"

// Provider sends one prompt to a hosted model and returns its raw answer.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}
