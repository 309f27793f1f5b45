package llm

import (
	"context"
)

// Client is the one capability the arena depends on: send a prompt, get
// text back. Deadlines come from the caller's context; adapters never set
// their own.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ClientFunc adapts a function to Client. Used by tests and inline stubs.
type ClientFunc func(ctx context.Context, prompt string) (string, error)

func (f ClientFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
