package llm

import "context"

// Client issues a single completion request against a hosted generation
// endpoint. One attempt, no retries; every failure maps onto the error
// taxonomy in errors.go.
type Client interface {
	Generate(ctx context.Context, prompt, credential string) (string, error)
}
