// Package ai wraps the generative backends. Callers treat a Generator as a
// black box that may fail; every call site has a deterministic fallback.
package ai

import "context"

type Generator interface {
	// Generate sends one prompt and returns the model's text response.
	Generate(ctx context.Context, userID int64, prompt string) (string, error)
	Close() error
}
