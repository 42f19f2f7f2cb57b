package generator

import (
	"context"
	"errors"
)

// Generator turns a topic into a short caption through a hosted language model
type Generator interface {
	Generate(ctx context.Context, topic string) (string, error)
	Provider() string
}

// Failure kinds. Callers usually treat them all as "use the fallback caption",
// they are kept apart so logs say what actually went wrong.
var (
	ErrMissingAPIKey = errors.New("api key is not configured")
	ErrRequest       = errors.New("request failed")
	ErrStatus        = errors.New("unexpected response status")
	ErrMalformed     = errors.New("malformed response")
	ErrNoCandidates  = errors.New("response has no candidates")
	ErrEmptyText     = errors.New("candidate text is empty")
)
