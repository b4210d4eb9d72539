package llm

import (
	"context"
	"errors"
)

// ErrEmptyReply is returned when a provider answers with no usable text.
var ErrEmptyReply = errors.New("llm: empty reply from model")

// Client is a text-completion provider. Both calls send a single user turn;
// GenerateJSON additionally hints, where the provider supports it, that the
// reply should be a JSON object. Neither call retries on transport failure.
type Client interface {
	Name() string
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
	GenerateJSON(ctx context.Context, prompt string, temperature float32) (string, error)
	Close() error
}

// PermanentError marks a failure that will not resolve by retrying, such as a
// prompt exceeding the provider's context window.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}
