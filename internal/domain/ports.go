package domain

import (
	"context"
	"errors"
	"time"
)

// TextGenerator sends a prompt to the hosted model and returns the raw text
// response. One attempt per call; retries are the caller's decision.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrCacheMiss is returned by Cache implementations when a key is absent.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache abstracts the key-value cache used for insight reads.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// TransactionManager runs fn inside a database transaction. The transaction
// is carried on the context so repositories can join it transparently.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
