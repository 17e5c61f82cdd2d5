package mock

import (
	"context"

	"github.com/fwojciec/distill"
)

var _ distill.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of distill.Cleaner.
type Cleaner struct {
	CleanFn func(ctx context.Context, markdown string) (string, error)
}

func (c *Cleaner) Clean(ctx context.Context, markdown string) (string, error) {
	return c.CleanFn(ctx, markdown)
}
