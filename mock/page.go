package mock

import (
	"context"

	"github.com/fwojciec/distill"
)

// Compile-time interface verification.
var (
	_ distill.Page     = (*Page)(nil)
	_ distill.PagePool = (*PagePool)(nil)
)

// Page is a mock implementation of distill.Page.
type Page struct {
	NavigateFn func(ctx context.Context, url string) error
	HTMLFn     func(ctx context.Context) (string, error)
	CloseFn    func() error
}

func (p *Page) Navigate(ctx context.Context, url string) error {
	return p.NavigateFn(ctx, url)
}

func (p *Page) HTML(ctx context.Context) (string, error) {
	return p.HTMLFn(ctx)
}

func (p *Page) Close() error {
	return p.CloseFn()
}

// PagePool is a mock implementation of distill.PagePool.
type PagePool struct {
	ExecuteFn func(ctx context.Context, url string, task distill.TaskFunc) (string, error)
	CloseFn   func() error
}

func (p *PagePool) Execute(ctx context.Context, url string, task distill.TaskFunc) (string, error) {
	return p.ExecuteFn(ctx, url, task)
}

func (p *PagePool) Close() error {
	return p.CloseFn()
}
