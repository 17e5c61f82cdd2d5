package rod

import (
	"context"
	"fmt"
	"sync"

	"github.com/fwojciec/distill"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Page implements distill.Page at compile time.
var _ distill.Page = (*Page)(nil)

// Page is a single browser tab.
type Page struct {
	page    *rod.Page
	release func()
	once    sync.Once
	err     error
}

func newPage(p *rod.Page, release func()) *Page {
	return &Page{page: p, release: release}
}

// Navigate loads url and waits for DOMContentLoaded.
func (p *Page) Navigate(ctx context.Context, url string) error {
	page := p.page.Context(ctx)

	wait := page.WaitNavigation(proto.PageLifecycleEventNameDOMContentLoaded)
	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	wait()

	return ctx.Err()
}

// HTML returns the serialized DOM.
func (p *Page) HTML(ctx context.Context) (string, error) {
	html, err := p.page.Context(ctx).HTML()
	if err != nil {
		return "", fmt.Errorf("reading page html: %w", err)
	}
	return html, nil
}

// Close closes the tab. Subsequent calls return the first result.
func (p *Page) Close() error {
	p.once.Do(func() {
		p.err = p.page.Close()
		if p.release != nil {
			p.release()
		}
	})
	return p.err
}
