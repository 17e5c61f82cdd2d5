package mock

import "github.com/fwojciec/distill"

var (
	_ distill.Converter = (*Converter)(nil)
	_ distill.Reducer   = (*Reducer)(nil)
)

// Converter is a mock implementation of distill.Converter.
type Converter struct {
	ConvertFn func(html, baseURL string) (string, error)
}

func (c *Converter) Convert(html, baseURL string) (string, error) {
	return c.ConvertFn(html, baseURL)
}

// Reducer is a mock implementation of distill.Reducer.
type Reducer struct {
	ReduceFn func(markdown string) (string, error)
}

func (r *Reducer) Reduce(markdown string) (string, error) {
	return r.ReduceFn(markdown)
}
