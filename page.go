package distill

import "context"

// DefaultMaxConcurrency is the default number of browser pages allowed to run
// at the same time.
const DefaultMaxConcurrency = 3

// Page is an exclusively owned browser tab. A page is checked out for a single
// task and is never shared between concurrent tasks.
type Page interface {
	// Navigate loads the URL and waits for the DOM to be ready.
	// The context controls timeout and cancellation.
	Navigate(ctx context.Context, url string) error

	// HTML returns the serialized rendered DOM of the page.
	HTML(ctx context.Context) (string, error)

	// Close releases the tab. Close is safe to call multiple times.
	Close() error
}

// TaskFunc is the unit of work executed on a page. The page is bound to url
// for the duration of the call. The pool closes it after the task returns.
type TaskFunc func(ctx context.Context, page Page, url string) (string, error)

// PagePool runs tasks on a bounded set of browser pages.
type PagePool interface {
	// Execute blocks until a page slot is available, runs task with an
	// exclusive page and returns its result or error.
	// A failing task never affects other queued or running tasks.
	Execute(ctx context.Context, url string, task TaskFunc) (string, error)

	// Close stops accepting work, waits for in-flight and queued tasks,
	// and then releases all browser resources.
	Close() error
}

// PoolStats is a snapshot of pool activity.
type PoolStats struct {
	Active    int64 `json:"active"`
	Peak      int64 `json:"peak"`
	Completed int64 `json:"completed"`
	Failed    int64 `json:"failed"`
}
