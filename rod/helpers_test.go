package rod_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"

	"github.com/fwojciec/distill"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestLogger(buf *syncBuffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

type stubSource struct {
	page distill.Page
}

func (s *stubSource) NewPage(ctx context.Context) (distill.Page, error) {
	return s.page, nil
}

func (s *stubSource) Close() error {
	return nil
}
