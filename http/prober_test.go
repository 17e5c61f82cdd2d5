package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/distill"
	distillhttp "github.com/fwojciec/distill/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProber_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts reachable url", func(t *testing.T) {
		t.Parallel()

		var method atomic.Value
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method.Store(r.Method)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		err := distillhttp.NewProber().Validate(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, http.MethodHead, method.Load())
	})

	t.Run("follows redirects", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/new", http.StatusMovedPermanently)
		})
		mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		err := distillhttp.NewProber().Validate(context.Background(), server.URL+"/old")

		require.NoError(t, err)
	})

	t.Run("retries with GET when HEAD is not allowed", func(t *testing.T) {
		t.Parallel()

		var gets atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodHead {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			gets.Add(1)
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		err := distillhttp.NewProber().Validate(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, int32(1), gets.Load())
	})

	t.Run("rejects error status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		err := distillhttp.NewProber().Validate(context.Background(), server.URL)

		require.Error(t, err)
		assert.Equal(t, distill.EINVALIDURL, distill.ErrorCode(err))
		assert.Equal(t, distillhttp.InvalidURLMessage, distill.ErrorMessage(err))
	})

	t.Run("rejects malformed urls without a request", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "not a url", "example.com", "ftp://example.com/file", "http://"} {
			err := distillhttp.NewProber().Validate(context.Background(), raw)

			require.Error(t, err, raw)
			assert.Equal(t, distill.EINVALIDURL, distill.ErrorCode(err), raw)
		}
	})

	t.Run("rejects unreachable host", func(t *testing.T) {
		t.Parallel()

		prober := distillhttp.NewProber(distillhttp.WithProbeTimeout(100 * time.Millisecond))

		err := prober.Validate(context.Background(), "http://non-existent-host.invalid/page")

		require.Error(t, err)
		assert.Equal(t, distill.EINVALIDURL, distill.ErrorCode(err))
	})

	t.Run("respects timeout", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
		}))
		defer server.Close()

		prober := distillhttp.NewProber(distillhttp.WithProbeTimeout(10 * time.Millisecond))

		err := prober.Validate(context.Background(), server.URL)

		require.Error(t, err)
		assert.Equal(t, distill.EINVALIDURL, distill.ErrorCode(err))
	})
}
