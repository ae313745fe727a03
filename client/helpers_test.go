package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/giovan110109-blip/homePageuUni/platform"
	"github.com/giovan110109-blip/homePageuUni/platform/platformtest"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// recordingSleeper records backoff waits without sleeping.
type recordingSleeper struct {
	mu    sync.Mutex
	waits []time.Duration
}

func (s *recordingSleeper) sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.waits = append(s.waits, d)
	s.mu.Unlock()
	return ctx.Err()
}

func (s *recordingSleeper) recorded() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.waits...)
}

type harness struct {
	client  *Client
	ui      *platformtest.RecordingUI
	storage *platform.MemoryStorage
	sleeper *recordingSleeper
	srv     *httptest.Server
}

// newHarness starts handler behind httptest and wires a client to it with a
// recording UI, in-memory storage and a recording sleeper. The 401 redirect
// runs immediately.
func newHarness(t *testing.T, handler http.HandlerFunc, opts ...Option) *harness {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	h := &harness{
		ui:      &platformtest.RecordingUI{},
		storage: platform.NewMemoryStorage(),
		sleeper: &recordingSleeper{},
		srv:     srv,
	}
	creds := platform.NewCredentials(h.storage)
	base := []Option{
		WithSleeper(h.sleeper.sleep),
		WithClassifier(NewClassifier(
			ClassifierUI(h.ui),
			ClassifierCredentials(creds),
			ClassifierScheduler(func(_ time.Duration, f func()) { f() }),
		)),
	}
	c, err := New(srv.URL, platform.Combine(h.storage, h.ui), append(base, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	h.client = c
	return h
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
