package devserver

import (
	"net/http"
	"sync"

	"github.com/giovan110109-blip/homePageuUni/devserver/internal/respond"
)

// faults makes the next n requests to a path fail with a fixed status, so
// retry and error handling can be exercised against a live server.
type faults struct {
	mu      sync.Mutex
	pending map[string]*fault
}

type fault struct {
	status    int
	remaining int
}

func newFaults() *faults { return &faults{pending: map[string]*fault{}} }

func (f *faults) add(path string, status, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n <= 0 {
		delete(f.pending, path)
		return
	}
	f.pending[path] = &fault{status: status, remaining: n}
}

// take consumes one pending failure for path.
func (f *faults) take(path string) (int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ft, ok := f.pending[path]
	if !ok {
		return 0, false
	}
	ft.remaining--
	if ft.remaining <= 0 {
		delete(f.pending, path)
	}
	return ft.status, true
}

func (f *faults) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status, ok := f.take(r.URL.Path); ok {
			respond.WriteError(w, status, "injected fault")
			return
		}
		next.ServeHTTP(w, r)
	})
}
