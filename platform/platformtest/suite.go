// Package platformtest provides test doubles and a compliance suite for
// platform implementations.
package platformtest

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/giovan110109-blip/homePageuUni/platform"
)

// RunStorage exercises a minimal compliance suite against a platform.Storage.
// makeStorage must return a clean, isolated store.
func RunStorage(t *testing.T, makeStorage func(t *testing.T) platform.Storage) {
	t.Helper()

	s := makeStorage(t)
	ctx := context.Background()
	key := "k-" + uuid.New().String()

	if _, err := s.Get(ctx, key); !platform.IsNotFound(err) {
		t.Fatalf("Get missing: expected ErrNotFound, got %v", err)
	}
	if err := s.Set(ctx, key, "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, err := s.Get(ctx, key); err != nil || got != "v1" {
		t.Fatalf("Get: got=%q err=%v", got, err)
	}
	if err := s.Set(ctx, key, "v2"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if got, err := s.Get(ctx, key); err != nil || got != "v2" {
		t.Fatalf("Get after overwrite: got=%q err=%v", got, err)
	}
	if err := s.Set(ctx, key, `{"data":{"name":"中文"},"timestamp":1}`); err != nil {
		t.Fatalf("Set json: %v", err)
	}
	if got, _ := s.Get(ctx, key); got != `{"data":{"name":"中文"},"timestamp":1}` {
		t.Fatalf("value not preserved: %q", got)
	}
	if err := s.Remove(ctx, key); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := s.Get(ctx, key); !platform.IsNotFound(err) {
		t.Fatalf("Get after remove: expected ErrNotFound, got %v", err)
	}
	if err := s.Remove(ctx, key); err != nil {
		t.Fatalf("Remove missing key should be a no-op: %v", err)
	}

	// Credentials on top of the store.
	creds := platform.NewCredentials(s)
	if _, ok, err := creds.Token(ctx); err != nil || ok {
		t.Fatalf("Token on empty store: ok=%v err=%v", ok, err)
	}
	if err := creds.Set(ctx, "tok-1"); err != nil {
		t.Fatalf("Credentials.Set: %v", err)
	}
	if tok, ok, err := creds.Token(ctx); err != nil || !ok || tok != "tok-1" {
		t.Fatalf("Token: tok=%q ok=%v err=%v", tok, ok, err)
	}
	if err := creds.Clear(ctx); err != nil {
		t.Fatalf("Credentials.Clear: %v", err)
	}
	if _, ok, _ := creds.Token(ctx); ok {
		t.Fatalf("token still present after Clear")
	}
}

// RecordingUI records every UI call. Safe for concurrent use.
type RecordingUI struct {
	mu        sync.Mutex
	Shows     []string
	Hides     int
	Notices   []string
	Routes    []string
	NavColors [][2]string
}

var _ platform.UI = (*RecordingUI)(nil)

func (r *RecordingUI) ShowLoading(caption string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Shows = append(r.Shows, caption)
}

func (r *RecordingUI) HideLoading() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Hides++
}

func (r *RecordingUI) Notify(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Notices = append(r.Notices, message)
}

func (r *RecordingUI) Navigate(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Routes = append(r.Routes, route)
}

func (r *RecordingUI) SetNavigationBarColor(front, bg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.NavColors = append(r.NavColors, [2]string{front, bg})
}

// Snapshot returns copies of the recorded calls.
func (r *RecordingUI) Snapshot() (shows []string, hides int, notices, routes []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.Shows...), r.Hides,
		append([]string(nil), r.Notices...), append([]string(nil), r.Routes...)
}
