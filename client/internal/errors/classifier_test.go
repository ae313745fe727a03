package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/url"
	"sync"
	"syscall"
	"testing"
	"time"
)

type recordingUI struct {
	mu       sync.Mutex
	notified []string
	routes   []string
}

func (r *recordingUI) Notify(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notified = append(r.notified, msg)
}

func (r *recordingUI) Navigate(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

type fakeCreds struct{ clears int }

func (f *fakeCreds) Clear(context.Context) error { f.clears++; return nil }

// immediate runs scheduled work inline and records the requested delays.
type immediate struct{ delays []time.Duration }

func (i *immediate) schedule(d time.Duration, f func()) {
	i.delays = append(i.delays, d)
	f()
}

func newTestClassifier() (*Classifier, *recordingUI, *fakeCreds, *immediate) {
	ui := &recordingUI{}
	creds := &fakeCreds{}
	sched := &immediate{}
	c := NewClassifier(WithUI(ui), WithCredentials(creds), WithScheduler(sched.schedule))
	return c, ui, creds, sched
}

func TestClassify_NetworkFailures(t *testing.T) {
	c, _, _, _ := newTestClassifier()
	cases := []error{
		&url.Error{Op: "Get", URL: "http://x", Err: fmt.Errorf("dial tcp: connection refused")},
		&net.OpError{Op: "dial", Err: fmt.Errorf("boom")},
		fmt.Errorf("read: %w", syscall.ECONNRESET),
		context.DeadlineExceeded,
		stderrors.New("request:fail timeout"),
		stderrors.New("Network is down"),
		NewNetworkError("get /site-info", stderrors.New("eof")),
	}
	for _, raw := range cases {
		ce := c.Classify(context.Background(), raw, false)
		if ce.Kind != KindNetwork {
			t.Fatalf("%v: expected NETWORK_ERROR, got %s", raw, ce.Kind)
		}
		if ce.Message != KindNetwork.Message() {
			t.Fatalf("unexpected message %q", ce.Message)
		}
		if !ce.Retryable() {
			t.Fatalf("network errors must be retryable")
		}
	}
}

func TestClassify_OnlyNetworkMarkersMatchBySubstring(t *testing.T) {
	c, _, _, _ := newTestClassifier()
	for _, msg := range []string{"timeout waiting for lock", "connection pool exhausted"} {
		if ce := c.Classify(context.Background(), stderrors.New(msg), false); ce.Kind != KindUnknown {
			t.Fatalf("%q: expected UNKNOWN_ERROR, got %s", msg, ce.Kind)
		}
	}
	if ce := c.Classify(context.Background(), NewHTTPError(400, "network policy denied", ""), false); ce.Kind != KindUnknown {
		t.Fatalf("http errors must not match network markers, got %s", ce.Kind)
	}
}

func TestClassify_HTTPStatuses(t *testing.T) {
	cases := []struct {
		raw  *HTTPError
		kind Kind
		msg  string
	}{
		{NewHTTPError(403, "", ""), KindForbidden, KindForbidden.Message()},
		{NewHTTPError(404, "", ""), KindNotFound, KindNotFound.Message()},
		{NewEnvelopeError(200, 422, "title required"), KindValidation, "title required"},
		{&HTTPError{StatusCode: 422}, KindValidation, KindValidation.Message()},
		{NewHTTPError(422, "", "not json"), KindValidation, KindValidation.Message()},
		{NewHTTPError(418, "", ""), KindUnknown, KindUnknown.Message()},
		{NewHTTPError(500, "", ""), KindServer, KindServer.Message()},
		{NewHTTPError(502, "", ""), KindServer, KindServer.Message()},
		{NewHTTPError(503, "", ""), KindServer, KindServer.Message()},
		{NewHTTPError(504, "gateway timeout", ""), KindUnknown, "gateway timeout"},
		{NewEnvelopeError(200, 1001, "bad state"), KindUnknown, "bad state"},
	}
	for _, tc := range cases {
		c, ui, creds, _ := newTestClassifier()
		ce := c.Classify(context.Background(), tc.raw, false)
		if ce.Kind != tc.kind {
			t.Fatalf("status %d: expected %s, got %s", tc.raw.Status(), tc.kind, ce.Kind)
		}
		if ce.Message != tc.msg {
			t.Fatalf("status %d: expected message %q, got %q", tc.raw.Status(), tc.msg, ce.Message)
		}
		if creds.clears != 0 || len(ui.routes) != 0 {
			t.Fatalf("status %d: unexpected auth side effect", tc.raw.Status())
		}
	}
}

func TestHTTPError_ErrorFallsBackToStatusText(t *testing.T) {
	e := NewHTTPError(422, "", "")
	if e.Message != "" {
		t.Fatalf("message should stay empty, got %q", e.Message)
	}
	if got := e.Error(); got != "http 422 (code 0): Unprocessable Entity" {
		t.Fatalf("unexpected error text %q", got)
	}
}

func TestClassify_RetryableStatusRange(t *testing.T) {
	c, _, _, _ := newTestClassifier()
	if !c.Classify(context.Background(), NewHTTPError(504, "", ""), false).Retryable() {
		t.Fatalf("504 should be retryable")
	}
	if !c.Classify(context.Background(), NewHTTPError(599, "", ""), false).Retryable() {
		t.Fatalf("599 should be retryable")
	}
	if c.Classify(context.Background(), NewHTTPError(600, "", ""), false).Retryable() {
		t.Fatalf("600 should not be retryable")
	}
	if c.Classify(context.Background(), NewHTTPError(429, "", ""), false).Retryable() {
		t.Fatalf("429 should not be retryable")
	}
}

func TestClassify_UnauthorizedClearsAndRedirects(t *testing.T) {
	c, ui, creds, sched := newTestClassifier()
	ce := c.Classify(context.Background(), NewHTTPError(401, "", ""), true)
	if ce.Kind != KindUnauthorized {
		t.Fatalf("expected UNAUTHORIZED, got %s", ce.Kind)
	}
	if creds.clears != 1 {
		t.Fatalf("expected credential cleared once, got %d", creds.clears)
	}
	if len(sched.delays) != 1 || sched.delays[0] != DefaultRedirectDelay {
		t.Fatalf("expected one redirect after %s, got %v", DefaultRedirectDelay, sched.delays)
	}
	if len(ui.routes) != 1 || ui.routes[0] != LoginRoute {
		t.Fatalf("unexpected navigation: %v", ui.routes)
	}
	if len(ui.notified) != 1 || ui.notified[0] != KindUnauthorized.Message() {
		t.Fatalf("unexpected notifications: %v", ui.notified)
	}

	// Re-classifying the same error must not repeat the side effect.
	again := c.Classify(context.Background(), ce, true)
	if again != ce || creds.clears != 1 || len(ui.routes) != 1 || len(ui.notified) != 1 {
		t.Fatalf("side effect repeated on already-classified error")
	}
}

func TestClassify_EnvelopeCodeUnauthorized(t *testing.T) {
	c, _, creds, _ := newTestClassifier()
	ce := c.Classify(context.Background(), NewEnvelopeError(200, 401, "token expired"), false)
	if ce.Kind != KindUnauthorized || creds.clears != 1 {
		t.Fatalf("envelope code 401 should classify as UNAUTHORIZED and clear credentials")
	}
}

func TestClassify_Idempotent(t *testing.T) {
	c, _, _, _ := newTestClassifier()
	for _, k := range Kinds() {
		in := &ClassifiedError{Kind: k, Message: k.Message(), StatusCode: 404}
		out := c.Classify(context.Background(), in, false)
		if out.Kind != k {
			t.Fatalf("expected %s to pass through, got %s", k, out.Kind)
		}
		wrapped := c.Classify(context.Background(), fmt.Errorf("ctx: %w", in), false)
		if wrapped != in {
			t.Fatalf("wrapped classified error should pass through")
		}
	}
}

func TestClassify_Fallback(t *testing.T) {
	c, _, _, _ := newTestClassifier()
	ce := c.Classify(context.Background(), stderrors.New("decode envelope: unexpected token"), false)
	if ce.Kind != KindUnknown || ce.Message != "decode envelope: unexpected token" {
		t.Fatalf("unexpected fallback: %+v", ce)
	}
	if c.Classify(context.Background(), nil, true) != nil {
		t.Fatalf("nil input should classify to nil")
	}
}

func TestClassify_ToastShownOnce(t *testing.T) {
	c, ui, _, _ := newTestClassifier()
	ce := c.Classify(context.Background(), NewHTTPError(404, "", ""), false)
	if len(ui.notified) != 0 || ce.Shown {
		t.Fatalf("toast shown while suppressed")
	}
	c.Classify(context.Background(), ce, true)
	c.Classify(context.Background(), ce, true)
	if len(ui.notified) != 1 || !ce.Shown {
		t.Fatalf("expected exactly one toast, got %v", ui.notified)
	}
}

func TestIsKindAndKindOf(t *testing.T) {
	ce := &ClassifiedError{Kind: KindForbidden}
	if !IsKind(fmt.Errorf("wrap: %w", ce), KindForbidden) {
		t.Fatalf("IsKind should unwrap")
	}
	if IsKind(stderrors.New("x"), KindForbidden) {
		t.Fatalf("plain errors have no kind")
	}
	if KindOf(stderrors.New("x")) != KindUnknown {
		t.Fatalf("KindOf should default to UNKNOWN_ERROR")
	}
	if Kind("BOGUS").Valid() || !KindNotFound.Valid() {
		t.Fatalf("Valid mismatch")
	}
}
