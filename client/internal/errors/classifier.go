package errors

import (
	"context"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

const (
	// LoginRoute is the screen opened after an authorization failure.
	LoginRoute = "/subpackages/auth/login/index"

	// DefaultRedirectDelay leaves time for the toast to render before navigating.
	DefaultRedirectDelay = 1500 * time.Millisecond
)

// networkErrnos are connection-level errnos that indicate the request never
// reached (or never came back from) the backend.
var networkErrnos = []error{
	syscall.ECONNREFUSED,
	syscall.ECONNRESET,
	syscall.ENETUNREACH,
	syscall.EHOSTUNREACH,
	syscall.ETIMEDOUT,
}

// UI is the subset of platform primitives the classifier drives.
type UI interface {
	Notify(message string)
	Navigate(route string)
}

// CredentialClearer removes the stored bearer credential.
type CredentialClearer interface {
	Clear(ctx context.Context) error
}

// Scheduler runs f after d. The default is time.AfterFunc.
type Scheduler func(d time.Duration, f func())

// Classifier maps raw failures to ClassifiedErrors and performs the
// authorization-failure side effect.
type Classifier struct {
	ui            UI
	credentials   CredentialClearer
	schedule      Scheduler
	redirectDelay time.Duration
	loginRoute    string
	log           zerolog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithUI sets the notification and navigation target.
func WithUI(ui UI) Option {
	return func(c *Classifier) { c.ui = ui }
}

// WithCredentials sets the credential store cleared on 401.
func WithCredentials(cc CredentialClearer) Option {
	return func(c *Classifier) { c.credentials = cc }
}

// WithScheduler replaces time.AfterFunc for the delayed login redirect.
func WithScheduler(s Scheduler) Option {
	return func(c *Classifier) { c.schedule = s }
}

// WithRedirect overrides the login route and the delay before navigating to it.
func WithRedirect(route string, delay time.Duration) Option {
	return func(c *Classifier) {
		if route != "" {
			c.loginRoute = route
		}
		if delay >= 0 {
			c.redirectDelay = delay
		}
	}
}

// WithLogger sets the logger used for side-effect failures.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Classifier) { c.log = l }
}

// NewClassifier returns a classifier. Without WithUI and WithCredentials the
// notification and 401 side effects are no-ops.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		schedule:      func(d time.Duration, f func()) { time.AfterFunc(d, f) },
		redirectDelay: DefaultRedirectDelay,
		loginRoute:    LoginRoute,
		log:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify normalizes raw into a ClassifiedError. An error that is already
// classified is returned as is, so the 401 side effect runs at most once per
// failure. When showToast is set and nothing was shown yet, the message is
// displayed.
func (c *Classifier) Classify(ctx context.Context, raw error, showToast bool) *ClassifiedError {
	if raw == nil {
		return nil
	}

	var ce *ClassifiedError
	var httpErr *HTTPError
	switch {
	case stderrors.As(raw, &ce):
	case isNetworkError(raw):
		ce = &ClassifiedError{
			Kind:       KindNetwork,
			Message:    KindNetwork.Message(),
			Underlying: raw,
		}
	case stderrors.As(raw, &httpErr):
		ce = c.classifyHTTP(ctx, httpErr, raw)
	default:
		msg := raw.Error()
		if msg == "" {
			msg = KindUnknown.Message()
		}
		ce = &ClassifiedError{
			Kind:       KindUnknown,
			Message:    msg,
			Underlying: raw,
		}
	}

	if showToast && !ce.Shown {
		c.notify(ce.Message)
		ce.Shown = true
	}
	return ce
}

func (c *Classifier) classifyHTTP(ctx context.Context, httpErr *HTTPError, raw error) *ClassifiedError {
	status := httpErr.Status()
	ce := &ClassifiedError{StatusCode: status, Underlying: raw}

	switch status {
	case http.StatusUnauthorized:
		ce.Kind = KindUnauthorized
		ce.Message = KindUnauthorized.Message()
		c.handleUnauthorized(ctx)
	case http.StatusForbidden:
		ce.Kind = KindForbidden
		ce.Message = KindForbidden.Message()
	case http.StatusNotFound:
		ce.Kind = KindNotFound
		ce.Message = KindNotFound.Message()
	case http.StatusUnprocessableEntity:
		ce.Kind = KindValidation
		ce.Message = serverMessage(httpErr, KindValidation)
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		ce.Kind = KindServer
		ce.Message = KindServer.Message()
	default:
		ce.Kind = KindUnknown
		ce.Message = serverMessage(httpErr, KindUnknown)
	}
	return ce
}

func serverMessage(httpErr *HTTPError, fallback Kind) string {
	if httpErr.Message != "" {
		return httpErr.Message
	}
	return fallback.Message()
}

// handleUnauthorized clears the credential now and opens the login screen
// after the redirect delay.
func (c *Classifier) handleUnauthorized(ctx context.Context) {
	if c.credentials != nil {
		if err := c.credentials.Clear(context.WithoutCancel(ctx)); err != nil {
			c.log.Error().Err(err).Msg("clear credential after 401 failed")
		}
	}
	if c.ui == nil {
		return
	}
	route := c.loginRoute
	c.schedule(c.redirectDelay, func() { c.ui.Navigate(route) })
}

func (c *Classifier) notify(msg string) {
	if c.ui != nil {
		c.ui.Notify(msg)
	}
}

func isNetworkError(err error) bool {
	var httpErr *HTTPError
	if stderrors.As(err, &httpErr) {
		return false
	}

	var netErr *NetworkError
	if stderrors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	if stderrors.As(err, &urlErr) {
		return true
	}
	var ne net.Error
	if stderrors.As(err, &ne) {
		return true
	}
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	for _, errno := range networkErrnos {
		if stderrors.Is(err, errno) {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "request:fail") || strings.Contains(msg, "network")
}
