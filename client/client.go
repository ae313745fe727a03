package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	clienterrors "github.com/giovan110109-blip/homePageuUni/client/internal/errors"
	"github.com/giovan110109-blip/homePageuUni/client/internal/retry"
	"github.com/giovan110109-blip/homePageuUni/client/internal/types"
	"github.com/giovan110109-blip/homePageuUni/internal/config"
	"github.com/giovan110109-blip/homePageuUni/platform"
)

// Headers attached to every attempt.
const (
	HeaderRequestTimestamp = "X-Request-Timestamp"
	HeaderRequestID        = "X-Request-ID"
)

// Defaults for a request descriptor.
const (
	DefaultLoadingText = "加载中..."
	DefaultRetryCount  = 3
	DefaultRetryDelay  = time.Second
	DefaultTimeout     = 30 * time.Second
)

// Classifier turns a raw failure into a ClassifiedError. Passing an
// already-classified error must return it unchanged.
type Classifier interface {
	Classify(ctx context.Context, raw error, showToast bool) *ClassifiedError
}

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL    string
	http       *http.Client
	headers    map[string]string
	ui         platform.UI
	creds      *platform.Credentials
	classifier Classifier
	log        zerolog.Logger

	retryCount int
	retryDelay time.Duration
	sleep      retry.Sleeper
	now        func() time.Time
	debug      bool

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for baseURL running on the given platform.
// Additional options can be provided via functional arguments.
func New(baseURL string, p platform.Adapter, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}
	if p == nil {
		return nil, fmt.Errorf("platform adapter cannot be nil")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		http:       &http.Client{Timeout: DefaultTimeout},
		headers:    map[string]string{"Content-Type": "application/json"},
		ui:         p,
		creds:      platform.NewCredentials(p),
		log:        zerolog.Nop(),
		retryCount: DefaultRetryCount,
		retryDelay: DefaultRetryDelay,
		sleep:      retry.SleepContext,
		now:        time.Now,
	}

	// Auto-enable debug via env variable without changing code.
	c.debug = debugLoggingRequested()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.classifier == nil {
		c.classifier = clienterrors.NewClassifier(
			clienterrors.WithUI(c.ui),
			clienterrors.WithCredentials(c.creds),
			clienterrors.WithLogger(c.log),
		)
	}
	if c.debug {
		c.http.Transport = &debugTransport{base: c.http.Transport, log: c.log}
	}

	// Wrap HTTP transport to add the Authorization header when a credential is stored
	c.wrapTransportWithCredentials()

	return c, nil
}

// NewFromConfig constructs a Client from resolved configuration.
func NewFromConfig(cfg *config.Config, p platform.Adapter, opts ...Option) (*Client, error) {
	base := []Option{
		WithHTTPTimeout(cfg.Timeout),
		WithDefaultHeaders(cfg.Headers),
		WithRetryDefaults(cfg.RetryCount, cfg.RetryDelay),
		WithDebugLogging(cfg.Debug),
	}
	return New(cfg.BaseURL, p, append(base, opts...)...)
}

// wrapTransportWithCredentials wraps the HTTP client's transport so every
// attempt reads the current credential.
func (c *Client) wrapTransportWithCredentials() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &credentialTransport{
		base:  baseTransport,
		creds: c.creds,
		log:   c.log,
	}
}

// credentialTransport adds "Authorization: Bearer <token>" when a token is
// stored and the caller did not set the header itself.
type credentialTransport struct {
	base  http.RoundTripper
	creds *platform.Credentials
	log   zerolog.Logger
}

func (t *credentialTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Authorization") != "" {
		return t.base.RoundTrip(req)
	}
	tok, ok, err := t.creds.Token(req.Context())
	if err != nil {
		t.log.Warn().Err(err).Msg("read credential failed; sending request unauthenticated")
	}
	if !ok {
		return t.base.RoundTrip(req)
	}
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+tok)
	return t.base.RoundTrip(cloned)
}

// Credentials returns the credential store shared with the classifier.
func (c *Client) Credentials() *platform.Credentials { return c.creds }

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// HandleError classifies err the same way failed requests are classified.
func (c *Client) HandleError(ctx context.Context, err error, showToast bool) *ClassifiedError {
	return c.classifier.Classify(ctx, err, showToast)
}

// Close releases idle connections. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.http.CloseIdleConnections()
	return nil
}

// --------------------------------------------------------------------
// Request pipeline
// --------------------------------------------------------------------

// Do issues one logical request. On success it returns the envelope
// (including pagination metadata). On failure the error is always a
// *ClassifiedError; network failures and 5xx statuses are retried up to
// RetryCount times with a linear backoff.
func (c *Client) Do(ctx context.Context, req Request) (*Envelope, error) {
	req, err := c.withDefaults(req)
	if err != nil {
		return nil, c.classifier.Classify(ctx, err, req.ShowError == nil || *req.ShowError)
	}
	showError := *req.ShowError
	maxAttempts := *req.RetryCount + 1
	requestID := uuid.NewString()
	method := req.Method

	logger := c.log.With().Str("method", method).Str("path", req.Path).Str("request_id", requestID).Logger()

	m := &retry.Machine{
		MaxAttempts: maxAttempts,
		BackOff:     retry.NewLinear(*req.RetryDelay),
		Sleep:       c.sleep,
		OnTransition: func(tr retry.Transition) {
			if tr.To == retry.Backoff {
				retriesTotal.WithLabelValues(method).Inc()
				logger.Warn().Err(tr.Err).Int("attempt", tr.Attempt).Int("max_attempts", maxAttempts).Msg("request failed; retrying")
			}
		},
	}

	var env *Envelope
	attempts, runErr := m.Run(ctx, func(ctx context.Context, attempt int) error {
		if attempt == 1 && req.ShowLoading {
			c.ui.ShowLoading(req.LoadingText)
			defer c.ui.HideLoading()
		}
		attemptsTotal.WithLabelValues(method).Inc()
		e, err := c.attempt(ctx, req, requestID)
		if err != nil {
			if ce := c.classifier.Classify(ctx, err, false); ce != nil {
				return ce
			}
			return err
		}
		env = e
		return nil
	})

	if runErr != nil {
		ce := c.classifier.Classify(ctx, runErr, showError)
		requestsTotal.WithLabelValues(method, "failure").Inc()
		errorsTotal.WithLabelValues(string(ce.Kind)).Inc()
		logger.Debug().Err(ce).Int("attempts", attempts).Msg("request failed")
		return nil, ce
	}
	requestsTotal.WithLabelValues(method, "success").Inc()
	logger.Debug().Int("attempts", attempts).Int("code", env.Code).Msg("request succeeded")
	return env, nil
}

// Get issues a GET; data is encoded as the query string.
func (c *Client) Get(ctx context.Context, path string, data any, opts ...RequestOption) (*Envelope, error) {
	return c.Do(ctx, newRequest(http.MethodGet, path, data, opts))
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, data any, opts ...RequestOption) (*Envelope, error) {
	return c.Do(ctx, newRequest(http.MethodPost, path, data, opts))
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, data any, opts ...RequestOption) (*Envelope, error) {
	return c.Do(ctx, newRequest(http.MethodPut, path, data, opts))
}

// Delete issues a DELETE with a JSON body.
func (c *Client) Delete(ctx context.Context, path string, data any, opts ...RequestOption) (*Envelope, error) {
	return c.Do(ctx, newRequest(http.MethodDelete, path, data, opts))
}

// withDefaults copies req and fills every unset field.
func (c *Client) withDefaults(req Request) (Request, error) {
	out := req
	out.Method = strings.ToUpper(req.Method)
	if out.Method == "" {
		out.Method = http.MethodGet
	}
	switch out.Method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return out, clienterrors.NewValidationError("unsupported method " + out.Method)
	}
	if out.LoadingText == "" {
		out.LoadingText = DefaultLoadingText
	}
	if out.ShowError == nil {
		v := true
		out.ShowError = &v
	}
	if out.RetryCount == nil || *out.RetryCount < 0 {
		v := c.retryCount
		out.RetryCount = &v
	}
	if out.RetryDelay == nil || *out.RetryDelay < 0 {
		v := c.retryDelay
		out.RetryDelay = &v
	}
	if len(req.Header) > 0 {
		out.Header = make(map[string]string, len(req.Header))
		for k, v := range req.Header {
			out.Header[k] = v
		}
	}
	return out, nil
}

// attempt performs a single HTTP exchange and returns the envelope or a raw error.
func (c *Client) attempt(ctx context.Context, req Request, requestID string) (*Envelope, error) {
	op := req.Method + " " + req.Path
	httpReq, err := c.newHTTPRequest(ctx, req, requestID)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, clienterrors.NewNetworkError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, clienterrors.NewNetworkError(op, err)
	}

	var env types.Envelope
	decodeErr := json.Unmarshal(body, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		httpErr := clienterrors.NewHTTPError(resp.StatusCode, "", string(body))
		if decodeErr == nil {
			httpErr.Code = env.Code
			httpErr.Message = env.Message
		}
		return nil, httpErr
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%s: decode envelope: %w", op, decodeErr)
	}
	if !env.OK() {
		return nil, clienterrors.NewEnvelopeError(resp.StatusCode, env.Code, env.Message)
	}
	return &env, nil
}

func (c *Client) newHTTPRequest(ctx context.Context, req Request, requestID string) (*http.Request, error) {
	target := c.baseURL + req.Path
	var body io.Reader

	if req.Method == http.MethodGet {
		q, err := encodeQuery(req.Data)
		if err != nil {
			return nil, fmt.Errorf("encode query: %w", err)
		}
		if len(q) > 0 {
			sep := "?"
			if strings.Contains(target, "?") {
				sep = "&"
			}
			target += sep + q.Encode()
		}
	} else if req.Data != nil {
		b, err := json.Marshal(req.Data)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set(HeaderRequestTimestamp, strconv.FormatInt(c.now().UnixMilli(), 10))
	httpReq.Header.Set(HeaderRequestID, requestID)
	// Note: Authorization header will be added by transport layer
	for k, v := range req.Header {
		httpReq.Header.Set(k, v)
	}
	return httpReq, nil
}
