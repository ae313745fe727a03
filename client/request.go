package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"
)

// RequestOption adjusts a single request built by Get, Post, Put or Delete.
type RequestOption func(*Request)

// WithLoading shows the loading indicator with caption for the first attempt.
// An empty caption uses DefaultLoadingText.
func WithLoading(caption string) RequestOption {
	return func(r *Request) {
		r.ShowLoading = true
		r.LoadingText = caption
	}
}

// WithoutErrorToast suppresses the user-visible error notice.
func WithoutErrorToast() RequestOption {
	return func(r *Request) {
		v := false
		r.ShowError = &v
	}
}

// WithRetry overrides the retry count and delay for one request.
func WithRetry(count int, delay time.Duration) RequestOption {
	return func(r *Request) {
		r.RetryCount = &count
		r.RetryDelay = &delay
	}
}

// WithHeader sets a per-request header; it overrides defaults.
func WithHeader(key, value string) RequestOption {
	return func(r *Request) {
		if r.Header == nil {
			r.Header = map[string]string{}
		}
		r.Header[key] = value
	}
}

func newRequest(method, path string, data any, opts []RequestOption) Request {
	r := Request{Method: method, Path: path, Data: data}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// encodeQuery turns GET data into query parameters. Supported inputs are
// url.Values, string maps, generic maps and JSON-tagged structs. Nil and empty
// values are omitted.
func encodeQuery(data any) (url.Values, error) {
	q := url.Values{}
	switch v := data.(type) {
	case nil:
		return q, nil
	case url.Values:
		return v, nil
	case map[string]string:
		for k, s := range v {
			if s != "" {
				q.Set(k, s)
			}
		}
		return q, nil
	}

	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("query data must encode to an object: %w", err)
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch val := m[k].(type) {
		case nil:
		case string:
			if val != "" {
				q.Set(k, val)
			}
		case json.Number:
			q.Set(k, val.String())
		case bool:
			q.Set(k, strconv.FormatBool(val))
		case []any:
			for _, item := range val {
				q.Add(k, fmt.Sprint(item))
			}
		default:
			return nil, fmt.Errorf("query field %q has unsupported type %T", k, val)
		}
	}
	return q, nil
}
