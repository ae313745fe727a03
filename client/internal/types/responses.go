package types

import (
	"encoding/json"
	"fmt"
)

// ------------------------------
// Envelope
// ------------------------------

// Meta is the pagination block returned by list endpoints.
type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Envelope wraps every backend response.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Meta    *Meta           `json:"meta,omitempty"`
}

// OK reports whether the envelope carries a success code. Both 200 and the
// sentinel 0 mean success.
func (e *Envelope) OK() bool {
	return IsSuccessCode(e.Code)
}

// IsSuccessCode reports whether code is an envelope success code.
func IsSuccessCode(code int) bool {
	return code == 200 || code == 0
}

// Response is an Envelope whose data has been decoded into T.
type Response[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Meta    *Meta  `json:"meta,omitempty"`
}

// Decode converts an envelope into a typed response. An empty or null data
// field leaves Data at its zero value.
func Decode[T any](env *Envelope) (*Response[T], error) {
	if env == nil {
		return nil, fmt.Errorf("decode response: nil envelope")
	}
	resp := &Response[T]{Code: env.Code, Message: env.Message, Meta: env.Meta}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return resp, nil
	}
	if err := json.Unmarshal(env.Data, &resp.Data); err != nil {
		return nil, fmt.Errorf("decode response data: %w", err)
	}
	return resp, nil
}
