// Package errors provides error classification for the client SDK.
// Every failed request is normalized into a ClassifiedError whose Kind drives
// both the retry policy and the message shown to the user.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is the closed set of error kinds surfaced to callers.
type Kind string

const (
	KindNetwork      Kind = "NETWORK_ERROR"
	KindServer       Kind = "SERVER_ERROR"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindForbidden    Kind = "FORBIDDEN"
	KindNotFound     Kind = "NOT_FOUND"
	KindValidation   Kind = "VALIDATION_ERROR"
	KindUnknown      Kind = "UNKNOWN_ERROR"
)

var kindMessages = map[Kind]string{
	KindNetwork:      "网络连接失败，请检查网络",
	KindServer:       "服务器错误，请稍后重试",
	KindUnauthorized: "登录已过期，请重新登录",
	KindForbidden:    "没有权限访问",
	KindNotFound:     "请求的资源不存在",
	KindValidation:   "请求参数错误",
	KindUnknown:      "未知错误，请稍后重试",
}

// Message returns the fixed user-facing message for the kind.
func (k Kind) Message() string {
	if m, ok := kindMessages[k]; ok {
		return m
	}
	return kindMessages[KindUnknown]
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	_, ok := kindMessages[k]
	return ok
}

// String returns the wire name of the kind.
func (k Kind) String() string { return string(k) }

// Kinds lists every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindNetwork, KindServer, KindUnauthorized, KindForbidden, KindNotFound, KindValidation, KindUnknown}
}

// ClassifiedError is the normalized failure returned by the client.
type ClassifiedError struct {
	Kind       Kind
	Message    string
	StatusCode int   // HTTP status or envelope code (0 for network errors)
	Underlying error // the raw failure
	Shown      bool  // a notification has already been displayed for this error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] status %d: %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// Retryable reports whether another attempt may succeed: network failures and
// any status in [500, 600).
func (e *ClassifiedError) Retryable() bool {
	if e.Kind == KindNetwork {
		return true
	}
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// IsKind reports whether err is a ClassifiedError of the given kind.
func IsKind(err error, kind Kind) bool {
	var ce *ClassifiedError
	if stderrors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or KindUnknown when err is not classified.
func KindOf(err error) Kind {
	var ce *ClassifiedError
	if stderrors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}
