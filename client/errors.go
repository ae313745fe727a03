package client

import (
	clienterrors "github.com/giovan110109-blip/homePageuUni/client/internal/errors"
)

// ClassifiedError is the only error kind returned by Do and the API methods.
type ClassifiedError = clienterrors.ClassifiedError

// ErrorKind is the closed set of failure categories.
type ErrorKind = clienterrors.Kind

const (
	KindNetwork      = clienterrors.KindNetwork
	KindServer       = clienterrors.KindServer
	KindUnauthorized = clienterrors.KindUnauthorized
	KindForbidden    = clienterrors.KindForbidden
	KindNotFound     = clienterrors.KindNotFound
	KindValidation   = clienterrors.KindValidation
	KindUnknown      = clienterrors.KindUnknown
)

// LoginRoute is opened after a 401 once the redirect delay has passed.
const LoginRoute = clienterrors.LoginRoute

// IsKind reports whether err is a ClassifiedError of the given kind.
func IsKind(err error, kind ErrorKind) bool { return clienterrors.IsKind(err, kind) }

// KindOf returns the kind of err, or KindUnknown for unclassified errors.
func KindOf(err error) ErrorKind { return clienterrors.KindOf(err) }

// ClassifierOption configures NewClassifier.
type ClassifierOption = clienterrors.Option

var (
	ClassifierUI          = clienterrors.WithUI
	ClassifierCredentials = clienterrors.WithCredentials
	ClassifierScheduler   = clienterrors.WithScheduler
	ClassifierRedirect    = clienterrors.WithRedirect
	ClassifierLogger      = clienterrors.WithLogger
)

// NewClassifier builds the default classifier for use with WithClassifier.
func NewClassifier(opts ...ClassifierOption) Classifier {
	return clienterrors.NewClassifier(opts...)
}
