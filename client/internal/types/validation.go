package types

import (
	"context"
	"net/http"
	"strings"
	"time"

	clienterrors "github.com/giovan110109-blip/homePageuUni/client/internal/errors"
)

// ------------------------------
// Shared Interfaces
// ------------------------------

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Requester issues one logical request against the backend and returns the
// envelope or a classified error.
type Requester interface {
	Do(ctx context.Context, req Request) (*Envelope, error)
}

// Request is the descriptor of one logical call. It is copied per call; zero
// values are replaced by the client's defaults.
type Request struct {
	Path        string
	Method      string
	Data        any
	Header      map[string]string
	ShowLoading bool
	LoadingText string
	ShowError   *bool
	RetryCount  *int
	RetryDelay  *time.Duration
}

// ------------------------------
// Validation
// ------------------------------

// ValidateIDPresent rejects empty identifiers before any request is sent.
func ValidateIDPresent(id, field string) error {
	if strings.TrimSpace(id) == "" {
		return clienterrors.NewValidationError(field + " is required")
	}
	return nil
}

// ValidatePage rejects non-positive paging arguments.
func ValidatePage(page, size int, sizeField string) error {
	if page < 1 {
		return clienterrors.NewValidationError("page must be >= 1")
	}
	if size < 1 {
		return clienterrors.NewValidationError(sizeField + " must be >= 1")
	}
	return nil
}
