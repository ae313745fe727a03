// Package platform abstracts the host runtime the client core runs in: a
// synchronous key/value store and a handful of UI primitives. The core depends
// only on these interfaces, never on a concrete runtime.
package platform

import (
	"context"
	"errors"
)

// Storage keys shared across the client.
const (
	TokenKey         = "token"
	ThemeModeKey     = "theme-mode"
	SiteInfoCacheKey = "site_info_cache"
)

// ErrNotFound is returned by Storage.Get when the key is absent.
var ErrNotFound = errors.New("platform: key not found")

// Storage is local persistent key/value storage.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// UI is the set of side-effecting screen primitives.
type UI interface {
	ShowLoading(caption string)
	HideLoading()
	Notify(message string)
	Navigate(route string)
}

// NavigationBarStyler is implemented by UIs that can recolor the navigation bar.
type NavigationBarStyler interface {
	SetNavigationBarColor(frontColor, backgroundColor string)
}

// Adapter bundles storage and UI for a runtime.
type Adapter interface {
	Storage
	UI
}

type adapter struct {
	Storage
	UI
}

// Combine joins a Storage and a UI into an Adapter.
func Combine(s Storage, ui UI) Adapter {
	return adapter{Storage: s, UI: ui}
}

// NopUI ignores every call.
type NopUI struct{}

func (NopUI) ShowLoading(string) {}
func (NopUI) HideLoading()       {}
func (NopUI) Notify(string)      {}
func (NopUI) Navigate(string)    {}

// IsNotFound reports whether err means the key is absent.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
