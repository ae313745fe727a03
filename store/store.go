// Package store holds the client-side state containers: site info with a
// local read-through cache, the user session, the scroll flag and the theme.
// Every container is safe for concurrent use.
package store

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/giovan110109-blip/homePageuUni/client"
	"github.com/giovan110109-blip/homePageuUni/platform"
)

// SiteInfoAPI is the part of the client the site-info container needs.
type SiteInfoAPI interface {
	GetSiteInfo(ctx context.Context) (*client.SiteInfo, error)
}

// AuthAPI is the part of the client the user container needs.
type AuthAPI interface {
	Credentials() *platform.Credentials
	WechatLogin(ctx context.Context, code string, profile *client.WechatProfile) (*client.LoginResult, error)
	GetMe(ctx context.Context) (*client.UserInfo, error)
	UpdateUserInfo(ctx context.Context, profile client.WechatProfile) (*client.UserInfo, error)
	BindAccount(ctx context.Context, username, password, code string) (*client.LoginResult, error)
	ScanQRLogin(ctx context.Context, qrToken string) (*client.QRStatus, error)
	ConfirmQRLogin(ctx context.Context, qrToken string) (*client.QRStatus, error)
}

var (
	_ SiteInfoAPI = (*client.Client)(nil)
	_ AuthAPI     = (*client.Client)(nil)
)

type options struct {
	now func() time.Time
	log zerolog.Logger
}

// Option configures a container.
type Option func(*options)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger used for storage and side-effect failures.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

func applyOptions(opts []Option) options {
	o := options{now: time.Now, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
