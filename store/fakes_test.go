package store

import (
	"context"
	"sync"
	"time"

	"github.com/giovan110109-blip/homePageuUni/client"
	"github.com/giovan110109-blip/homePageuUni/platform"
)

type fakeSiteInfoAPI struct {
	mu    sync.Mutex
	calls int
	info  *client.SiteInfo
	err   error
}

func (f *fakeSiteInfoAPI) GetSiteInfo(context.Context) (*client.SiteInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	cp := *f.info
	return &cp, nil
}

func (f *fakeSiteInfoAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeAuthAPI struct {
	creds *platform.Credentials

	login   *client.LoginResult
	me      *client.UserInfo
	updated *client.UserInfo
	qr      *client.QRStatus
	err     error

	meCalls  int
	lastCode string
	lastQR   string
}

func newFakeAuth(storage platform.Storage) *fakeAuthAPI {
	return &fakeAuthAPI{creds: platform.NewCredentials(storage)}
}

func (f *fakeAuthAPI) Credentials() *platform.Credentials { return f.creds }

func (f *fakeAuthAPI) WechatLogin(_ context.Context, code string, _ *client.WechatProfile) (*client.LoginResult, error) {
	f.lastCode = code
	if f.err != nil {
		return nil, f.err
	}
	return f.login, nil
}

func (f *fakeAuthAPI) GetMe(context.Context) (*client.UserInfo, error) {
	f.meCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.me, nil
}

func (f *fakeAuthAPI) UpdateUserInfo(_ context.Context, p client.WechatProfile) (*client.UserInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.updated, nil
}

func (f *fakeAuthAPI) BindAccount(_ context.Context, _, _, code string) (*client.LoginResult, error) {
	f.lastCode = code
	if f.err != nil {
		return nil, f.err
	}
	return f.login, nil
}

func (f *fakeAuthAPI) ScanQRLogin(_ context.Context, qrToken string) (*client.QRStatus, error) {
	f.lastQR = qrToken
	return f.qr, f.err
}

func (f *fakeAuthAPI) ConfirmQRLogin(_ context.Context, qrToken string) (*client.QRStatus, error) {
	f.lastQR = qrToken
	return f.qr, f.err
}

// manualClock is a settable clock.
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// failingStorage fails every call.
type failingStorage struct{ err error }

func (f failingStorage) Get(context.Context, string) (string, error) { return "", f.err }
func (f failingStorage) Set(context.Context, string, string) error   { return f.err }
func (f failingStorage) Remove(context.Context, string) error        { return f.err }
