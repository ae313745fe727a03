package store

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/giovan110109-blip/homePageuUni/client"
	"github.com/giovan110109-blip/homePageuUni/platform"
)

// LoginSucceededMessage is shown after a successful login or account binding.
const LoginSucceededMessage = "登录成功"

// User is the session container. The token lives in the client's credential
// store so a 401 clearing it is immediately visible here.
type User struct {
	api  AuthAPI
	ui   platform.UI
	opts options

	mu   sync.RWMutex
	info *client.UserInfo
}

// NewUser returns a container with no user loaded. ui may be nil.
func NewUser(api AuthAPI, ui platform.UI, opts ...Option) *User {
	if ui == nil {
		ui = platform.NopUI{}
	}
	return &User{api: api, ui: ui, opts: applyOptions(opts)}
}

// Token returns the stored token, or "" when logged out.
func (u *User) Token(ctx context.Context) string {
	tok, ok, err := u.api.Credentials().Token(ctx)
	if err != nil {
		u.opts.log.Warn().Err(err).Msg("read token failed")
		return ""
	}
	if !ok {
		return ""
	}
	return tok
}

// UserInfo returns the loaded user, or nil.
func (u *User) UserInfo() *client.UserInfo {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.info
}

// IsLoggedIn reports whether both a token and a user are present.
func (u *User) IsLoggedIn(ctx context.Context) bool {
	return u.Token(ctx) != "" && u.UserInfo() != nil
}

// SetToken persists a new token.
func (u *User) SetToken(ctx context.Context, token string) error {
	if err := u.api.Credentials().Set(ctx, token); err != nil {
		return errors.Wrap(err, "store token")
	}
	return nil
}

// SetUserInfo replaces the loaded user.
func (u *User) SetUserInfo(info *client.UserInfo) {
	u.mu.Lock()
	u.info = info
	u.mu.Unlock()
}

// Login exchanges a platform login code for a session. profile may be nil
// when the user declined to share it.
func (u *User) Login(ctx context.Context, code string, profile *client.WechatProfile) (*client.UserInfo, error) {
	res, err := u.api.WechatLogin(ctx, code, profile)
	if err != nil {
		u.opts.log.Error().Err(err).Msg("wechat login failed")
		return nil, err
	}
	if err := u.establish(ctx, res); err != nil {
		return nil, err
	}
	u.ui.Notify(LoginSucceededMessage)
	return &res.User, nil
}

// FetchUserInfo loads the user behind the stored token. Without a token it
// does nothing. Any failure logs the session out.
func (u *User) FetchUserInfo(ctx context.Context) error {
	if u.Token(ctx) == "" {
		return nil
	}
	info, err := u.api.GetMe(ctx)
	if err != nil {
		u.opts.log.Error().Err(err).Msg("fetch user info failed; logging out")
		if lerr := u.Logout(ctx); lerr != nil {
			u.opts.log.Error().Err(lerr).Msg("logout failed")
		}
		return err
	}
	u.SetUserInfo(info)
	return nil
}

// UpdateProfile replaces the nickname and avatar of the current user.
func (u *User) UpdateProfile(ctx context.Context, profile client.WechatProfile) (*client.UserInfo, error) {
	info, err := u.api.UpdateUserInfo(ctx, profile)
	if err != nil {
		return nil, err
	}
	u.SetUserInfo(info)
	return info, nil
}

// BindAccount links a username/password account and adopts the returned
// session.
func (u *User) BindAccount(ctx context.Context, username, password, code string) (*client.UserInfo, error) {
	res, err := u.api.BindAccount(ctx, username, password, code)
	if err != nil {
		return nil, err
	}
	if err := u.establish(ctx, res); err != nil {
		return nil, err
	}
	u.ui.Notify(LoginSucceededMessage)
	return &res.User, nil
}

// ScanQR marks a desktop QR login as scanned by this user.
func (u *User) ScanQR(ctx context.Context, qrToken string) (*client.QRStatus, error) {
	return u.api.ScanQRLogin(ctx, qrToken)
}

// ConfirmQR approves a scanned desktop QR login.
func (u *User) ConfirmQR(ctx context.Context, qrToken string) (*client.QRStatus, error) {
	return u.api.ConfirmQRLogin(ctx, qrToken)
}

// Logout drops the user and removes the token.
func (u *User) Logout(ctx context.Context) error {
	u.SetUserInfo(nil)
	if err := u.api.Credentials().Clear(ctx); err != nil {
		return errors.Wrap(err, "clear token")
	}
	return nil
}

// Init loads the user when a token survived from a previous run.
func (u *User) Init(ctx context.Context) error {
	return u.FetchUserInfo(ctx)
}

func (u *User) establish(ctx context.Context, res *client.LoginResult) error {
	if res.Token == "" {
		return errors.New("login response carried no token")
	}
	if err := u.SetToken(ctx, res.Token); err != nil {
		return err
	}
	user := res.User
	u.SetUserInfo(&user)
	return nil
}
