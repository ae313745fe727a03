package api

import (
	"context"

	"github.com/giovan110109-blip/homePageuUni/client/internal/types"
)

// WechatLogin exchanges a platform login code for a token. profile may be nil.
func WechatLogin(ctx context.Context, r types.Requester, code string, profile *types.WechatProfile) (*types.LoginResult, error) {
	if err := types.ValidateIDPresent(code, "code"); err != nil {
		return nil, err
	}
	resp, err := post[types.LoginResult](ctx, r, pathWechatLogin, types.WechatLoginRequest{Code: code, UserInfo: profile})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// GetMe returns the user owning the current token.
func GetMe(ctx context.Context, r types.Requester) (*types.UserInfo, error) {
	resp, err := get[types.UserInfo](ctx, r, pathMe, nil)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UpdateUserInfo replaces the nickname and avatar of the current user.
func UpdateUserInfo(ctx context.Context, r types.Requester, profile types.WechatProfile) (*types.UserInfo, error) {
	resp, err := post[types.UserInfo](ctx, r, pathUpdateUserInfo, types.UpdateUserInfoRequest{UserInfo: profile})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// BindAccount links a username/password account to the platform identity
// behind code.
func BindAccount(ctx context.Context, r types.Requester, req types.BindAccountRequest) (*types.LoginResult, error) {
	if err := types.ValidateIDPresent(req.Username, "username"); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(req.Password, "password"); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(req.Code, "code"); err != nil {
		return nil, err
	}
	resp, err := post[types.LoginResult](ctx, r, pathBindAccount, req)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ScanQRLogin marks a desktop QR login token as scanned.
func ScanQRLogin(ctx context.Context, r types.Requester, qrToken string) (*types.QRStatus, error) {
	return qr(ctx, r, pathScanQR, qrToken)
}

// ConfirmQRLogin approves a scanned QR login token.
func ConfirmQRLogin(ctx context.Context, r types.Requester, qrToken string) (*types.QRStatus, error) {
	return qr(ctx, r, pathConfirmQR, qrToken)
}

func qr(ctx context.Context, r types.Requester, path, qrToken string) (*types.QRStatus, error) {
	if err := types.ValidateIDPresent(qrToken, "qrToken"); err != nil {
		return nil, err
	}
	resp, err := post[types.QRStatus](ctx, r, path, types.QRTokenRequest{QRToken: qrToken})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
