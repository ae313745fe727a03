package client

import (
	"context"

	"github.com/giovan110109-blip/homePageuUni/client/internal/api"
	"github.com/giovan110109-blip/homePageuUni/client/internal/types"
)

// MessagePage is one page of guestbook messages plus pagination metadata.
type MessagePage = api.Page[MessageItem]

// ---------------- Site info ----------------

// GetSiteInfo fetches the site profile.
func (c *Client) GetSiteInfo(ctx context.Context) (*SiteInfo, error) {
	v, err := api.GetSiteInfo(ctx, c)
	return v, c.classified(ctx, err)
}

// ---------------- Guestbook ----------------

// GetMessages returns a page of messages; zero query fields take
// page=1, pageSize=10 and status=approved.
func (c *Client) GetMessages(ctx context.Context, q MessagesQuery) (*MessagePage, error) {
	v, err := api.GetMessages(ctx, c, q)
	return v, c.classified(ctx, err)
}

// GetComments lists the comments attached to targetID.
func (c *Client) GetComments(ctx context.Context, targetID string) ([]CommentItem, error) {
	v, err := api.GetComments(ctx, c, targetID)
	return v, c.classified(ctx, err)
}

// ---------------- Gallery ----------------

// GetPhotos returns a page of photos; zero query fields take page=1,
// limit=20 and visibility=public.
func (c *Client) GetPhotos(ctx context.Context, q PhotosQuery) (*PhotoPage, error) {
	v, err := api.GetPhotos(ctx, c, q)
	return v, c.classified(ctx, err)
}

// GetPhotoDetail fetches one photo by id.
func (c *Client) GetPhotoDetail(ctx context.Context, id string) (*PhotoItem, error) {
	v, err := api.GetPhotoDetail(ctx, c, id)
	return v, c.classified(ctx, err)
}

// ---------------- Auth ----------------

// WechatLogin exchanges a platform login code for a token. The token is not
// stored; callers decide when to persist it.
func (c *Client) WechatLogin(ctx context.Context, code string, profile *WechatProfile) (*LoginResult, error) {
	v, err := api.WechatLogin(ctx, c, code, profile)
	return v, c.classified(ctx, err)
}

// GetMe returns the user owning the stored token.
func (c *Client) GetMe(ctx context.Context) (*UserInfo, error) {
	v, err := api.GetMe(ctx, c)
	return v, c.classified(ctx, err)
}

// UpdateUserInfo replaces the current user's nickname and avatar.
func (c *Client) UpdateUserInfo(ctx context.Context, profile WechatProfile) (*UserInfo, error) {
	v, err := api.UpdateUserInfo(ctx, c, profile)
	return v, c.classified(ctx, err)
}

// BindAccount links a username/password account to the platform identity.
func (c *Client) BindAccount(ctx context.Context, username, password, code string) (*LoginResult, error) {
	v, err := api.BindAccount(ctx, c, types.BindAccountRequest{Username: username, Password: password, Code: code})
	return v, c.classified(ctx, err)
}

// ScanQRLogin marks a QR login token as scanned.
func (c *Client) ScanQRLogin(ctx context.Context, qrToken string) (*QRStatus, error) {
	v, err := api.ScanQRLogin(ctx, c, qrToken)
	return v, c.classified(ctx, err)
}

// ConfirmQRLogin approves a scanned QR login token.
func (c *Client) ConfirmQRLogin(ctx context.Context, qrToken string) (*QRStatus, error) {
	v, err := api.ConfirmQRLogin(ctx, c, qrToken)
	return v, c.classified(ctx, err)
}

// classified makes sure every error leaving the API surface is a
// *ClassifiedError with its notice shown. Errors from Do were already shown
// and pass through without a second notice.
func (c *Client) classified(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	return c.classifier.Classify(ctx, err, true)
}
