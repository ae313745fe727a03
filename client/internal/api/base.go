package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/giovan110109-blip/homePageuUni/client/internal/types"
)

// Paths of the backend endpoints, relative to the base URL.
const (
	pathSiteInfo       = "/site-info"
	pathMessages       = "/messages"
	pathComments       = "/comments"
	pathPhotos         = "/photos"
	pathWechatLogin    = "/auth/wechat-login"
	pathMe             = "/auth/me"
	pathUpdateUserInfo = "/auth/update-userinfo"
	pathBindAccount    = "/auth/bind-account"
	pathScanQR         = "/auth/scan-qr"
	pathConfirmQR      = "/auth/confirm-qr"
)

// Page holds one page of list results plus the envelope's pagination block.
type Page[T any] struct {
	Items []T
	Meta  *types.Meta
}

// call issues one request and decodes the envelope data into T.
func call[T any](ctx context.Context, r types.Requester, method, path string, data any) (*types.Response[T], error) {
	env, err := r.Do(ctx, types.Request{Method: method, Path: path, Data: data})
	if err != nil {
		return nil, err
	}
	resp, err := types.Decode[T](env)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

func get[T any](ctx context.Context, r types.Requester, path string, query any) (*types.Response[T], error) {
	return call[T](ctx, r, http.MethodGet, path, query)
}

func post[T any](ctx context.Context, r types.Requester, path string, body any) (*types.Response[T], error) {
	return call[T](ctx, r, http.MethodPost, path, body)
}
