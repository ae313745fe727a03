package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	clienterrors "github.com/giovan110109-blip/homePageuUni/client/internal/errors"
	"github.com/giovan110109-blip/homePageuUni/client/internal/types"
)

func TestGetSiteInfo(t *testing.T) {
	t.Parallel()
	f := replay(t, types.SiteInfo{Name: "Giovan", SiteTitle: "Home"}, nil)
	got, err := GetSiteInfo(context.Background(), f)
	if err != nil || got.Name != "Giovan" || got.SiteTitle != "Home" {
		t.Fatalf("GetSiteInfo unexpected: got=%+v err=%v", got, err)
	}
	if req := f.last(t); req.Method != http.MethodGet || req.Path != "/site-info" || req.Data != nil {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestGetMessages_DefaultsAndMeta(t *testing.T) {
	t.Parallel()
	meta := &types.Meta{Page: 1, PageSize: 10, Total: 25, TotalPages: 3}
	f := replay(t, []types.MessageItem{{ID: "m1"}, {ID: "m2"}}, meta)

	page, err := GetMessages(context.Background(), f, types.MessagesQuery{})
	if err != nil {
		t.Fatalf("GetMessages: %v", err)
	}
	if len(page.Items) != 2 || page.Items[0].ID != "m1" {
		t.Fatalf("unexpected items: %+v", page.Items)
	}
	if page.Meta == nil || *page.Meta != *meta {
		t.Fatalf("unexpected meta: %+v", page.Meta)
	}
	q, ok := f.last(t).Data.(types.MessagesQuery)
	if !ok || q.Page != 1 || q.PageSize != 10 || q.Status != "approved" {
		t.Fatalf("defaults not applied: %+v", f.last(t).Data)
	}
}

func TestGetMessages_RejectsNegativePage(t *testing.T) {
	t.Parallel()
	f := &fakeRequester{}
	_, err := GetMessages(context.Background(), f, types.MessagesQuery{Page: -1})
	if !clienterrors.IsKind(err, clienterrors.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(f.reqs) != 0 {
		t.Fatalf("request sent despite invalid input")
	}
}

func TestGetComments(t *testing.T) {
	t.Parallel()
	f := replay(t, []types.CommentItem{{ID: "c1", TargetID: "p1"}}, nil)
	got, err := GetComments(context.Background(), f, "p1")
	if err != nil || len(got) != 1 || got[0].TargetID != "p1" {
		t.Fatalf("GetComments unexpected: got=%+v err=%v", got, err)
	}
	if q := f.last(t).Data.(types.CommentsQuery); q.TargetID != "p1" {
		t.Fatalf("unexpected query: %+v", q)
	}

	if _, err := GetComments(context.Background(), &fakeRequester{}, " "); !clienterrors.IsKind(err, clienterrors.KindValidation) {
		t.Fatalf("expected validation error for blank target, got %v", err)
	}
}

func TestGetPhotos_Defaults(t *testing.T) {
	t.Parallel()
	f := replay(t, types.PhotoPage{
		Photos:     []types.PhotoItem{{ID: "p1", Width: 4000, Height: 3000}},
		Pagination: types.PhotoPagination{Total: 1, Page: 1, Limit: 20, Pages: 1},
	}, nil)
	got, err := GetPhotos(context.Background(), f, types.PhotosQuery{})
	if err != nil || len(got.Photos) != 1 || got.Pagination.Limit != 20 {
		t.Fatalf("GetPhotos unexpected: got=%+v err=%v", got, err)
	}
	q := f.last(t).Data.(types.PhotosQuery)
	if q.Page != 1 || q.Limit != 20 || q.Visibility != "public" {
		t.Fatalf("defaults not applied: %+v", q)
	}
}

func TestGetPhotoDetail_EscapesID(t *testing.T) {
	t.Parallel()
	f := replay(t, types.PhotoItem{ID: "a/b"}, nil)
	if _, err := GetPhotoDetail(context.Background(), f, "a/b"); err != nil {
		t.Fatalf("GetPhotoDetail: %v", err)
	}
	if p := f.last(t).Path; p != "/photos/a%2Fb" {
		t.Fatalf("path not escaped: %s", p)
	}
	if _, err := GetPhotoDetail(context.Background(), &fakeRequester{}, ""); !clienterrors.IsKind(err, clienterrors.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestWechatLogin(t *testing.T) {
	t.Parallel()
	f := replay(t, types.LoginResult{Token: "tok", User: types.UserInfo{ID: "u1", Role: types.RoleUser}}, nil)
	profile := &types.WechatProfile{NickName: "n", AvatarURL: "a"}
	got, err := WechatLogin(context.Background(), f, "code-1", profile)
	if err != nil || got.Token != "tok" || got.User.ID != "u1" {
		t.Fatalf("WechatLogin unexpected: got=%+v err=%v", got, err)
	}
	req := f.last(t)
	body := req.Data.(types.WechatLoginRequest)
	if req.Method != http.MethodPost || req.Path != "/auth/wechat-login" || body.Code != "code-1" || body.UserInfo != profile {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestAuthEndpoints_Paths(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cases := []struct {
		name string
		path string
		call func(r types.Requester) error
	}{
		{"me", "/auth/me", func(r types.Requester) error { _, err := GetMe(ctx, r); return err }},
		{"update", "/auth/update-userinfo", func(r types.Requester) error {
			_, err := UpdateUserInfo(ctx, r, types.WechatProfile{NickName: "n"})
			return err
		}},
		{"bind", "/auth/bind-account", func(r types.Requester) error {
			_, err := BindAccount(ctx, r, types.BindAccountRequest{Username: "u", Password: "p", Code: "c"})
			return err
		}},
		{"scan", "/auth/scan-qr", func(r types.Requester) error { _, err := ScanQRLogin(ctx, r, "qr"); return err }},
		{"confirm", "/auth/confirm-qr", func(r types.Requester) error { _, err := ConfirmQRLogin(ctx, r, "qr"); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := replay(t, map[string]string{"status": "scanned"}, nil)
			if err := tc.call(f); err != nil {
				t.Fatalf("call: %v", err)
			}
			if p := f.last(t).Path; p != tc.path {
				t.Fatalf("expected path %s, got %s", tc.path, p)
			}
		})
	}
}

func TestBindAccount_RequiresAllFields(t *testing.T) {
	t.Parallel()
	for _, req := range []types.BindAccountRequest{
		{Password: "p", Code: "c"},
		{Username: "u", Code: "c"},
		{Username: "u", Password: "p"},
	} {
		f := &fakeRequester{}
		if _, err := BindAccount(context.Background(), f, req); !clienterrors.IsKind(err, clienterrors.KindValidation) {
			t.Fatalf("expected validation error for %+v, got %v", req, err)
		}
		if len(f.reqs) != 0 {
			t.Fatalf("request sent for %+v", req)
		}
	}
}

func TestQR_RequiresToken(t *testing.T) {
	t.Parallel()
	if _, err := ScanQRLogin(context.Background(), &fakeRequester{}, ""); !clienterrors.IsKind(err, clienterrors.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRequesterErrorPassesThrough(t *testing.T) {
	t.Parallel()
	want := &clienterrors.ClassifiedError{Kind: clienterrors.KindServer, Message: "x", StatusCode: 500}
	_, err := GetMe(context.Background(), &fakeRequester{err: want})
	if !errors.Is(err, want) {
		t.Fatalf("expected requester error, got %v", err)
	}
}

func TestDecodeFailureIsReported(t *testing.T) {
	t.Parallel()
	f := &fakeRequester{env: &types.Envelope{Code: 200, Data: []byte(`"not an object"`)}}
	if _, err := GetSiteInfo(context.Background(), f); err == nil {
		t.Fatalf("expected decode error")
	}
}
