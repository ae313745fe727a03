package devserver

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giovan110109-blip/homePageuUni/client"
	"github.com/giovan110109-blip/homePageuUni/platform"
	"github.com/giovan110109-blip/homePageuUni/platform/platformtest"
)

type fixture struct {
	srv    *Server
	http   *httptest.Server
	client *client.Client
	ui     *platformtest.RecordingUI
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	srv := New(DefaultFixtures(), zerolog.Nop())
	hs := httptest.NewServer(srv.Handler())
	t.Cleanup(hs.Close)

	ui := &platformtest.RecordingUI{}
	c, err := client.New(hs.URL+"/api", platform.Combine(platform.NewMemoryStorage(), ui),
		client.WithRetryDefaults(3, time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return &fixture{srv: srv, http: hs, client: c, ui: ui}
}

func TestSiteInfo(t *testing.T) {
	f := newFixture(t)
	info, err := f.client.GetSiteInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Giovan", info.Name)
}

func TestMessages_ExactEnvelope(t *testing.T) {
	f := newFixture(t)
	resp, err := http.Get(f.http.URL + "/api/messages?page=1&pageSize=10")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"meta":{"page":1,"pageSize":10,"total":25,"totalPages":3}`)
	assert.True(t, strings.HasPrefix(string(body), `{"code":200,"message":"success","data":[`))

	page, err := f.client.GetMessages(context.Background(), client.MessagesQuery{Page: 3})
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 3, page.Meta.TotalPages)
}

func TestMessages_BadPageIsValidationError(t *testing.T) {
	f := newFixture(t)
	_, err := f.client.Get(context.Background(), "/messages", map[string]string{"page": "zero"})
	assert.True(t, client.IsKind(err, client.KindValidation))
}

func TestComments(t *testing.T) {
	f := newFixture(t)
	got, err := f.client.GetComments(context.Background(), "photo-01")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = f.client.GetComments(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPhotos(t *testing.T) {
	f := newFixture(t)
	page, err := f.client.GetPhotos(context.Background(), client.PhotosQuery{Page: 3})
	require.NoError(t, err)
	assert.Len(t, page.Photos, 5)
	assert.Equal(t, 45, page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.Pages)

	p, err := f.client.GetPhotoDetail(context.Background(), "photo-07")
	require.NoError(t, err)
	assert.Equal(t, "Photo 7", p.Title)

	_, err = f.client.GetPhotoDetail(context.Background(), "missing")
	assert.True(t, client.IsKind(err, client.KindNotFound))
}

func TestAuthFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.client.GetMe(ctx)
	assert.True(t, client.IsKind(err, client.KindUnauthorized))

	res, err := f.client.WechatLogin(ctx, "code-1", &client.WechatProfile{NickName: "Nick", AvatarURL: "a.png"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, "Nick", res.User.WechatNickname)
	require.NoError(t, f.client.Credentials().Set(ctx, res.Token))

	me, err := f.client.GetMe(ctx)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, me.ID)

	upd, err := f.client.UpdateUserInfo(ctx, client.WechatProfile{NickName: "New", AvatarURL: "b.png"})
	require.NoError(t, err)
	assert.Equal(t, "New", upd.Nickname)

	again, err := f.client.WechatLogin(ctx, "code-1", nil)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, again.User.ID, "same code maps to the same user")
}

func TestBindAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.client.BindAccount(ctx, "admin", "wrong", "code-x")
	assert.True(t, client.IsKind(err, client.KindValidation))

	res, err := f.client.BindAccount(ctx, "admin", "admin123", "code-x")
	require.NoError(t, err)
	assert.Equal(t, client.RoleAdmin, res.User.Role)
}

func TestQRLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res, err := f.client.WechatLogin(ctx, "phone", nil)
	require.NoError(t, err)
	require.NoError(t, f.client.Credentials().Set(ctx, res.Token))

	qr := f.srv.NewQRToken()
	_, err = f.client.ConfirmQRLogin(ctx, qr)
	assert.True(t, client.IsKind(err, client.KindValidation), "confirm before scan must fail")

	st, err := f.client.ScanQRLogin(ctx, qr)
	require.NoError(t, err)
	assert.Equal(t, QRScanned, st.Status)

	st, err = f.client.ConfirmQRLogin(ctx, qr)
	require.NoError(t, err)
	assert.Equal(t, QRConfirmed, st.Status)

	_, err = f.client.ScanQRLogin(ctx, "unknown")
	assert.True(t, client.IsKind(err, client.KindNotFound))
}

func TestInvalidTokenClearsCredential(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.client.Credentials().Set(ctx, "forged"))

	_, err := f.client.GetMe(ctx)
	assert.True(t, client.IsKind(err, client.KindUnauthorized))
	_, ok, err := f.client.Credentials().Token(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFaultInjection_RetriedThenSucceeds(t *testing.T) {
	f := newFixture(t)
	f.srv.FailNext("/api/site-info", http.StatusServiceUnavailable, 2)

	info, err := f.client.GetSiteInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Giovan", info.Name)
	_, _, notices, _ := f.ui.Snapshot()
	assert.Empty(t, notices)
}

func TestFaultInjection_Exhausted(t *testing.T) {
	f := newFixture(t)
	f.srv.FailNext("/api/site-info", http.StatusInternalServerError, 10)

	_, err := f.client.GetSiteInfo(context.Background())
	assert.True(t, client.IsKind(err, client.KindServer))
	_, _, notices, _ := f.ui.Snapshot()
	assert.Equal(t, []string{client.KindServer.Message()}, notices)
}

func TestMetricsAndHealth(t *testing.T) {
	f := newFixture(t)
	resp, err := http.Get(f.http.URL + "/api/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(f.http.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "homepage_devserver_requests_total")
}

func TestUnknownRouteIsEnvelope404(t *testing.T) {
	f := newFixture(t)
	_, err := f.client.Get(context.Background(), "/nope", nil)
	assert.True(t, client.IsKind(err, client.KindNotFound))
}

func TestPaginate(t *testing.T) {
	items, meta := paginate([]int{1, 2, 3, 4, 5}, 2, 2)
	assert.Equal(t, []int{3, 4}, items)
	assert.Equal(t, 3, meta.TotalPages)

	items, _ = paginate([]int{1}, 5, 10)
	assert.Empty(t, items)
}
