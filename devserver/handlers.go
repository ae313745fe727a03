package devserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/giovan110109-blip/homePageuUni/client"
	"github.com/giovan110109-blip/homePageuUni/devserver/internal/respond"
)

type handlers struct {
	fx       Fixtures
	sessions *sessions
}

func (h *handlers) siteInfo(w http.ResponseWriter, r *http.Request) {
	respond.WriteOK(w, h.fx.SiteInfo)
}

func (h *handlers) messages(w http.ResponseWriter, r *http.Request) {
	page, size, ok := pageParams(w, r, "pageSize", 10)
	if !ok {
		return
	}
	status := r.URL.Query().Get("status")
	if status == "" {
		status = "approved"
	}
	var matched []client.MessageItem
	for _, m := range h.fx.Messages {
		if m.Status == status {
			matched = append(matched, m)
		}
	}
	items, meta := paginate(matched, page, size)
	respond.WritePage(w, items, meta)
}

func (h *handlers) comments(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("targetId")
	if target == "" {
		respond.WriteValidation(w, "targetId is required")
		return
	}
	out := []client.CommentItem{}
	for _, c := range h.fx.Comments {
		if c.TargetID == target {
			out = append(out, c)
		}
	}
	respond.WriteOK(w, out)
}

func (h *handlers) photos(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := pageParams(w, r, "limit", 20)
	if !ok {
		return
	}
	if v := r.URL.Query().Get("visibility"); v != "" && v != "public" {
		respond.WriteOK(w, client.PhotoPage{Photos: []client.PhotoItem{}, Pagination: client.PhotoPagination{Page: page, Limit: limit}})
		return
	}
	items, meta := paginate(h.fx.Photos, page, limit)
	respond.WriteOK(w, client.PhotoPage{
		Photos:     items,
		Pagination: client.PhotoPagination{Total: meta.Total, Page: meta.Page, Limit: meta.PageSize, Pages: meta.TotalPages},
	})
}

func (h *handlers) photoDetail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	for _, p := range h.fx.Photos {
		if p.ID == id {
			respond.WriteOK(w, p)
			return
		}
	}
	respond.WriteNotFound(w, "photo not found")
}

func (h *handlers) wechatLogin(w http.ResponseWriter, r *http.Request) {
	var in client.WechatLoginRequest
	if !decode(w, r, &in) {
		return
	}
	if in.Code == "" {
		respond.WriteValidation(w, "code is required")
		return
	}
	respond.WriteOK(w, h.sessions.login(in.Code, in.UserInfo))
}

func (h *handlers) me(w http.ResponseWriter, r *http.Request) {
	u, _, ok := h.authenticate(w, r)
	if !ok {
		return
	}
	respond.WriteOK(w, u)
}

func (h *handlers) updateUserInfo(w http.ResponseWriter, r *http.Request) {
	u, _, ok := h.authenticate(w, r)
	if !ok {
		return
	}
	var in client.UpdateUserInfoRequest
	if !decode(w, r, &in) {
		return
	}
	respond.WriteOK(w, h.sessions.update(u.ID, in.UserInfo))
}

func (h *handlers) bindAccount(w http.ResponseWriter, r *http.Request) {
	var in client.BindAccountRequest
	if !decode(w, r, &in) {
		return
	}
	if in.Username == "" || in.Password == "" || in.Code == "" {
		respond.WriteValidation(w, "username, password and code are required")
		return
	}
	res, err := h.sessions.bind(in.Username, in.Password, in.Code)
	if err != nil {
		respond.WriteValidation(w, err.Error())
		return
	}
	respond.WriteOK(w, res)
}

func (h *handlers) logout(w http.ResponseWriter, r *http.Request) {
	_, tok, ok := h.authenticate(w, r)
	if !ok {
		return
	}
	h.sessions.revoke(tok)
	respond.WriteOK(w, nil)
}

func (h *handlers) newQR(w http.ResponseWriter, r *http.Request) {
	respond.WriteOK(w, map[string]string{"qrToken": h.sessions.newQR()})
}

func (h *handlers) qrStatus(w http.ResponseWriter, r *http.Request) {
	st, ok := h.sessions.qrStatus(mux.Vars(r)["token"])
	if !ok {
		respond.WriteNotFound(w, errUnknownQR.Error())
		return
	}
	respond.WriteOK(w, client.QRStatus{Status: st})
}

func (h *handlers) scanQR(w http.ResponseWriter, r *http.Request) {
	h.advanceQR(w, r, QRPending, QRScanned, "扫码成功，请在手机上确认")
}

func (h *handlers) confirmQR(w http.ResponseWriter, r *http.Request) {
	h.advanceQR(w, r, QRScanned, QRConfirmed, "登录已确认")
}

func (h *handlers) advanceQR(w http.ResponseWriter, r *http.Request, from, to, msg string) {
	u, _, ok := h.authenticate(w, r)
	if !ok {
		return
	}
	var in client.QRTokenRequest
	if !decode(w, r, &in) {
		return
	}
	if in.QRToken == "" {
		respond.WriteValidation(w, "qrToken is required")
		return
	}
	switch err := h.sessions.advanceQR(in.QRToken, u.ID, from, to); err {
	case nil:
		respond.WriteOK(w, client.QRStatus{Status: to, Message: msg})
	case errUnknownQR:
		respond.WriteNotFound(w, err.Error())
	default:
		respond.WriteValidation(w, err.Error())
	}
}

// authenticate resolves the bearer token or answers 401.
func (h *handlers) authenticate(w http.ResponseWriter, r *http.Request) (client.UserInfo, string, bool) {
	tok := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if tok == "" {
		respond.WriteUnauthorized(w, "missing token")
		return client.UserInfo{}, "", false
	}
	u, ok := h.sessions.user(tok)
	if !ok {
		respond.WriteUnauthorized(w, "invalid token")
		return client.UserInfo{}, "", false
	}
	return u, tok, true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return false
	}
	return true
}

// pageParams reads page and the named size parameter, applying defaults.
func pageParams(w http.ResponseWriter, r *http.Request, sizeName string, defSize int) (int, int, bool) {
	q := r.URL.Query()
	page, size := 1, defSize
	for _, p := range []struct {
		name string
		dst  *int
	}{{"page", &page}, {sizeName, &size}} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respond.WriteValidation(w, p.name+" must be a positive integer")
			return 0, 0, false
		}
		*p.dst = n
	}
	return page, size, true
}

func paginate[T any](all []T, page, size int) ([]T, respond.Meta) {
	total := len(all)
	meta := respond.Meta{Page: page, PageSize: size, Total: total, TotalPages: (total + size - 1) / size}
	start := (page - 1) * size
	if start >= total {
		return []T{}, meta
	}
	end := start + size
	if end > total {
		end = total
	}
	return all[start:end], meta
}
