package devserver

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/giovan110109-blip/homePageuUni/client"
)

// QR login states.
const (
	QRPending   = "pending"
	QRScanned   = "scanned"
	QRConfirmed = "confirmed"
)

var (
	errUnknownQR   = errors.New("qr token not found")
	errQRState     = errors.New("qr token in wrong state")
	errBadPassword = errors.New("用户名或密码错误")
)

type qrTicket struct {
	status string
	userID string
}

// sessions is the in-memory user, token and QR ticket table.
type sessions struct {
	mu       sync.Mutex
	users    map[string]*client.UserInfo // by user id
	byCode   map[string]string           // login code -> user id
	tokens   map[string]string           // token -> user id
	qr       map[string]*qrTicket
	accounts map[string]Account
}

func newSessions(accounts map[string]Account) *sessions {
	s := &sessions{
		users:    map[string]*client.UserInfo{},
		byCode:   map[string]string{},
		tokens:   map[string]string{},
		qr:       map[string]*qrTicket{},
		accounts: map[string]Account{},
	}
	for name, acc := range accounts {
		s.accounts[name] = acc
		u := acc.User
		s.users[u.ID] = &u
	}
	return s
}

// login finds or creates the user behind code and issues a token.
func (s *sessions) login(code string, profile *client.WechatProfile) client.LoginResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byCode[code]
	if !ok {
		id = uuid.NewString()
		s.byCode[code] = id
		s.users[id] = &client.UserInfo{ID: id, Role: client.RoleUser}
	}
	u := s.users[id]
	if profile != nil {
		u.WechatNickname = profile.NickName
		u.WechatAvatar = profile.AvatarURL
		if u.Nickname == "" {
			u.Nickname = profile.NickName
		}
		if u.Avatar == "" {
			u.Avatar = profile.AvatarURL
		}
	}
	return s.issueLocked(id)
}

// bind links code to the account's user and issues a token for it.
func (s *sessions) bind(username, password, code string) (client.LoginResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok || acc.Password != password {
		return client.LoginResult{}, errBadPassword
	}
	s.byCode[code] = acc.User.ID
	return s.issueLocked(acc.User.ID), nil
}

func (s *sessions) issueLocked(userID string) client.LoginResult {
	tok := uuid.NewString()
	s.tokens[tok] = userID
	return client.LoginResult{Token: tok, User: *s.users[userID]}
}

// user resolves a bearer token.
func (s *sessions) user(token string) (client.UserInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.tokens[token]
	if !ok {
		return client.UserInfo{}, false
	}
	return *s.users[id], true
}

func (s *sessions) update(userID string, profile client.WechatProfile) client.UserInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.users[userID]
	u.Nickname = profile.NickName
	u.Avatar = profile.AvatarURL
	return *u
}

func (s *sessions) revoke(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}

// newQR opens a pending QR login ticket.
func (s *sessions) newQR() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	tok := uuid.NewString()
	s.qr[tok] = &qrTicket{status: QRPending}
	return tok
}

// advanceQR moves ticket from state from to state to on behalf of userID.
func (s *sessions) advanceQR(qrToken, userID, from, to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.qr[qrToken]
	if !ok {
		return errUnknownQR
	}
	if t.status != from || (t.userID != "" && t.userID != userID) {
		return errQRState
	}
	t.status = to
	t.userID = userID
	return nil
}

func (s *sessions) qrStatus(qrToken string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.qr[qrToken]
	if !ok {
		return "", false
	}
	return t.status, true
}
