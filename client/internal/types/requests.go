package types

// ------------------------------
// Request Types
// ------------------------------

// WechatProfile is the optional profile shared on login.
type WechatProfile struct {
	NickName  string `json:"nickName"`
	AvatarURL string `json:"avatarUrl"`
}

// WechatLoginRequest is the body of POST /auth/wechat-login.
type WechatLoginRequest struct {
	Code     string         `json:"code"`
	UserInfo *WechatProfile `json:"userInfo,omitempty"`
}

// UpdateUserInfoRequest is the body of POST /auth/update-userinfo.
type UpdateUserInfoRequest struct {
	UserInfo WechatProfile `json:"userInfo"`
}

// BindAccountRequest is the body of POST /auth/bind-account.
type BindAccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Code     string `json:"code"`
}

// QRTokenRequest is the body of the QR-login endpoints.
type QRTokenRequest struct {
	QRToken string `json:"qrToken"`
}

// MessagesQuery pages through guestbook messages.
type MessagesQuery struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Status   string `json:"status"`
}

// PhotosQuery pages through the gallery.
type PhotosQuery struct {
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Visibility string `json:"visibility"`
}

// CommentsQuery selects comments of one target.
type CommentsQuery struct {
	TargetID string `json:"targetId"`
}
