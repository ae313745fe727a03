package client

import "github.com/giovan110109-blip/homePageuUni/client/internal/types"

// Public type aliases so consumers can import only the client package.
type (
	// Transport
	Request  = types.Request
	Envelope = types.Envelope
	Meta     = types.Meta

	// Requests
	WechatProfile         = types.WechatProfile
	WechatLoginRequest    = types.WechatLoginRequest
	UpdateUserInfoRequest = types.UpdateUserInfoRequest
	BindAccountRequest    = types.BindAccountRequest
	QRTokenRequest        = types.QRTokenRequest
	MessagesQuery         = types.MessagesQuery
	PhotosQuery           = types.PhotosQuery
	CommentsQuery         = types.CommentsQuery

	// Domain entities
	SiteInfo        = types.SiteInfo
	SocialLink      = types.SocialLink
	FooterContact   = types.FooterContact
	Location        = types.Location
	MessageItem     = types.MessageItem
	CommentItem     = types.CommentItem
	PhotoItem       = types.PhotoItem
	PhotoPage       = types.PhotoPage
	PhotoPagination = types.PhotoPagination
	UserInfo        = types.UserInfo
	LoginResult     = types.LoginResult
	QRStatus        = types.QRStatus
)

// Role values carried by UserInfo.
const (
	RoleAdmin = types.RoleAdmin
	RoleUser  = types.RoleUser
)
