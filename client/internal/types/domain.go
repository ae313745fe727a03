package types

// ------------------------------
// Site
// ------------------------------

// SocialLink is one entry of the owner's social profiles.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

// FooterContact is the contact block rendered in the footer.
type FooterContact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Wechat  string `json:"wechat"`
	Address string `json:"address"`
}

// SiteInfo describes the site owner and site-wide settings.
type SiteInfo struct {
	ID                 string        `json:"_id,omitempty"`
	Name               string        `json:"name"`
	Title              string        `json:"title"`
	Bio                string        `json:"bio"`
	Avatar             string        `json:"avatar"`
	Email              string        `json:"email"`
	Wechat             string        `json:"wechat"`
	Location           string        `json:"location"`
	Website            string        `json:"website"`
	SocialLinks        []SocialLink  `json:"socialLinks"`
	SiteName           string        `json:"siteName"`
	SiteLogo           string        `json:"siteLogo"`
	SiteTitle          string        `json:"siteTitle"`
	SiteDescription    string        `json:"siteDescription"`
	ICP                string        `json:"icp"`
	ICPLink            string        `json:"icpLink"`
	PublicSecurity     string        `json:"publicSecurity"`
	PublicSecurityLink string        `json:"publicSecurityLink"`
	FooterContact      FooterContact `json:"footerContact"`
	CreatedAt          string        `json:"createdAt,omitempty"`
	UpdatedAt          string        `json:"updatedAt,omitempty"`
}

// ------------------------------
// Guestbook and comments
// ------------------------------

// Location is the geo lookup attached to a message or comment.
type Location struct {
	City        string  `json:"city"`
	Region      string  `json:"region"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	ISP         string  `json:"isp"`
	Org         string  `json:"org"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// MessageItem is a guestbook message.
type MessageItem struct {
	ID         string         `json:"_id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Website    string         `json:"website,omitempty"`
	Avatar     string         `json:"avatar,omitempty"`
	Content    string         `json:"content"`
	Status     string         `json:"status"`
	Browser    string         `json:"browser,omitempty"`
	OS         string         `json:"os,omitempty"`
	DeviceType string         `json:"deviceType,omitempty"`
	Location   *Location      `json:"location,omitempty"`
	Reactions  map[string]int `json:"reactions,omitempty"`
	CreatedAt  string         `json:"createdAt"`
	UpdatedAt  string         `json:"updatedAt"`
}

// CommentItem is a comment attached to a target (article, photo, ...).
type CommentItem struct {
	ID         string    `json:"_id"`
	TargetID   string    `json:"targetId"`
	ParentID   *string   `json:"parentId,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Website    string    `json:"website,omitempty"`
	Avatar     string    `json:"avatar,omitempty"`
	Content    string    `json:"content"`
	Status     string    `json:"status"`
	Browser    string    `json:"browser,omitempty"`
	OS         string    `json:"os,omitempty"`
	DeviceType string    `json:"deviceType,omitempty"`
	Location   *Location `json:"location,omitempty"`
	CreatedAt  string    `json:"createdAt"`
	UpdatedAt  string    `json:"updatedAt"`
}

// ------------------------------
// Photos
// ------------------------------

// GeoPoint is the raw coordinate of a photo.
type GeoPoint struct {
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Coordinates []float64 `json:"coordinates,omitempty"`
}

// GeoInfo is the reverse-geocoded place of a photo.
type GeoInfo struct {
	Country      string `json:"country,omitempty"`
	Region       string `json:"region,omitempty"`
	City         string `json:"city,omitempty"`
	LocationName string `json:"locationName,omitempty"`
	Formatted    string `json:"formatted,omitempty"`
}

// Camera holds EXIF data.
type Camera struct {
	Make         string `json:"make,omitempty"`
	Model        string `json:"model,omitempty"`
	Lens         string `json:"lens,omitempty"`
	FocalLength  string `json:"focalLength,omitempty"`
	Aperture     string `json:"aperture,omitempty"`
	ShutterSpeed string `json:"shutterSpeed,omitempty"`
	ISO          int    `json:"iso,omitempty"`
}

// PhotoItem is one photo of the gallery.
type PhotoItem struct {
	ID               string    `json:"_id"`
	Title            string    `json:"title,omitempty"`
	Description      string    `json:"description,omitempty"`
	OriginalFileName string    `json:"originalFileName"`
	StorageKey       string    `json:"storageKey"`
	Width            int       `json:"width"`
	Height           int       `json:"height"`
	AspectRatio      float64   `json:"aspectRatio"`
	OriginalURL      string    `json:"originalUrl"`
	OriginalFileURL  string    `json:"originalFileUrl,omitempty"`
	ThumbnailURL     string    `json:"thumbnailUrl,omitempty"`
	ThumbnailHash    string    `json:"thumbnailHash,omitempty"`
	IsLive           bool      `json:"isLive,omitempty"`
	VideoURL         string    `json:"videoUrl,omitempty"`
	DateTaken        string    `json:"dateTaken,omitempty"`
	Location         *GeoPoint `json:"location,omitempty"`
	GeoInfo          *GeoInfo  `json:"geoinfo,omitempty"`
	Camera           *Camera   `json:"camera,omitempty"`
	Tags             []string  `json:"tags,omitempty"`
	Views            int       `json:"views,omitempty"`
	CreatedAt        string    `json:"createdAt"`
	UpdatedAt        string    `json:"updatedAt"`
}

// PhotoPagination is the paging block of the photo listing.
type PhotoPagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// PhotoPage is the data payload of GET /photos.
type PhotoPage struct {
	Photos     []PhotoItem     `json:"photos"`
	Pagination PhotoPagination `json:"pagination"`
}

// ------------------------------
// Auth
// ------------------------------

// Roles returned by the backend.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// UserInfo is the authenticated user.
type UserInfo struct {
	ID             string `json:"_id"`
	Nickname       string `json:"nickname,omitempty"`
	Avatar         string `json:"avatar,omitempty"`
	Role           string `json:"role"`
	WechatNickname string `json:"wechatNickname,omitempty"`
	WechatAvatar   string `json:"wechatAvatar,omitempty"`
}

// LoginResult is returned by login and account binding.
type LoginResult struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// QRStatus is returned by the QR-login endpoints.
type QRStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
