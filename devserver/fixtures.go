package devserver

import (
	"fmt"
	"time"

	"github.com/giovan110109-blip/homePageuUni/client"
)

// Account is a username/password login that can be bound to a platform
// identity.
type Account struct {
	Password string
	User     client.UserInfo
}

// Fixtures is the content served by the development backend.
type Fixtures struct {
	SiteInfo client.SiteInfo
	Messages []client.MessageItem
	Comments []client.CommentItem
	Photos   []client.PhotoItem
	Accounts map[string]Account
}

// DefaultFixtures returns a small, deterministic data set.
func DefaultFixtures() Fixtures {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	stamp := func(i int) string { return base.Add(time.Duration(i) * time.Hour).Format(time.RFC3339) }

	f := Fixtures{
		SiteInfo: client.SiteInfo{
			ID:              "site",
			Name:            "Giovan",
			Title:           "Full-stack developer",
			Bio:             "Writing code and taking photos.",
			Avatar:          "https://cdn.example.com/avatar.png",
			Email:           "hello@example.com",
			Location:        "Hangzhou",
			Website:         "https://example.com",
			SocialLinks:     []client.SocialLink{{Platform: "github", URL: "https://github.com/example", Icon: "github"}},
			SiteName:        "Giovan's Home",
			SiteTitle:       "Home",
			SiteDescription: "Personal homepage",
			ICP:             "浙ICP备00000000号",
			FooterContact:   client.FooterContact{Email: "hello@example.com"},
			CreatedAt:       stamp(0),
			UpdatedAt:       stamp(0),
		},
		Accounts: map[string]Account{
			"admin": {Password: "admin123", User: client.UserInfo{ID: "admin-1", Nickname: "Admin", Role: client.RoleAdmin}},
		},
	}

	for i := 1; i <= 25; i++ {
		f.Messages = append(f.Messages, client.MessageItem{
			ID:        fmt.Sprintf("msg-%02d", i),
			Name:      fmt.Sprintf("Visitor %d", i),
			Email:     fmt.Sprintf("visitor%d@example.com", i),
			Content:   fmt.Sprintf("Message number %d", i),
			Status:    "approved",
			CreatedAt: stamp(i),
			UpdatedAt: stamp(i),
		})
	}
	f.Messages = append(f.Messages, client.MessageItem{
		ID: "msg-pending", Name: "Spammer", Content: "pending review", Status: "pending",
		CreatedAt: stamp(30), UpdatedAt: stamp(30),
	})

	for i := 1; i <= 45; i++ {
		f.Photos = append(f.Photos, client.PhotoItem{
			ID:               fmt.Sprintf("photo-%02d", i),
			Title:            fmt.Sprintf("Photo %d", i),
			OriginalFileName: fmt.Sprintf("IMG_%04d.JPG", i),
			StorageKey:       fmt.Sprintf("photos/%04d.jpg", i),
			Width:            4000,
			Height:           3000,
			AspectRatio:      4.0 / 3.0,
			OriginalURL:      fmt.Sprintf("https://cdn.example.com/photos/%04d.jpg", i),
			CreatedAt:        stamp(i),
			UpdatedAt:        stamp(i),
		})
	}

	f.Comments = []client.CommentItem{
		{ID: "c-1", TargetID: "photo-01", Name: "Ann", Content: "Nice light", Status: "approved", CreatedAt: stamp(2), UpdatedAt: stamp(2)},
		{ID: "c-2", TargetID: "photo-01", Name: "Bo", Content: "Where is this?", Status: "approved", CreatedAt: stamp(3), UpdatedAt: stamp(3)},
		{ID: "c-3", TargetID: "photo-02", Name: "Cy", Content: "Love it", Status: "approved", CreatedAt: stamp(4), UpdatedAt: stamp(4)},
	}
	return f
}
