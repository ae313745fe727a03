package api

import (
	"context"

	"github.com/giovan110109-blip/homePageuUni/client/internal/types"
)

// Defaults of the guestbook listing.
const (
	DefaultMessagesPage     = 1
	DefaultMessagesPageSize = 10
	DefaultMessagesStatus   = "approved"
)

// GetMessages returns one page of guestbook messages. Zero fields of q take
// the defaults above.
func GetMessages(ctx context.Context, r types.Requester, q types.MessagesQuery) (*Page[types.MessageItem], error) {
	if q.Page == 0 {
		q.Page = DefaultMessagesPage
	}
	if q.PageSize == 0 {
		q.PageSize = DefaultMessagesPageSize
	}
	if q.Status == "" {
		q.Status = DefaultMessagesStatus
	}
	if err := types.ValidatePage(q.Page, q.PageSize, "pageSize"); err != nil {
		return nil, err
	}

	resp, err := get[[]types.MessageItem](ctx, r, pathMessages, q)
	if err != nil {
		return nil, err
	}
	return &Page[types.MessageItem]{Items: resp.Data, Meta: resp.Meta}, nil
}
