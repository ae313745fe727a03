package api

import (
	"context"
	"net/url"

	"github.com/giovan110109-blip/homePageuUni/client/internal/types"
)

// Defaults of the gallery listing.
const (
	DefaultPhotosPage       = 1
	DefaultPhotosLimit      = 20
	DefaultPhotosVisibility = "public"
)

// GetPhotos returns one page of the gallery. Zero fields of q take the
// defaults above.
func GetPhotos(ctx context.Context, r types.Requester, q types.PhotosQuery) (*types.PhotoPage, error) {
	if q.Page == 0 {
		q.Page = DefaultPhotosPage
	}
	if q.Limit == 0 {
		q.Limit = DefaultPhotosLimit
	}
	if q.Visibility == "" {
		q.Visibility = DefaultPhotosVisibility
	}
	if err := types.ValidatePage(q.Page, q.Limit, "limit"); err != nil {
		return nil, err
	}

	resp, err := get[types.PhotoPage](ctx, r, pathPhotos, q)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// GetPhotoDetail fetches a single photo.
func GetPhotoDetail(ctx context.Context, r types.Requester, id string) (*types.PhotoItem, error) {
	if err := types.ValidateIDPresent(id, "id"); err != nil {
		return nil, err
	}
	resp, err := get[types.PhotoItem](ctx, r, pathPhotos+"/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
