package api

import (
	"context"

	"github.com/giovan110109-blip/homePageuUni/client/internal/types"
)

// GetSiteInfo fetches the site profile.
func GetSiteInfo(ctx context.Context, r types.Requester) (*types.SiteInfo, error) {
	resp, err := get[types.SiteInfo](ctx, r, pathSiteInfo, nil)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
