package api

import (
	"context"

	"github.com/giovan110109-blip/homePageuUni/client/internal/types"
)

// GetComments lists the comments attached to targetID.
func GetComments(ctx context.Context, r types.Requester, targetID string) ([]types.CommentItem, error) {
	if err := types.ValidateIDPresent(targetID, "targetId"); err != nil {
		return nil, err
	}
	resp, err := get[[]types.CommentItem](ctx, r, pathComments, types.CommentsQuery{TargetID: targetID})
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
