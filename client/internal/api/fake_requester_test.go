package api

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/giovan110109-blip/homePageuUni/client/internal/types"
)

// fakeRequester records requests and replays a canned envelope or error.
type fakeRequester struct {
	env  *types.Envelope
	err  error
	reqs []types.Request
}

func (f *fakeRequester) Do(_ context.Context, req types.Request) (*types.Envelope, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.env, nil
}

func (f *fakeRequester) last(t *testing.T) types.Request {
	t.Helper()
	if len(f.reqs) == 0 {
		t.Fatalf("no request recorded")
	}
	return f.reqs[len(f.reqs)-1]
}

func replay(t *testing.T, data any, meta *types.Meta) *fakeRequester {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return &fakeRequester{env: &types.Envelope{Code: 200, Message: "ok", Data: raw, Meta: meta}}
}
