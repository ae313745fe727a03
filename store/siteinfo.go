package store

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/giovan110109-blip/homePageuUni/client"
	"github.com/giovan110109-blip/homePageuUni/platform"
)

// SiteInfoCacheTTL is how long a fetched site profile is served without a
// network call.
const SiteInfoCacheTTL = time.Hour

// cachedSiteInfo is the stored cache entry. Timestamp is Unix milliseconds.
type cachedSiteInfo struct {
	Data      *client.SiteInfo `json:"data"`
	Timestamp int64            `json:"timestamp"`
}

// SiteInfo is a read-through cache over GET /site-info.
type SiteInfo struct {
	api     SiteInfoAPI
	storage platform.Storage
	opts    options

	fetchMu sync.Mutex // serializes Fetch so concurrent callers share one network call
	mu      sync.RWMutex
	info    *client.SiteInfo
	fetched time.Time
	loading atomic.Bool
}

// NewSiteInfo returns an empty container.
func NewSiteInfo(api SiteInfoAPI, storage platform.Storage, opts ...Option) *SiteInfo {
	return &SiteInfo{api: api, storage: storage, opts: applyOptions(opts)}
}

// Fetch returns the site profile. Unless force is set, a copy younger than
// SiteInfoCacheTTL (in memory or in storage) is returned without a network
// call. A network result overwrites the cache with a fresh timestamp.
func (s *SiteInfo) Fetch(ctx context.Context, force bool) (*client.SiteInfo, error) {
	s.fetchMu.Lock()
	defer s.fetchMu.Unlock()

	now := s.opts.now()
	if !force {
		if info, ok := s.fresh(now); ok {
			return info, nil
		}
		if entry, ok := s.readCache(ctx); ok && now.Sub(time.UnixMilli(entry.Timestamp)) < SiteInfoCacheTTL {
			s.set(entry.Data, time.UnixMilli(entry.Timestamp))
			return entry.Data, nil
		}
	}

	s.loading.Store(true)
	defer s.loading.Store(false)

	info, err := s.api.GetSiteInfo(ctx)
	if err != nil {
		return nil, err
	}
	s.set(info, now)
	s.writeCache(ctx, cachedSiteInfo{Data: info, Timestamp: now.UnixMilli()})
	return info, nil
}

// ClearCache drops both the stored and the in-memory copy.
func (s *SiteInfo) ClearCache(ctx context.Context) error {
	s.mu.Lock()
	s.info = nil
	s.fetched = time.Time{}
	s.mu.Unlock()
	if err := s.storage.Remove(ctx, platform.SiteInfoCacheKey); err != nil {
		return errors.Wrap(err, "remove site info cache")
	}
	return nil
}

// Current returns the in-memory copy, or nil before the first fetch.
func (s *SiteInfo) Current() *client.SiteInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}

// Loading reports whether a network fetch is in flight.
func (s *SiteInfo) Loading() bool { return s.loading.Load() }

func (s *SiteInfo) fresh(now time.Time) (*client.SiteInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.info == nil || now.Sub(s.fetched) >= SiteInfoCacheTTL {
		return nil, false
	}
	return s.info, true
}

func (s *SiteInfo) set(info *client.SiteInfo, at time.Time) {
	s.mu.Lock()
	s.info = info
	s.fetched = at
	s.mu.Unlock()
}

// readCache treats missing, unreadable and malformed entries as absent.
func (s *SiteInfo) readCache(ctx context.Context) (cachedSiteInfo, bool) {
	var entry cachedSiteInfo
	raw, err := s.storage.Get(ctx, platform.SiteInfoCacheKey)
	if err != nil {
		if !platform.IsNotFound(err) {
			s.opts.log.Warn().Err(err).Msg("read site info cache failed")
		}
		return entry, false
	}
	if err := json.Unmarshal([]byte(raw), &entry); err != nil || entry.Data == nil || entry.Timestamp <= 0 {
		s.opts.log.Debug().Err(err).Msg("ignoring malformed site info cache")
		return entry, false
	}
	return entry, true
}

func (s *SiteInfo) writeCache(ctx context.Context, entry cachedSiteInfo) {
	b, err := json.Marshal(entry)
	if err != nil {
		s.opts.log.Warn().Err(err).Msg("encode site info cache failed")
		return
	}
	if err := s.storage.Set(ctx, platform.SiteInfoCacheKey, string(b)); err != nil {
		s.opts.log.Warn().Err(err).Msg("write site info cache failed")
	}
}
