package ghostblog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/diskusipajak/ghostblog/ghost"
	"github.com/diskusipajak/ghostblog/logger"
)

const (
	maxCacheEntries = 1000
	refreshTimeout  = 30 * time.Second
)

// ContentSource is what the handlers read posts from. *ghost.Client and
// *ContentCache both satisfy it.
type ContentSource interface {
	Configured() bool
	PostBySlug(ctx context.Context, slug string) (ghost.Post, error)
	Posts(ctx context.Context, page, limit int) (ghost.PostsPage, error)
}

type cacheEntry struct {
	value   any
	err     error
	fetched time.Time
}

// ContentCache is a stale-while-revalidate cache in front of a
// ContentSource. Fresh entries are served directly; stale entries are
// served while one background refresh runs; misses are fetched inline
// with concurrent misses sharing a single upstream call.
//
// Only successful results and ghost.ErrNotFound are stored.
type ContentCache struct {
	src ContentSource
	ttl time.Duration
	log logger.Logger
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry
	group   singleflight.Group
}

// NewContentCache wraps src with a cache of the given TTL.
func NewContentCache(src ContentSource, ttl time.Duration, log logger.Logger) *ContentCache {
	if log == nil {
		log = logger.Discard()
	}
	return &ContentCache{
		src:     src,
		ttl:     ttl,
		log:     log,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Configured reports whether the wrapped source can reach the CMS.
func (c *ContentCache) Configured() bool {
	return c.src.Configured()
}

// PostBySlug returns the cached post for slug.
func (c *ContentCache) PostBySlug(ctx context.Context, slug string) (ghost.Post, error) {
	return cached(ctx, c, "post:"+slug, func(ctx context.Context) (ghost.Post, error) {
		return c.src.PostBySlug(ctx, slug)
	})
}

// Posts returns the cached listing page.
func (c *ContentCache) Posts(ctx context.Context, page, limit int) (ghost.PostsPage, error) {
	key := fmt.Sprintf("posts:%d:%d", page, limit)
	return cached(ctx, c, key, func(ctx context.Context) (ghost.PostsPage, error) {
		return c.src.Posts(ctx, page, limit)
	})
}

// Invalidate drops every entry so the next read goes upstream.
func (c *ContentCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

func cached[T any](ctx context.Context, c *ContentCache, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if !c.src.Configured() {
		return zero, ghost.ErrNotConfigured
	}

	entry, ok := c.lookup(key)
	if ok {
		if c.now().Sub(entry.fetched) >= c.ttl {
			c.refresh(ctx, key, func(ctx context.Context) (any, error) { return fetch(ctx) }, true)
		}
		v, _ := entry.value.(T)
		return v, entry.err
	}

	// The shared fetch outlives any single caller; each caller only stops
	// waiting when its own context ends.
	ch := c.group.DoChan(key, func() (any, error) {
		// A call that finished between the lookup above and DoChan has
		// already stored the entry.
		if e, ok := c.lookup(key); ok {
			return e.value, e.err
		}
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()
		return c.fill(fctx, key, func(ctx context.Context) (any, error) { return fetch(ctx) }, false)
	})
	select {
	case res := <-ch:
		out, _ := res.Val.(T)
		return out, res.Err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func (c *ContentCache) lookup(key string) (cacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	return e, ok
}

// refresh revalidates key in the background. Concurrent callers join the
// refresh already in flight.
func (c *ContentCache) refresh(ctx context.Context, key string, fetch func(context.Context) (any, error), stale bool) {
	c.group.DoChan(key, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()
		return c.fill(ctx, key, fetch, stale)
	})
}

func (c *ContentCache) fill(ctx context.Context, key string, fetch func(context.Context) (any, error), stale bool) (any, error) {
	v, err := fetch(ctx)
	if err != nil && !errors.Is(err, ghost.ErrNotFound) {
		if stale {
			logger.WarnWithFields(c.log, "content refresh failed, serving stale entry", logger.Fields{
				"key":   key,
				"error": err.Error(),
			})
		}
		return v, err
	}

	c.mu.Lock()
	if len(c.entries) >= maxCacheEntries {
		c.evictLocked()
	}
	c.entries[key] = cacheEntry{value: v, err: err, fetched: c.now()}
	c.mu.Unlock()
	return v, err
}

// evictLocked drops stale entries, or everything if none are stale.
func (c *ContentCache) evictLocked() {
	now := c.now()
	for k, e := range c.entries {
		if now.Sub(e.fetched) >= c.ttl {
			delete(c.entries, k)
		}
	}
	if len(c.entries) >= maxCacheEntries {
		c.entries = make(map[string]cacheEntry)
	}
}
