// Package cache holds last-fetched snapshots of resource collections.
//
// Reads go through Fetch: a fresh entry is served from memory, anything else is
// fetched once no matter how many callers ask at the same time. Mutations never
// patch entries; they mark them stale so the next read fetches again.
package cache

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"backoffice/internal/models"

	"golang.org/x/sync/singleflight"
)

// ErrClosed is returned by Fetch after Close.
var ErrClosed = errors.New("cache closed")

// Key addresses one cached collection: a resource plus the canonical query it was fetched with.
type Key struct {
	Resource models.Resource
	Params   string
}

// KeyFor builds the key of resource fetched with params. Nil or empty params address the
// unfiltered collection.
func KeyFor(resource models.Resource, params url.Values) Key {
	return Key{Resource: resource, Params: params.Encode()}
}

// String renders the key as "resource?params".
func (k Key) String() string {
	if k.Params == "" {
		return k.Resource.String()
	}
	return k.Resource.String() + "?" + k.Params
}

// FetchFunc loads the value of a key from the backend.
type FetchFunc func(ctx context.Context) (interface{}, error)

type entry struct {
	value     interface{}
	hasValue  bool
	stale     bool
	fetchedAt time.Time
	// generation increases on every invalidation; a fetch only marks the
	// entry fresh if the generation it started under is still current.
	generation uint64
}

// Cache is a key-addressed store of fetched collections with request coalescing.
// The zero value is not usable; create one with New.
type Cache struct {
	mu           sync.Mutex
	entries      map[Key]*entry
	flights      singleflight.Group
	fetchTimeout time.Duration
	closed       bool
}

// New creates an empty cache. fetchTimeout bounds every backend fetch; zero disables the bound.
func New(fetchTimeout time.Duration) *Cache {
	return &Cache{
		entries:      make(map[Key]*entry),
		fetchTimeout: fetchTimeout,
	}
}

// Get returns the value of key if it is cached and fresh.
func (c *Cache) Get(key Key) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || !e.hasValue || e.stale {
		return nil, false
	}
	return e.value, true
}

// Peek returns the last value stored under key even if it is stale.
func (c *Cache) Peek(key Key) (value interface{}, stale bool, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, found := c.entries[key]
	if !found || !e.hasValue {
		return nil, false, false
	}
	return e.value, e.stale, true
}

// FetchedAt returns when the value under key was stored.
func (c *Cache) FetchedAt(key Key) (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || !e.hasValue {
		return time.Time{}, false
	}
	return e.fetchedAt, true
}

// Set stores value under key as fresh.
func (c *Cache) Set(key Key, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	e := c.entryLocked(key)
	e.value = value
	e.hasValue = true
	e.stale = false
	e.fetchedAt = time.Now()
}

// Invalidate marks keys stale. Their values stay readable through Peek until refetched.
func (c *Cache) Invalidate(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		if e, ok := c.entries[key]; ok {
			c.invalidateLocked(key, e)
		}
	}
}

// InvalidateResource marks every key of the given resources stale, whatever its params.
func (c *Cache) InvalidateResource(resources ...models.Resource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		for _, r := range resources {
			if key.Resource == r {
				c.invalidateLocked(key, e)
				break
			}
		}
	}
}

func (c *Cache) invalidateLocked(key Key, e *entry) {
	e.stale = true
	e.generation++
	// Readers arriving after the invalidation must not join a fetch that started before it.
	c.flights.Forget(key.String())
}

func (c *Cache) entryLocked(key Key) *entry {
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	return e
}

// Fetch returns the fresh value of key, calling fetch when there is none.
//
// Concurrent callers for the same key share one call to fetch. The call runs under
// a context detached from ctx and bounded by the fetch timeout, so a caller that
// gives up does not cancel it for the others. On error the previous value, if any,
// is left in place.
func (c *Cache) Fetch(ctx context.Context, key Key, fetch FetchFunc) (interface{}, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	e := c.entryLocked(key)
	if e.hasValue && !e.stale {
		value := e.value
		c.mu.Unlock()
		return value, nil
	}
	generation := e.generation
	c.mu.Unlock()

	results := c.flights.DoChan(key.String(), func() (interface{}, error) {
		fetchCtx, cancel := c.fetchContext(ctx)
		defer cancel()
		value, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		c.store(key, value, generation)
		return value, nil
	})

	select {
	case res := <-results:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Cache) fetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if c.fetchTimeout <= 0 {
		return context.WithCancel(detached)
	}
	return context.WithTimeout(detached, c.fetchTimeout)
}

// store records a fetched value. It stays stale when key was invalidated after the fetch began.
func (c *Cache) store(key Key, value interface{}, generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	e := c.entryLocked(key)
	e.value = value
	e.hasValue = true
	e.fetchedAt = time.Now()
	e.stale = e.generation != generation
}

// Len returns the number of keys holding a value.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.entries {
		if e.hasValue {
			n++
		}
	}
	return n
}

// Close drops every entry. Later fetches fail with ErrClosed and in-flight fetches are not stored.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.entries = make(map[Key]*entry)
}

// Query is a typed Fetch.
func Query[T any](ctx context.Context, c *Cache, key Key, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	value, err := c.Fetch(ctx, key, func(ctx context.Context) (interface{}, error) {
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, errors.New("cache: value under " + key.String() + " has unexpected type")
	}
	return typed, nil
}
