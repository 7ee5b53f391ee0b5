// Package appctx provides the per-request state shared by application
// services: a memo cache for lookups and a queue of staged writes.
//
//	rc := appctx.New(ctx)
//
//	// Read: repeated lookups of the same key hit the cache.
//	user, err := appctx.GetOrFetch(rc, "user:"+id, fetchUser)
//
//	// Write: queue actions, then run them in order with rollback on failure.
//	_ = rc.AddGroup(uploads...)
//	_ = rc.AddAction(insertRows)
//	err = rc.Commit(ctx)
//
// The AppContext HTTP middleware creates one RequestContext per request and
// stores it with WithRequestContext. Services use Ensure to pick it up, or
// to start a fresh one outside HTTP.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

// ErrAlreadyCommitted is returned when a RequestContext is modified or
// committed after Commit.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilAction is returned when a nil action is staged.
var ErrNilAction = errors.New("appctx: nil action")

// ErrTypeMismatch is returned by GetOrFetch when the same key was cached
// with a different type.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext is the request-scoped memo cache and write queue. Lookups
// are safe to run from concurrent goroutines of the same request;
// concurrent fetches of one key share a single call.
type RequestContext struct {
	context.Context

	cacheMu sync.Mutex
	cache   map[string]cacheEntry
	flight  singleflight.Group

	queueMu   sync.Mutex
	items     []*step
	committed bool
}

// cacheEntry records a fetch result. Errors are cached too.
type cacheEntry struct {
	value any
	err   error
}

// New creates an empty RequestContext wrapping ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

type requestContextKey struct{}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc
}

// Ensure returns the RequestContext stored in ctx, or a new one wrapping ctx
// when none is present.
func Ensure(ctx context.Context) *RequestContext {
	if rc := FromContext(ctx); rc != nil {
		return rc
	}
	return New(ctx)
}

// GetOrFetch returns the cached value for key or calls fetchFn once to
// load it. The same key must always be used with the same type T.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := rc.lookup(key); ok {
		return typed[T](key, entry)
	}

	_, _, _ = rc.flight.Do(key, func() (any, error) {
		if _, ok := rc.lookup(key); ok {
			return nil, nil
		}
		val, err := fetchFn(rc.Context)
		rc.store(key, cacheEntry{value: val, err: err})
		return nil, nil
	})

	entry, _ := rc.lookup(key)
	return typed[T](key, entry)
}

// Forget drops key from the cache so the next GetOrFetch reloads it.
func (rc *RequestContext) Forget(key string) {
	rc.cacheMu.Lock()
	defer rc.cacheMu.Unlock()
	delete(rc.cache, key)
}

// Stage caches entity under key and queues action for Commit. Later
// GetOrFetch calls for key see the staged entity.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	if err := rc.AddAction(action); err != nil {
		return err
	}
	rc.store(key, cacheEntry{value: entity})
	return nil
}

func (rc *RequestContext) lookup(key string) (cacheEntry, bool) {
	rc.cacheMu.Lock()
	defer rc.cacheMu.Unlock()
	entry, ok := rc.cache[key]
	return entry, ok
}

func (rc *RequestContext) store(key string, entry cacheEntry) {
	rc.cacheMu.Lock()
	defer rc.cacheMu.Unlock()
	rc.cache[key] = entry
}

func typed[T any](key string, entry cacheEntry) (T, error) {
	var zero T
	if entry.err != nil {
		return zero, entry.err
	}
	if entry.value == nil {
		return zero, nil
	}
	v, ok := entry.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
	}
	return v, nil
}
