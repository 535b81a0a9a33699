package codes

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/coregx/dberr/internal/logger"
)

// Resolver locates the code table for a database product and caches the
// result for the life of the process. The cache is populated lazily and
// never evicted; the registry behind it is bounded and static per
// deployment. Reset clears it explicitly, nothing clears it implicitly.
type Resolver struct {
	mu    sync.RWMutex
	cache map[string]*Table
	log   logger.Logger

	// Metrics using atomic for lock-free access.
	hits   atomic.Uint64
	misses atomic.Uint64
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithResolverLogger sets the logger used for cache population events.
func WithResolverLogger(log logger.Logger) ResolverOption {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// NewResolver creates a resolver with an empty cache.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		cache: make(map[string]*Table),
		log:   &logger.NoopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup returns the code table for the product name. Unknown products get
// an empty table, not an error; the caller falls through to SQLSTATE
// fallback classification. All callers observe the same table for the same
// product once the cache is warm.
func (r *Resolver) Lookup(product string) *Table {
	key := normalizeProduct(product)

	r.mu.RLock()
	t, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		r.hits.Add(1)
		return t
	}

	r.misses.Add(1)
	r.mu.Lock()
	defer r.mu.Unlock()
	// Another caller may have populated the key while the write lock was
	// contended; keep the first table so everyone sees the same one.
	if t, ok := r.cache[key]; ok {
		return t
	}
	t = Registered(product)
	r.cache[key] = t
	r.log.Debug("resolved error code table", "product", product, "empty", t.Empty())
	return t
}

// Resolve acquires a connection from the provider, reads the product name
// and looks up its table. The connection is released on every path. An
// acquisition or metadata failure returns a nil table and the error: the
// translator short-circuits with "cannot classify" rather than guessing.
func (r *Resolver) Resolve(ctx context.Context, provider ConnectionProvider) (*Table, error) {
	conn, err := provider.Connect(ctx)
	if err != nil {
		r.log.Warn("connection acquisition for table resolution failed", "error", err)
		return nil, err
	}
	defer func() {
		_ = conn.Close()
	}()

	product, err := conn.ProductName(ctx)
	if err != nil {
		r.log.Warn("product name retrieval failed", "error", err)
		return nil, err
	}
	return r.Lookup(product), nil
}

// Warm populates the cache for the given products ahead of the first
// translate call, for callers on latency-sensitive paths.
func (r *Resolver) Warm(products ...string) {
	for _, p := range products {
		r.Lookup(p)
	}
}

// Reset clears the cache. The next lookup repopulates from the registry.
func (r *Resolver) Reset() {
	r.mu.Lock()
	r.cache = make(map[string]*Table)
	r.mu.Unlock()
}

// Stats returns cache hit and miss counts.
func (r *Resolver) Stats() (hits, misses uint64) {
	return r.hits.Load(), r.misses.Load()
}
