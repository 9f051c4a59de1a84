package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// HomePath is the public route every content mutation invalidates.
const HomePath = "/"

// Store keeps rendered page payloads keyed by request path.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Invalidator drops cached renderings of public paths.
type Invalidator interface {
	Invalidate(ctx context.Context, paths ...string) error
}

// Versioned stores count invalidations so a render that started before one
// can be dropped instead of cached.
type Versioned interface {
	Generation(ctx context.Context) (int64, error)
	Bump(ctx context.Context) (int64, error)
}

// Pages is the page cache used by the public site.
type Pages struct {
	store Store
	ttl   time.Duration
	local atomic.Int64
}

// NewPages wraps store. A zero ttl keeps entries until invalidated.
func NewPages(store Store, ttl time.Duration) *Pages {
	return &Pages{store: store, ttl: ttl}
}

// Load returns the cached payload for path.
func (p *Pages) Load(ctx context.Context, path string) ([]byte, bool, error) {
	return p.store.Get(ctx, path)
}

// Save caches payload under path.
func (p *Pages) Save(ctx context.Context, path string, payload []byte) error {
	return p.store.Set(ctx, path, payload, p.ttl)
}

// Generation returns the invalidation counter. Read it before loading the
// data a payload is built from and pass it to SaveAt.
func (p *Pages) Generation(ctx context.Context) (int64, error) {
	if v, ok := p.store.(Versioned); ok {
		return v.Generation(ctx)
	}
	return p.local.Load(), nil
}

func (p *Pages) bump(ctx context.Context) error {
	if v, ok := p.store.(Versioned); ok {
		_, err := v.Bump(ctx)
		return err
	}
	p.local.Add(1)
	return nil
}

// SaveAt caches payload only if no invalidation happened since gen was
// read. The counter is checked again after the write, and the entry removed
// when it moved, so an Invalidate racing with the write never leaves the
// older payload behind. stored reports whether the payload was kept.
func (p *Pages) SaveAt(ctx context.Context, path string, payload []byte, gen int64) (stored bool, err error) {
	current, err := p.Generation(ctx)
	if err != nil {
		return false, err
	}
	if current != gen {
		return false, nil
	}
	if err := p.store.Set(ctx, path, payload, p.ttl); err != nil {
		return false, err
	}
	current, err = p.Generation(ctx)
	if err != nil || current != gen {
		if delErr := p.store.Delete(ctx, path); delErr != nil && err == nil {
			err = delErr
		}
		return false, err
	}
	return true, nil
}

// Invalidate removes the cached payloads for paths. The generation moves
// first so renders already in flight discard their result.
func (p *Pages) Invalidate(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := p.bump(ctx); err != nil {
		return err
	}
	return p.store.Delete(ctx, paths...)
}

type memoryEntry struct {
	value   []byte
	expires time.Time
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu         sync.RWMutex
	entries    map[string]memoryEntry
	now        func() time.Time
	generation atomic.Int64
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), now: time.Now}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !entry.expires.IsZero() && m.now().After(entry.expires) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false, nil
	}
	return append([]byte(nil), entry.value...), true, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expires = m.now().Add(ttl)
	}
	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	for _, key := range keys {
		delete(m.entries, key)
	}
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Generation(context.Context) (int64, error) {
	return m.generation.Load(), nil
}

func (m *MemoryStore) Bump(context.Context) (int64, error) {
	return m.generation.Add(1), nil
}
