package cart

import (
	"context"
	"sync"
)

// Store maps session ids to live carts. WithCart runs fn with exclusive
// access to the session's cart, creating an empty cart on first reference.
// Holding the session lock for the whole callback serializes concurrent
// turns against one session, so interleaved add/remove turns cannot lose
// updates.
type Store interface {
	WithCart(ctx context.Context, sessionID string, fn func(c *Cart) error) error
}

type memoryEntry struct {
	mu   sync.Mutex
	cart *Cart
}

// MemoryStore keeps carts in process memory for the process lifetime. There
// is no eviction; expiry is a deployment decision and belongs to the Redis
// store's TTL.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*memoryEntry)}
}

func (s *MemoryStore) WithCart(ctx context.Context, sessionID string, fn func(c *Cart) error) error {
	e := s.entry(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.cart)
}

// entry is idempotent under concurrent first access for one session: exactly
// one cart is ever created per id.
func (s *MemoryStore) entry(sessionID string) *memoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[sessionID]
	if !ok {
		e = &memoryEntry{cart: New()}
		s.entries[sessionID] = e
	}
	return e
}
