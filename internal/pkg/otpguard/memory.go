package otpguard

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/souqhq/souq/internal/pkg/clock"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore is an in-process Store with clock-driven expiry. It exists for
// tests and local development where Redis is not available; the injected
// Clocker makes TTL-dependent behavior deterministic.
type MemoryStore struct {
	clock clock.Clocker

	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemoryStore builds an empty store reading time from clk.
func NewMemoryStore(clk clock.Clocker) *MemoryStore {
	return &MemoryStore{
		clock:   clk,
		entries: make(map[string]memoryEntry),
	}
}

// Get reads a live key; expired entries are treated as absent and dropped.
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(key)
	if !ok {
		return "", false, nil
	}
	return e.value, true, nil
}

// Set writes a key with the given lifetime.
func (s *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{
		value:     value,
		expiresAt: s.clock.Now().Add(ttl),
	}
	return nil
}

// Delete removes keys. Absent keys are ignored.
func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.entries, key)
	}
	return nil
}

// Incr bumps a counter and resets its lifetime under one lock acquisition.
func (s *MemoryStore) Incr(_ context.Context, key string, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	if e, ok := s.live(key); ok {
		parsed, err := strconv.ParseInt(e.value, 10, 64)
		if err != nil {
			return 0, err
		}
		count = parsed
	}
	count++

	s.entries[key] = memoryEntry{
		value:     strconv.FormatInt(count, 10),
		expiresAt: s.clock.Now().Add(ttl),
	}
	return count, nil
}

// live returns the entry for key if it has not expired, pruning it otherwise.
// Callers must hold s.mu.
func (s *MemoryStore) live(key string) (memoryEntry, bool) {
	e, ok := s.entries[key]
	if !ok {
		return memoryEntry{}, false
	}
	if !s.clock.Now().Before(e.expiresAt) {
		delete(s.entries, key)
		return memoryEntry{}, false
	}
	return e, true
}
