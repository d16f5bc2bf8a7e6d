package session

import (
	"context"       // Context for store operations
	"encoding/json" // JSON encoding/decoding
	"sync"          // Mutex for the in-memory store
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// Store persists the mapping from session id to user id. Absence of a session
// is a normal outcome, not an error.
type Store interface {
	Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error // Create or refresh a session
	Lookup(ctx context.Context, sessionID string) (uint, bool, error)                 // Resolve a session to a user id
	Delete(ctx context.Context, sessionID string) error                               // Remove a session (idempotent)
}

const keyPrefix = "session:" // Redis key prefix for session entries

// RedisStore keeps sessions in Redis with a TTL
type RedisStore struct {
	rdb *redis.Client // Redis client
}

// NewRedisStore wraps a Redis client as a session store
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Save stores the user id under the session key with the given TTL
func (s *RedisStore) Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error {
	b, err := json.Marshal(userID) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return s.rdb.Set(ctx, keyPrefix+sessionID, b, ttl).Err() // Set value in Redis with TTL
}

// Lookup resolves a session id; a missing key is (0, false, nil)
func (s *RedisStore) Lookup(ctx context.Context, sessionID string) (uint, bool, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+sessionID).Result() // Get value from Redis
	if err == redis.Nil {
		return 0, false, nil // Key does not exist
	} else if err != nil {
		return 0, false, err // Other Redis error
	}
	var userID uint
	if err := json.Unmarshal([]byte(val), &userID); err != nil {
		return 0, false, err // Corrupt entry
	}
	return userID, true, nil
}

// Delete removes a session key from Redis
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, keyPrefix+sessionID).Err() // Delete key from Redis
}

// memoryEntry is a single in-memory session record
type memoryEntry struct {
	userID    uint      // Resolved user id
	expiresAt time.Time // Expiry instant
}

// MemoryStore is an in-process session store used by tests
type MemoryStore struct {
	mu      sync.Mutex             // Guards entries
	entries map[string]memoryEntry // Session id to record
}

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

// Save stores the session in the map
func (s *MemoryStore) Save(_ context.Context, sessionID string, userID uint, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = memoryEntry{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Lookup resolves a session id, honoring expiry
func (s *MemoryStore) Lookup(_ context.Context, sessionID string) (uint, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[sessionID]
	// Expired entries behave like missing ones
	if !ok || time.Now().After(e.expiresAt) {
		return 0, false, nil
	}
	return e.userID, true, nil
}

// Delete removes a session from the map
func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}
