package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	apperrors "employee-portal-backend/internal/errors"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// SessionRecord is what a session store keeps per signed-in session
type SessionRecord struct {
	ID         string    `json:"id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// SessionStore persists signed-in sessions. Get returns ErrSessionExpired for
// sessions that were never saved, were deleted or have expired.
type SessionStore interface {
	Save(ctx context.Context, rec SessionRecord) error
	Get(ctx context.Context, id string) (*SessionRecord, error)
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps sessions in process memory
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]SessionRecord
	now      func() time.Time
}

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]SessionRecord),
		now:      time.Now,
	}
}

// Save stores rec and forgets every record that has expired meanwhile
func (m *MemoryStore) Save(_ context.Context, rec SessionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for id, held := range m.sessions {
		if !now.Before(held.ExpiresAt) {
			delete(m.sessions, id)
		}
	}
	m.sessions[rec.ID] = rec
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*SessionRecord, error) {
	m.mu.RLock()
	rec, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, apperrors.ErrSessionExpired
	}
	if !m.now().Before(rec.ExpiresAt) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, apperrors.ErrSessionExpired
	}
	return &rec, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

const sessionKeyPrefix = "session:"

// RedisStore keeps sessions in Redis, expiring together with their tokens
type RedisStore struct {
	rdb *goredis.Client
}

// NewRedisStore connects to Redis and checks the connection
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisStore{rdb: rdb}, nil
}

func (r *RedisStore) Save(ctx context.Context, rec SessionRecord) error {
	ttl := time.Until(rec.ExpiresAt)
	if ttl <= 0 {
		return apperrors.ErrSessionExpired
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.rdb.Set(ctx, sessionKeyPrefix+rec.ID, payload, ttl).Err()
}

func (r *RedisStore) Get(ctx context.Context, id string) (*SessionRecord, error) {
	payload, err := r.rdb.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, apperrors.ErrSessionExpired
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var rec SessionRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &rec, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, sessionKeyPrefix+id).Err()
}

// Ping reports whether Redis is reachable
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisStore) Close() error {
	return r.rdb.Close()
}
