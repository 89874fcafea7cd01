package contact

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// DedupStore remembers recently seen requests so a double-submitted form
// does not notify sales twice.
type DedupStore interface {
	// Claim reports true when key was not seen within ttl and records it.
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release forgets key so the next Claim succeeds.
	Release(ctx context.Context, key string) error
}

// DedupKey identifies a requester independent of letter case.
func DedupKey(req DemoRequest) string {
	sum := sha256.Sum256([]byte(strings.ToLower(req.Email) + "|" + strings.ToLower(req.Company)))
	return hex.EncodeToString(sum[:])
}

type MemoryDedupStore struct {
	mu   sync.Mutex
	seen map[string]time.Time
	now  func() time.Time
}

func NewMemoryDedupStore() *MemoryDedupStore {
	return &MemoryDedupStore{
		seen: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (m *MemoryDedupStore) Claim(_ context.Context, key string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for k, expires := range m.seen {
		if !now.Before(expires) {
			delete(m.seen, k)
		}
	}

	if _, ok := m.seen[key]; ok {
		return false, nil
	}
	m.seen[key] = now.Add(ttl)
	return true, nil
}

func (m *MemoryDedupStore) Release(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.seen, key)
	return nil
}

const redisKeyPrefix = "inman:demo-request:"

type RedisDedupStore struct {
	client *redis.Client
}

func NewRedisDedupStore(addr, password string, db int) *RedisDedupStore {
	return &RedisDedupStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (r *RedisDedupStore) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, redisKeyPrefix+key, time.Now().Unix(), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx: %w", err)
	}
	return ok, nil
}

func (r *RedisDedupStore) Release(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (r *RedisDedupStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisDedupStore) Close() error {
	return r.client.Close()
}
