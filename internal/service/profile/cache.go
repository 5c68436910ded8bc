package profile

import (
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

// snapshotCache is the cache the service reads through. Implementations must
// be safe for concurrent use.
type snapshotCache interface {
	Get(key uuid.UUID) (domain.ProfileSnapshot, bool)
	Add(key uuid.UUID, snap domain.ProfileSnapshot)
	Remove(key uuid.UUID)
}

// Cache is a TTL-expiring, capacity-bounded snapshot cache.
type Cache struct {
	lru *lru.LRU[uuid.UUID, domain.ProfileSnapshot]
}

// NewCache creates a cache holding at most capacity snapshots, each expiring
// after ttl.
func NewCache(capacity int, ttl time.Duration) *Cache {
	return &Cache{lru: lru.NewLRU[uuid.UUID, domain.ProfileSnapshot](capacity, nil, ttl)}
}

func (c *Cache) Get(key uuid.UUID) (domain.ProfileSnapshot, bool) {
	return c.lru.Get(key)
}

func (c *Cache) Add(key uuid.UUID, snap domain.ProfileSnapshot) {
	c.lru.Add(key, snap)
}

func (c *Cache) Remove(key uuid.UUID) {
	c.lru.Remove(key)
}

// NopCache never stores anything. Useful in tests and for deployments that
// want every read to hit the store.
type NopCache struct{}

func (NopCache) Get(uuid.UUID) (domain.ProfileSnapshot, bool) { return domain.ProfileSnapshot{}, false }
func (NopCache) Add(uuid.UUID, domain.ProfileSnapshot)        {}
func (NopCache) Remove(uuid.UUID)                             {}
