package notify

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"
)

const (
	KindDefault     = "default"
	KindDestructive = "destructive"
)

// Notification is one transient toast. Notifications auto-expire and
// are never persisted.
type Notification struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Notifier is the side channel every service reports through.
type Notifier interface {
	Success(title, description string)
	Error(title, description string)
}

// Center holds the live toast feed. Bodies live in a TTL cache; ids are
// tracked in a separate key map so the feed can be listed and expired
// entries dropped.
type Center struct {
	cache *ristretto.Cache
	ttl   time.Duration

	keys struct {
		sync.RWMutex
		m map[string]time.Time
	}
}

func NewCenter(ttl time.Duration) *Center {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000,
		MaxCost:     10000,
		BufferItems: 64,
	})
	if err != nil {
		log.Fatalf("failed to initialize notification cache: %v", err)
	}

	c := &Center{cache: cache, ttl: ttl}
	c.keys.m = make(map[string]time.Time)
	return c
}

func (c *Center) Success(title, description string) {
	c.push(KindDefault, title, description)
}

func (c *Center) Error(title, description string) {
	c.push(KindDestructive, title, description)
}

func (c *Center) push(kind, title, description string) {
	n := Notification{
		ID:          uuid.NewString(),
		Kind:        kind,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	}

	c.keys.Lock()
	c.keys.m[n.ID] = n.CreatedAt.Add(c.ttl)
	c.keys.Unlock()

	c.cache.SetWithTTL(n.ID, n, 1, c.ttl)
	c.cache.Wait()
}

// List returns the live notifications, newest first. Expired ids are
// pruned as a side effect.
func (c *Center) List() []Notification {
	now := time.Now()

	c.keys.Lock()
	ids := make([]string, 0, len(c.keys.m))
	for id, expiresAt := range c.keys.m {
		if now.After(expiresAt) {
			delete(c.keys.m, id)
			c.cache.Del(id)
			continue
		}
		ids = append(ids, id)
	}
	c.keys.Unlock()

	notifications := make([]Notification, 0, len(ids))
	for _, id := range ids {
		if value, ok := c.cache.Get(id); ok {
			if n, ok := value.(Notification); ok {
				notifications = append(notifications, n)
			}
		}
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications
}
