package scene

import (
	"sync"

	"github.com/jaikdean/ShapeScript/pkg/mesh"
)

// Cache is a content-addressed store of built meshes, keyed by the
// structural hash a Geometry node computes from its type, parameters and
// children's keys. Reads are lock-free; a miss takes a per-key lock so
// concurrent builds of identical subgraphs compute at most once.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]mesh.Mesh
	locks   map[string]*sync.Mutex
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: map[string]mesh.Mesh{}, locks: map[string]*sync.Mutex{}}
}

func (c *Cache) get(key string) (mesh.Mesh, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.entries[key]
	return m, ok
}

func (c *Cache) put(key string, m mesh.Mesh) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = m
}

// lockFor returns an unlock function for the per-key lock guarding key's
// build, creating the lock on first use.
func (c *Cache) lockFor(key string) func() {
	c.mu.Lock()
	lock, ok := c.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[key] = lock
	}
	c.mu.Unlock()
	lock.Lock()
	return lock.Unlock
}
