package stemmer

import (
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache memoizes stems by normalized input word. Writes for a key are
// idempotent: the same input always computes the same stem.
type Cache interface {
	Get(word string) (string, bool)
	Put(word, stem string)
	Len() int
	Snapshot() map[string]string
}

// NewCache returns an unbounded cache when size <= 0 and an LRU bounded to
// size entries otherwise.
func NewCache(size int) Cache {
	if size <= 0 {
		return &mapCache{}
	}
	c, err := lru.New[string, string](size)
	if err != nil {
		return &mapCache{}
	}
	return &lruCache{c: c}
}

// mapCache never evicts; it lives as long as the process.
type mapCache struct {
	m sync.Map
	n atomic.Int64
}

func (c *mapCache) Get(word string) (string, bool) {
	v, ok := c.m.Load(word)
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (c *mapCache) Put(word, stem string) {
	if _, loaded := c.m.Swap(word, stem); !loaded {
		c.n.Add(1)
	}
}

func (c *mapCache) Len() int {
	return int(c.n.Load())
}

func (c *mapCache) Snapshot() map[string]string {
	out := make(map[string]string, c.Len())
	c.m.Range(func(k, v any) bool {
		out[k.(string)] = v.(string)
		return true
	})
	return out
}

type lruCache struct {
	c *lru.Cache[string, string]
}

func (c *lruCache) Get(word string) (string, bool) { return c.c.Get(word) }
func (c *lruCache) Put(word, stem string)          { c.c.Add(word, stem) }
func (c *lruCache) Len() int                       { return c.c.Len() }

func (c *lruCache) Snapshot() map[string]string {
	keys := c.c.Keys()
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := c.c.Peek(k); ok {
			out[k] = v
		}
	}
	return out
}
