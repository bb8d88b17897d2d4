package query

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	// DefaultStaleTime 条目视为新鲜的窗口。
	DefaultStaleTime = 30 * time.Second
	// DefaultGCTime 过期条目的保留上限，超过后整条移除。
	DefaultGCTime = 5 * time.Minute
)

// FetchFunc 缓存未命中时的取数函数。
type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	value     any
	fetchedAt time.Time
}

// Cache 按查询身份缓存读结果：新鲜窗口内直接命中，
// 同一 Key 的并发取数去重（singleflight），
// 刷新采用后写覆盖（last-write-wins）。失败不缓存。
type Cache struct {
	mu        sync.Mutex
	entries   map[Key]entry
	group     singleflight.Group
	staleTime time.Duration
	gcTime    time.Duration
	now       func() time.Time
}

// NewCache 建立缓存，窗口传零值用默认配置。
func NewCache(staleTime, gcTime time.Duration) *Cache {
	if staleTime <= 0 {
		staleTime = DefaultStaleTime
	}
	if gcTime <= 0 {
		gcTime = DefaultGCTime
	}
	return &Cache{
		entries:   make(map[Key]entry),
		staleTime: staleTime,
		gcTime:    gcTime,
		now:       time.Now,
	}
}

// Get 返回新鲜的缓存值，否则执行 fetch 并写回。
func (c *Cache) Get(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	c.mu.Lock()
	c.gcLocked()
	if e, ok := c.entries[key]; ok && c.now().Sub(e.fetchedAt) < c.staleTime {
		c.mu.Unlock()
		return e.value, nil
	}
	c.mu.Unlock()

	value, err, _ := c.group.Do(string(key), func() (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = entry{value: value, fetchedAt: c.now()}
	c.mu.Unlock()
	return value, nil
}

// Invalidate 精确失效若干键，通常跟在一次变更之后。
func (c *Cache) Invalidate(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
}

// InvalidatePrefix 按前缀批量失效，例如使一个资源的全部列表查询过期。
func (c *Cache) InvalidatePrefix(prefix Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(string(key), string(prefix)) {
			delete(c.entries, key)
		}
	}
}

// gcLocked 机会式清理超过保留上限的条目，调用方需持锁。
func (c *Cache) gcLocked() {
	now := c.now()
	for key, e := range c.entries {
		if now.Sub(e.fetchedAt) >= c.gcTime {
			delete(c.entries, key)
		}
	}
}
