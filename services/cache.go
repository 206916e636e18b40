package services

import (
	"sync"

	"intent_search/logger"
	"intent_search/models"
)

// DefaultCacheCapacity 缓存条目数上限的默认值
const DefaultCacheCapacity = 200

// ResultCache 查询结果的进程内缓存
// 按插入顺序记录条目，写满后一次性淘汰最旧的一批，把占用压回上限以下的安全水位
type ResultCache struct {
	mu       sync.Mutex
	capacity int
	values   map[string]interface{}
	order    []string // 插入顺序，淘汰时从头部开始

	hits       int
	misses     int
	evictions  int
	lastEvictN int
}

// NewResultCache 创建缓存，capacity不合法时使用默认容量
func NewResultCache(capacity int) *ResultCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &ResultCache{
		capacity: capacity,
		values:   make(map[string]interface{}),
		order:    make([]string, 0, capacity),
	}
}

// Get 查询缓存，同时累计命中/未命中计数
func (c *ResultCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.values[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

// Put 写入缓存，超限时批量淘汰最旧的四分之一容量
func (c *ResultCache) Put(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.values[key]; exists {
		// 已有键只更新值，不调整插入位置
		c.values[key] = value
		return
	}

	c.values[key] = value
	c.order = append(c.order, key)

	if len(c.order) <= c.capacity {
		return
	}

	// 淘汰到 capacity - capacity/4 的水位，避免每次写入都触发淘汰
	evictN := len(c.order) - (c.capacity - c.capacity/4)
	if evictN < 1 {
		evictN = 1
	}
	for _, old := range c.order[:evictN] {
		delete(c.values, old)
	}
	c.order = append(c.order[:0], c.order[evictN:]...)
	c.evictions += evictN
	c.lastEvictN = evictN
	logger.Debug("缓存超限，批量淘汰最旧条目", "evicted", evictN, "remaining", len(c.order))
}

// Clear 清空全部条目，命中统计保留
func (c *ResultCache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.order)
	c.values = make(map[string]interface{})
	c.order = c.order[:0]
	return n
}

// Stats 返回当前缓存统计快照
func (c *ResultCache) Stats() models.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return models.CacheStats{
		Entries:    len(c.order),
		Capacity:   c.capacity,
		Hits:       c.hits,
		Misses:     c.misses,
		Evictions:  c.evictions,
		LastEvictN: c.lastEvictN,
	}
}
