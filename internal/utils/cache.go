package utils

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheItem 包装实际的数据，增加过期时间
type CacheItem[T any] struct {
	Value     T
	ExpiredAt time.Time
}

// TTLCache 带过期时间的 LRU 缓存封装
type TTLCache[K comparable, T any] struct {
	storage *lru.Cache[K, CacheItem[T]]
	ttl     time.Duration
}

// NewTTLCache 初始化，size 是最大缓存条数（如 1000），ttl 是数据有效期（如 1小时）
func NewTTLCache[K comparable, T any](size int, ttl time.Duration) *TTLCache[K, T] {
	// lru.New 是线程安全的
	c, _ := lru.New[K, CacheItem[T]](size)
	return &TTLCache[K, T]{
		storage: c,
		ttl:     ttl,
	}
}

// Set 写入（LRU 中 Add 会自动处理更新）
func (c *TTLCache[K, T]) Set(key K, value T) {
	item := CacheItem[T]{
		Value:     value,
		ExpiredAt: time.Now().Add(c.ttl),
	}
	c.storage.Add(key, item)
}

// Get 读取（带过期检查）
func (c *TTLCache[K, T]) Get(key K) (T, bool) {
	var zero T
	item, ok := c.storage.Get(key)
	if !ok {
		return zero, false
	}

	// 检查是否过期
	if time.Now().After(item.ExpiredAt) {
		c.storage.Remove(key) // 过期删除
		return zero, false
	}

	return item.Value, true
}

// Delete 删除
func (c *TTLCache[K, T]) Delete(key K) {
	c.storage.Remove(key)
}

// Len 获取当前长度
func (c *TTLCache[K, T]) Len() int {
	return c.storage.Len()
}
