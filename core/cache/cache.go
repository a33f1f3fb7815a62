package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Cache is a thread-safe key-value store with per-entry TTL and tag indexing.
type Cache struct {
	m sync.Map
	// tagIndex maps tag string to a set of keys (*sync.Map of key -> struct{})
	tagIndex sync.Map
	now      func() time.Time
}

var (
	once     sync.Once
	instance *Cache
)

func GetInstance() *Cache {
	once.Do(func() {
		instance = NewCache()
	})
	return instance
}

// NewCache creates a new Cache instance.
func NewCache() *Cache {
	return &Cache{now: time.Now}
}

// WithClock replaces the time source (tests).
func (c *Cache) WithClock(now func() time.Time) *Cache {
	c.now = now
	return c
}

// cacheItem holds a value, its ttl and its expiration time.
type cacheItem struct {
	Value     interface{}
	TTL       time.Duration
	ExpiresAt int64 // Unix nanoseconds; 0 means no expiration
}

func (c *Cache) expiry(ttl time.Duration) int64 {
	if ttl <= 0 {
		return 0
	}
	return c.now().Add(ttl).UnixNano()
}

func (c *Cache) expired(item cacheItem) bool {
	return item.ExpiresAt > 0 && c.now().UnixNano() > item.ExpiresAt
}

// Set stores a value for a key. A ttl of 0 never expires. Tags group keys for DeleteByTag.
func (c *Cache) Set(key, value interface{}, ttl time.Duration, tags []string) {
	c.m.Store(key, cacheItem{Value: value, TTL: ttl, ExpiresAt: c.expiry(ttl)})
	if len(tags) > 0 {
		c.TagKey(key, tags)
	}
}

// Get retrieves a value for a key. Expired entries are removed and reported missing.
func (c *Cache) Get(key interface{}) (interface{}, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return nil, false
	}
	item := v.(cacheItem)
	if c.expired(item) {
		c.Delete(key)
		return nil, false
	}
	return item.Value, true
}

// Touch extends a live entry by its original TTL (sliding expiration).
func (c *Cache) Touch(key interface{}) bool {
	v, ok := c.m.Load(key)
	if !ok {
		return false
	}
	item := v.(cacheItem)
	if c.expired(item) {
		c.Delete(key)
		return false
	}
	item.ExpiresAt = c.expiry(item.TTL)
	c.m.Store(key, item)
	return true
}

// Delete removes a key from the cache and from every tag set.
func (c *Cache) Delete(key interface{}) {
	c.m.Delete(key)
	c.tagIndex.Range(func(_, val interface{}) bool {
		val.(*sync.Map).Delete(key)
		return true
	})
}

func makeCompositeKey(keys ...interface{}) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%v", k)
	}
	return strings.Join(parts, "|")
}

// SetN stores a value under a composite key.
func (c *Cache) SetN(keys []interface{}, value interface{}, ttl time.Duration, tags []string) {
	c.Set(makeCompositeKey(keys...), value, ttl, tags)
}

// GetN retrieves a value for a composite key.
func (c *Cache) GetN(keys ...interface{}) (interface{}, bool) {
	return c.Get(makeCompositeKey(keys...))
}

// DeleteN removes a composite key.
func (c *Cache) DeleteN(keys ...interface{}) {
	c.Delete(makeCompositeKey(keys...))
}

// IterateFilter returns the live values for which filter returns true.
func (c *Cache) IterateFilter(filter func(key, value interface{}) bool) []interface{} {
	var results []interface{}
	c.m.Range(func(key, v interface{}) bool {
		item := v.(cacheItem)
		if !c.expired(item) && filter(key, item.Value) {
			results = append(results, item.Value)
		}
		return true
	})
	return results
}

// Len counts live entries.
func (c *Cache) Len() int {
	n := 0
	c.m.Range(func(_, v interface{}) bool {
		if !c.expired(v.(cacheItem)) {
			n++
		}
		return true
	})
	return n
}

// Sweep removes expired entries and returns their keys and values.
func (c *Cache) Sweep() map[interface{}]interface{} {
	evicted := make(map[interface{}]interface{})
	c.m.Range(func(key, v interface{}) bool {
		item := v.(cacheItem)
		if c.expired(item) {
			evicted[key] = item.Value
		}
		return true
	})
	for key := range evicted {
		c.Delete(key)
	}
	return evicted
}

// TagKey assigns one or more tags to a cache key.
func (c *Cache) TagKey(key interface{}, tags []string) {
	for _, tag := range tags {
		val, _ := c.tagIndex.LoadOrStore(tag, &sync.Map{})
		val.(*sync.Map).Store(key, struct{}{})
	}
}

// GetKeysByTag returns all keys assigned to a tag.
func (c *Cache) GetKeysByTag(tag string) []interface{} {
	var keys []interface{}
	if val, ok := c.tagIndex.Load(tag); ok {
		val.(*sync.Map).Range(func(key, _ interface{}) bool {
			keys = append(keys, key)
			return true
		})
	}
	return keys
}

// DeleteByTag deletes all cache entries assigned to a tag.
func (c *Cache) DeleteByTag(tag string) {
	for _, key := range c.GetKeysByTag(tag) {
		c.Delete(key)
	}
	c.tagIndex.Delete(tag)
}
