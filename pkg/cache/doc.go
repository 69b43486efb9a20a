// Package cache provides a generic, thread-safe LRU cache used to bound the
// memory held by loaded resources such as per-locale message catalogs.
//
// When the cache reaches its configured capacity the least recently used
// entry is evicted. All operations are O(1) and safe for concurrent use.
//
//	lru := cache.NewLRU[string, Messages](16)
//	lru.Set("en", messages)
//	if m, ok := lru.Get("en"); ok {
//		// cache hit
//	}
//
// The implementation uses only the standard library; no external cache
// backend is involved.
package cache
