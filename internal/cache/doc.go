// Package cache provides a generic bounded LRU cache.
//
//	c := cache.New[glyphKey, motion.BezierPath](1024)
//	c.Set(k, outline)
//	p, ok := c.Get(k)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
