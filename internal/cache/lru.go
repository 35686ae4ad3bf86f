package cache

// entry is one cached value, linked into the recency ring of its cache.
type entry[K comparable, V any] struct {
	key        K
	value      V
	prev, next *entry[K, V]
}

// ring orders entries by recency around a sentinel: root.next is the most
// recently used entry and root.prev the least. The zero ring is empty.
// It is not safe for concurrent use; Cache guards it with its mutex.
type ring[K comparable, V any] struct {
	root entry[K, V]
}

func (r *ring[K, V]) lazyInit() {
	if r.root.next == nil {
		r.root.next = &r.root
		r.root.prev = &r.root
	}
}

// pushFront links e as the most recently used entry.
func (r *ring[K, V]) pushFront(e *entry[K, V]) {
	r.lazyInit()
	e.prev = &r.root
	e.next = r.root.next
	r.root.next.prev = e
	r.root.next = e
}

// touch moves a linked entry to the front.
func (r *ring[K, V]) touch(e *entry[K, V]) {
	if r.root.next == e {
		return
	}
	r.unlink(e)
	r.pushFront(e)
}

// unlink removes e from the ring.
func (r *ring[K, V]) unlink(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev, e.next = nil, nil
}

// oldest returns the least recently used entry, or nil.
func (r *ring[K, V]) oldest() *entry[K, V] {
	if r.root.prev == nil || r.root.prev == &r.root {
		return nil
	}
	return r.root.prev
}

// reset empties the ring.
func (r *ring[K, V]) reset() {
	r.root.next, r.root.prev = nil, nil
}
