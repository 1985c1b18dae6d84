package database

import "sync"

// Collection is an insertion-ordered in-memory table with O(1) id lookup.
// Ids are assigned by a per-collection counter starting at 1; ids are never
// reused and records are never removed. Insertion order is stable within a
// process run only.
type Collection[T any] struct {
	mu     sync.RWMutex
	lastID int
	order  []int
	items  map[int]T
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{
		items: make(map[int]T),
	}
}

// Insert assigns the next id, stores the record produced by build and
// returns it. It never fails; uniqueness rules live upstream.
func (c *Collection[T]) Insert(build func(id int) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastID++
	record := build(c.lastID)
	c.items[c.lastID] = record
	c.order = append(c.order, c.lastID)
	return record
}

// Get returns the record and whether it exists. Absence is a sentinel,
// never an error.
func (c *Collection[T]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	record, ok := c.items[id]
	return record, ok
}

// Update applies the caller's patch function to the stored record and
// returns the result, or the absent sentinel when the id is unknown.
func (c *Collection[T]) Update(id int, apply func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	record = apply(record)
	c.items[id] = record
	return record, true
}

// Where returns all matching records in insertion order.
func (c *Collection[T]) Where(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	records := make([]T, 0)
	for _, id := range c.order {
		if record := c.items[id]; match(record) {
			records = append(records, record)
		}
	}
	return records
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}
