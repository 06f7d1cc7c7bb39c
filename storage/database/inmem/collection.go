package inmemdb

import (
	"fmt"
	"sync"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
)

// Collection holds records of one type keyed by their string id, in insertion order.
type Collection[T any] struct {
	name  string
	key   func(T) string
	mutex sync.RWMutex
	order []string
	rows  map[string]T
}

func NewCollection[T any](name string, key func(T) string) *Collection[T] {
	return &Collection[T]{
		name: name,
		key:  key,
		rows: make(map[string]T),
	}
}

func (c *Collection[T]) Create(rec T) (T, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	id := c.key(rec)
	if id == "" {
		var zero T
		return zero, fmt.Errorf("%s: empty id", c.name)
	}
	if _, ok := c.rows[id]; ok {
		var zero T
		return zero, fmt.Errorf("%s %q already exists", c.name, id)
	}
	c.rows[id] = rec
	c.order = append(c.order, id)
	return rec, nil
}

func (c *Collection[T]) Get(id string) (T, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if rec, ok := c.rows[id]; ok {
		return rec, nil
	}
	var zero T
	return zero, core.NewNotFoundError(c.name, id)
}

func (c *Collection[T]) List() []T {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	recs := make([]T, 0, len(c.order))
	for _, id := range c.order {
		recs = append(recs, c.rows[id])
	}
	return recs
}

// Update runs fn on a copy of the record under the write lock and saves the copy only if fn succeeds.
func (c *Collection[T]) Update(id string, fn func(*T) error) (T, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	rec, ok := c.rows[id]
	if !ok {
		var zero T
		return zero, core.NewNotFoundError(c.name, id)
	}
	if err := fn(&rec); err != nil {
		var zero T
		return zero, err
	}
	c.rows[id] = rec
	return rec, nil
}

func (c *Collection[T]) Delete(id string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, ok := c.rows[id]; !ok {
		return core.NewNotFoundError(c.name, id)
	}
	delete(c.rows, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (c *Collection[T]) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.order)
}

// Reset drops every record.
func (c *Collection[T]) Reset() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.order = nil
	c.rows = make(map[string]T)
}
