// Package membucket keeps the published stadium records in process memory.
package membucket

import (
	"context"
	"sync"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/stadium"
)

type bucket struct {
	order    []string
	payloads map[string][]byte
}

type Store struct {
	mutex   sync.RWMutex
	buckets map[string]*bucket
}

var _ stadium.BucketStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{buckets: make(map[string]*bucket)}
}

func (s *Store) Upsert(_ context.Context, name, key string, payload []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	b, ok := s.buckets[name]
	if !ok {
		b = &bucket{payloads: make(map[string][]byte)}
		s.buckets[name] = b
	}
	if _, ok = b.payloads[key]; !ok {
		b.order = append(b.order, key)
	}
	b.payloads[key] = append([]byte(nil), payload...)
	return nil
}

func (s *Store) Delete(_ context.Context, name, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	b, ok := s.buckets[name]
	if !ok {
		return core.NewNotFoundError(name, key)
	}
	if _, ok = b.payloads[key]; !ok {
		return core.NewNotFoundError(name, key)
	}
	delete(b.payloads, key)
	for i, k := range b.order {
		if k == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) List(_ context.Context, name string) ([][]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	b, ok := s.buckets[name]
	if !ok {
		return [][]byte{}, nil
	}
	out := make([][]byte, 0, len(b.order))
	for _, k := range b.order {
		out = append(out, append([]byte(nil), b.payloads[k]...))
	}
	return out, nil
}
