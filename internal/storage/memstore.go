package storage

import "sync"

// MemStore is a Storer backed only by memory. It is used as the degraded
// fallback when a file store cannot be loaded, and in tests. Writes succeed
// but do not survive the process.
type MemStore[T ValidatingSpec] struct {
	records map[Identifier]T

	mu sync.RWMutex
}

func NewMemStore[T ValidatingSpec]() *MemStore[T] {
	return &MemStore[T]{
		records: map[Identifier]T{},
	}
}

func (s *MemStore[T]) Save(id Identifier, o T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[id] = o
	return nil
}

func (s *MemStore[T]) Delete(id Identifier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, id)
	return nil
}

func (s *MemStore[T]) Get(id Identifier) T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.records[id]
	if !ok {
		var nilVal T
		return nilVal
	}
	return val
}

func (s *MemStore[T]) GetAll() map[Identifier]T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vals := map[Identifier]T{}
	for id, v := range s.records {
		vals[id] = v
	}
	return vals
}
