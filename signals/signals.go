package signals

import "sync"

// Signal[T] is a reactive value that notifies subscribers when changed.
// No build tags, fully testable outside WASM.
type Signal[T comparable] struct {
	mu     sync.RWMutex
	value  T
	nextID int
	subs   map[int]func(T)
	order  []int
}

// NewSignal creates a Signal with an initial value.
func NewSignal[T comparable](initial T) *Signal[T] {
	return &Signal[T]{value: initial, subs: make(map[int]func(T))}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies all subscribers.
// Setting the value it already holds is a no-op.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	if s.value == v {
		s.mu.Unlock()
		return
	}
	s.value = v
	subs := make([]func(T), 0, len(s.order))
	for _, id := range s.order {
		subs = append(subs, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
}

// Subscribe registers a callback fired when the value changes.
// Returns an unsubscribe func; call it in OnDestroy to avoid leaks.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}
