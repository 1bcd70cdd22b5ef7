package router

import "sync"

// MemoryHistory is an in-process History used by native builds and tests.
type MemoryHistory struct {
	mu        sync.Mutex
	entries   []string
	index     int
	nextID    int
	listeners map[int]func(string)
}

// NewMemoryHistory creates a history whose only entry is initial.
func NewMemoryHistory(initial string) *MemoryHistory {
	if initial == "" {
		initial = "/"
	}
	return &MemoryHistory{
		entries:   []string{initial},
		listeners: make(map[int]func(string)),
	}
}

func (h *MemoryHistory) Path() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

// Push drops any forward entries and appends path.
func (h *MemoryHistory) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.index+1], path)
	h.index = len(h.entries) - 1
}

func (h *MemoryHistory) Listen(fn func(path string)) (stop func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

// Entries returns a copy of the history stack.
func (h *MemoryHistory) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.entries...)
}

// Back moves one entry back and notifies listeners, like a popstate event.
// It reports false when already at the first entry.
func (h *MemoryHistory) Back() bool {
	return h.move(-1)
}

// Forward moves one entry forward and notifies listeners.
func (h *MemoryHistory) Forward() bool {
	return h.move(1)
}

func (h *MemoryHistory) move(delta int) bool {
	h.mu.Lock()
	next := h.index + delta
	if next < 0 || next >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.index = next
	path := h.entries[next]
	listeners := make([]func(string), 0, len(h.listeners))
	for _, fn := range h.listeners {
		listeners = append(listeners, fn)
	}
	h.mu.Unlock()

	for _, fn := range listeners {
		fn(path)
	}
	return true
}
