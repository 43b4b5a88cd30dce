package stream

import (
	"fmt"
	"sync"
)

// Stream is an unbounded FIFO queue safe for concurrent producers and
// consumers.
type Stream[T any] struct {
	name     string
	elements []T
	closed   bool
	*sync.Cond
}

func NewStream[T any](name string) *Stream[T] {
	return &Stream[T]{
		Cond: sync.NewCond(&sync.Mutex{}),
		name: name,
	}
}

func (s *Stream[T]) Push(elements ...T) {
	s.Cond.L.Lock()
	s.elements = append(s.elements, elements...)
	s.Cond.Broadcast()
	s.Cond.L.Unlock()
}

// Pull blocks until an element is available. It returns false once the
// stream is closed and drained.
func (s *Stream[T]) Pull() (T, bool) {
	s.Cond.L.Lock()
	defer s.Cond.L.Unlock()
	for len(s.elements) == 0 && !s.closed {
		s.Cond.Wait()
	}
	return s.pop()
}

// TryPull returns the next element without blocking.
func (s *Stream[T]) TryPull() (T, bool) {
	s.Cond.L.Lock()
	defer s.Cond.L.Unlock()
	return s.pop()
}

func (s *Stream[T]) pop() (T, bool) {
	var zero T
	if len(s.elements) == 0 {
		return zero, false
	}
	element := s.elements[0]
	s.elements = s.elements[1:]
	return element, true
}

func (s *Stream[T]) PullAll() []T {
	s.Cond.L.Lock()
	elements := s.elements
	s.elements = []T{}
	s.Cond.L.Unlock()
	return elements
}

func (s *Stream[T]) Len() int {
	s.Cond.L.Lock()
	defer s.Cond.L.Unlock()
	return len(s.elements)
}

// Close wakes blocked consumers. Elements already queued can still be pulled.
func (s *Stream[T]) Close() {
	s.Cond.L.Lock()
	s.closed = true
	s.Cond.Broadcast()
	s.Cond.L.Unlock()
}

func (s *Stream[T]) String() string {
	return fmt.Sprintf("Stream[%s](%d)", s.name, s.Len())
}
