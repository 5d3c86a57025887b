// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

import "sync"

// Source is the read side of a [Value]: what consumers need to observe it
// without being able to publish.
type Source[T any] interface {
	// Subscribe registers a subscriber; see [Value.Subscribe].
	Subscribe() (<-chan T, func())
	// Get returns the latest value and whether anything was published.
	Get() (T, bool)
}

var _ Source[int] = (*Value[int])(nil)

// Value is an observable holder of the latest T.
//
// The zero value is not ready for use; construct it with [NewValue].
type Value[T any] struct {
	mu      sync.Mutex
	current T
	set     bool
	nextID  int
	subs    map[int]chan T
	closed  bool
}

// NewValue returns a Value with no published value yet. Subscribers of an
// empty Value receive nothing until the first Publish.
func NewValue[T any]() *Value[T] {
	return &Value[T]{subs: make(map[int]chan T)}
}

// NewValueWith returns a Value already holding initial.
func NewValueWith[T any](initial T) *Value[T] {
	v := NewValue[T]()
	v.current = initial
	v.set = true
	return v
}

// Publish stores v as the latest value and pushes it to every subscriber.
// Publishing after Close is a no-op.
func (s *Value[T]) Publish(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.current = v
	s.set = true
	for _, ch := range s.subs {
		offer(ch, v)
	}
}

// Get returns the latest value and whether anything was published.
func (s *Value[T]) Get() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.set
}

// Subscribe registers a new subscriber. The returned channel yields the
// current value (if any) immediately and then every later update. Calling
// cancel unregisters the subscriber and closes the channel; it is safe to
// call more than once.
func (s *Value[T]) Subscribe() (<-chan T, func()) {
	ch := make(chan T, 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	if s.set {
		ch <- s.current
	}
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}
	return ch, cancel
}

// Subscribers returns the number of active subscriptions.
func (s *Value[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Close closes every subscriber channel. Later subscriptions receive an
// already closed channel.
func (s *Value[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

// offer replaces whatever is buffered in ch with v. Callers hold the lock,
// and ch has capacity one, so the send never blocks.
func offer[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}
