// Package observable provides a single-value container that pushes its
// latest value to subscribers.
package observable

import "sync"

// Value holds one value of type T. Subscribers see the current value right
// away and then every later value; a slow subscriber only ever misses
// intermediate values, never the latest one, and never blocks Set.
type Value[T any] struct {
	mu      sync.RWMutex
	current T
	subs    map[int]chan T
	nextID  int
}

func New[T any](initial T) *Value[T] {
	return &Value[T]{
		current: initial,
		subs:    make(map[int]chan T),
	}
}

func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.current
}

// Set replaces the value and notifies every subscriber.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.current = value
	for _, ch := range v.subs {
		offer(ch, value)
	}
}

// Subscribe returns a channel primed with the current value and a cancel
// func that closes it. Cancel is idempotent.
func (v *Value[T]) Subscribe() (<-chan T, func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	ch := make(chan T, 1)
	ch <- v.current

	id := v.nextID
	v.nextID++
	v.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()

			delete(v.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

// Subscribers reports how many subscriptions are open.
func (v *Value[T]) Subscribers() int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return len(v.subs)
}

// offer replaces whatever is still buffered in ch with value.
func offer[T any](ch chan T, value T) {
	select {
	case ch <- value:
		return
	default:
	}

	select {
	case <-ch:
	default:
	}

	select {
	case ch <- value:
	default:
	}
}
