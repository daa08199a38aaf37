package service

import "sync"

// signal is an observable value with last-write-wins delivery: each
// subscriber holds a one-slot buffer, and a newer published value replaces
// an unconsumed older one. Subscribers that joined after a publish receive
// the current value immediately.
type signal[T any] struct {
	mu      sync.Mutex
	has     bool
	current T
	nextID  int
	subs    map[int]chan T
}

func newSignal[T any]() *signal[T] {
	return &signal[T]{subs: make(map[int]chan T)}
}

// publish replaces the current value and offers it to every subscriber,
// displacing any value they have not consumed yet.
func (s *signal[T]) publish(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.has = true
	s.current = v
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}

// subscribe registers a new subscriber and returns its channel plus a cancel
// function. The current value, if any, is pre-loaded into the channel.
func (s *signal[T]) subscribe() (<-chan T, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	ch := make(chan T, 1)
	if s.has {
		ch <- s.current
	}
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}

	return ch, cancel
}
