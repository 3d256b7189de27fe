package broadcast

import (
	"context"
	"sync"
)

// MemoryBroadcaster is an in-memory Broadcaster implementation with
// non-blocking delivery. Messages for subscribers whose buffers are full
// are dropped rather than blocking the broadcast, so a slow consumer
// cannot stall the publisher or its peers.
type MemoryBroadcaster[T any] struct {
	mu      sync.RWMutex
	subs    map[*memorySubscriber[T]]struct{}
	buffer  int
	closed  bool
	closeMu sync.Mutex
}

// NewMemoryBroadcaster creates an in-memory broadcaster. Each subscriber
// gets its own buffered channel of the given size.
func NewMemoryBroadcaster[T any](buffer int) *MemoryBroadcaster[T] {
	if buffer < 1 {
		buffer = 1
	}
	return &MemoryBroadcaster[T]{
		subs:   make(map[*memorySubscriber[T]]struct{}),
		buffer: buffer,
	}
}

// Broadcast delivers msg to every active subscriber without blocking.
func (b *MemoryBroadcaster[T]) Broadcast(ctx context.Context, msg Message[T]) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBroadcasterClosed
	}

	for sub := range b.subs {
		select {
		case sub.ch <- msg:
		default:
			// Full buffer: drop for this subscriber instead of blocking.
		}
	}
	return nil
}

// Subscribe registers a subscriber that is removed when ctx is cancelled.
func (b *MemoryBroadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	sub := &memorySubscriber[T]{
		ch:     make(chan Message[T], b.buffer),
		parent: b,
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(sub.ch)
		sub.closed = true
		return sub
	}
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		_ = sub.Close()
	}()

	return sub
}

// Close shuts down the broadcaster and closes all subscriber channels.
// Safe to call multiple times.
func (b *MemoryBroadcaster[T]) Close() error {
	b.closeMu.Lock()
	defer b.closeMu.Unlock()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for sub := range b.subs {
		sub.closeLocked()
	}
	b.subs = nil
	return nil
}

func (b *MemoryBroadcaster[T]) unsubscribe(sub *memorySubscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	delete(b.subs, sub)
}

type memorySubscriber[T any] struct {
	ch     chan Message[T]
	parent *MemoryBroadcaster[T]
	mu     sync.Mutex
	closed bool
}

func (s *memorySubscriber[T]) Receive(ctx context.Context) <-chan Message[T] {
	return s.ch
}

func (s *memorySubscriber[T]) Close() error {
	s.parent.unsubscribe(s)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.ch)
	return nil
}

// closeLocked closes the subscriber channel while the parent already holds
// its own lock, bypassing unsubscribe to avoid deadlock.
func (s *memorySubscriber[T]) closeLocked() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}
