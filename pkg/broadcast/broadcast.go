package broadcast

import "context"

// Message wraps broadcast payloads for type-safe delivery.
type Message[T any] struct {
	Data T
}

// Broadcaster sends messages to multiple subscribers.
// Implementations must be safe for concurrent use.
type Broadcaster[T any] interface {
	// Broadcast delivers the message to all active subscribers.
	// Delivery is best-effort: subscribers with full buffers are skipped.
	Broadcast(ctx context.Context, msg Message[T]) error

	// Subscribe registers a new subscriber. The subscription is removed
	// automatically when ctx is cancelled or the subscriber is closed.
	Subscribe(ctx context.Context) Subscriber[T]

	// Close shuts down the broadcaster and all subscriptions.
	Close() error
}

// Subscriber receives broadcast messages.
type Subscriber[T any] interface {
	// Receive returns the channel messages are delivered on.
	// The channel is closed when the subscription ends.
	Receive(ctx context.Context) <-chan Message[T]

	// Close terminates the subscription.
	Close() error
}
