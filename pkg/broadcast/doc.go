// Package broadcast provides a generic pub/sub messaging system with pluggable backends.
//
// The package defines two main interfaces:
//   - Broadcaster: sends messages to multiple subscribers
//   - Subscriber: receives broadcast messages
//
// The design allows for pluggable backends (Redis, NATS, etc.) while providing
// a consistent API. Currently includes an in-memory implementation.
//
// # Usage
//
//	broadcaster := broadcast.NewMemoryBroadcaster[string](100)
//	defer broadcaster.Close()
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	subscriber := broadcaster.Subscribe(ctx)
//	defer subscriber.Close()
//
//	go func() {
//		for msg := range subscriber.Receive(ctx) {
//			fmt.Printf("Received: %s\n", msg.Data)
//		}
//	}()
//
//	broadcaster.Broadcast(ctx, broadcast.Message[string]{Data: "Hello, World!"})
//
// # Memory Implementation
//
// MemoryBroadcaster delivers messages without blocking: if a subscriber's
// buffer is full, messages are dropped for that subscriber rather than
// stalling the broadcast. Subscriptions are cleaned up automatically when
// their context is cancelled. All operations are safe for concurrent use,
// and operations on closed resources will not panic.
package broadcast
