package broadcast

import "errors"

var (
	// ErrBroadcasterClosed is returned when broadcasting on a closed broadcaster.
	ErrBroadcasterClosed = errors.New("broadcaster is closed")
	// ErrSubscriberClosed is returned when operating on a closed subscriber.
	ErrSubscriberClosed = errors.New("subscriber is closed")
)
