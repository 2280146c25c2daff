package core

import "errors"

// Closed set of error kinds tagged at the adapter boundaries. Callers
// match with errors.Is instead of probing an error's shape.
var (
	// ErrChannelNotAccessible marks chat failures where sending any
	// further reply into the channel is presumed impossible (bot not
	// invited, channel deleted). Handlers short-circuit their
	// best-effort replies when they see this kind.
	ErrChannelNotAccessible = errors.New("channel not accessible")
)
