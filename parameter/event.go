package parameter

// Event queue sizing. Must be a power of two for mask arithmetic.
const (
	EventQueueSize  = 1024
	EventBufferMask = EventQueueSize - 1
)
