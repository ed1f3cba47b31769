package ports

import "context"

// WriteOp is a deferred persistence operation executed by a write queue
// worker. Resource labels the collection for logging and metrics.
type WriteOp struct {
	Resource string
	Do       func(ctx context.Context) error
}

// WriteQueue accepts persistence operations whose completion the caller does
// not wait for. Ops sharing a key execute in enqueue order.
type WriteQueue interface {
	Enqueue(key string, op WriteOp)
}
