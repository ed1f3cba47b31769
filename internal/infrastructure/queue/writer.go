package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/Hritik-Singh067/crm-backend/internal/api/metrics"
	"github.com/Hritik-Singh067/crm-backend/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Writer executes fire-and-forget persistence operations on a fixed set of
// workers. Ops are sharded by key with consistent hashing, so ops sharing a
// key run in enqueue order. Failures are logged and counted, never returned:
// by the time an op fails the HTTP response has already gone out.
type Writer struct {
	workers []chan ports.WriteOp
	log     zerolog.Logger
}

// NewWriter creates a Writer with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewWriter(numWorkers int, log zerolog.Logger) *Writer {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	w := &Writer{
		workers: make([]chan ports.WriteOp, numWorkers),
		log:     log,
	}
	for i := range w.workers {
		w.workers[i] = make(chan ports.WriteOp, channelBuffer)
	}
	return w
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (w *Writer) Start(ctx context.Context) {
	for i, ch := range w.workers {
		go w.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an op to the worker responsible for its key. Non-blocking
// up to channelBuffer capacity.
func (w *Writer) Enqueue(key string, op ports.WriteOp) {
	i := w.shardIndex(key)
	w.workers[i] <- op
	metrics.WriteQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(w.workers[i])))
}

// shardIndex maps a key deterministically to a worker index.
func (w *Writer) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(w.workers)
}

func (w *Writer) runWorker(ctx context.Context, id int, ch <-chan ports.WriteOp) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case op, ok := <-ch:
			if !ok {
				return
			}
			if err := op.Do(ctx); err != nil {
				metrics.WriteFailuresTotal.WithLabelValues(op.Resource).Inc()
				w.log.Error().Err(err).
					Str("resource", op.Resource).
					Int("worker_id", id).
					Msg("deferred write failed")
			} else {
				metrics.RecordsCreatedTotal.WithLabelValues(op.Resource).Inc()
			}
			metrics.WriteQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
		}
	}
}
