package queue

import (
	"context"
	"errors"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/webeco/storefront-system/internal/api/metrics"
	"github.com/webeco/storefront-system/internal/core/domain"
	"github.com/webeco/storefront-system/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes order status events to a fixed set of workers using
// consistent hashing on the order number, guaranteeing per-order event
// ordering.
type Dispatcher struct {
	workers []chan ports.OrderEventInput
	service ports.OrderEventService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.OrderEventService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.OrderEventInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.OrderEventInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its order number.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event ports.OrderEventInput) {
	d.workers[d.shardIndex(event.OrderNumber)] <- event
}

// EnqueueBatch enqueues multiple events preserving per-order ordering.
func (d *Dispatcher) EnqueueBatch(events []ports.OrderEventInput) {
	for _, e := range events {
		d.Enqueue(e)
	}
}

// shardIndex maps an order number deterministically to a worker index.
func (d *Dispatcher) shardIndex(orderNumber string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(orderNumber))
	return int(h.Sum32()) % len(d.workers)
}

// errorReason buckets processing failures for the error counter.
func errorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrOrderNotFound):
		return "order_not_found"
	default:
		return "update_failed"
	}
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.OrderEventInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, event); err != nil {
				metrics.OrderEventsErrorsTotal.WithLabelValues(errorReason(err)).Inc()
				d.log.Error().Err(err).
					Str("order_number", event.OrderNumber).
					Int("worker_id", id).
					Msg("event processing failed")
				continue
			}
			metrics.OrderEventsProcessedTotal.WithLabelValues(event.Status).Inc()
		}
	}
}
