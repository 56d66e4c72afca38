// Package fifo provides a FIFO work queue drained by a single goroutine with
// high-water-mark backpressure.
package fifo

import (
	"context"
	"math"
	"sync"
)

// Queue buffers items and hands them to a processing function one at a time,
// in push order. At most one processing call is in flight at any moment.
type Queue[T any] struct {
	process       func(T)
	highWaterMark int

	mu        sync.Mutex
	items     []T
	draining  bool
	overMark  bool
	drained   []chan struct{}
	belowMark []chan struct{}
}

// New constructs a Queue. A non-positive highWaterMark disables backpressure.
func New[T any](process func(T), highWaterMark int) *Queue[T] {
	if highWaterMark <= 0 {
		highWaterMark = math.MaxInt
	}
	return &Queue[T]{
		process:       process,
		highWaterMark: highWaterMark,
	}
}

// Push appends items and starts the drain loop if it is not running already.
// It returns the buffered length after the append.
func (q *Queue[T]) Push(items ...T) int {
	q.mu.Lock()
	q.items = append(q.items, items...)
	n := len(q.items)
	q.overMark = n >= q.highWaterMark
	start := !q.draining && n > 0
	if start {
		q.draining = true
	}
	q.mu.Unlock()

	if start {
		go q.drain()
	}
	return n
}

// Len returns the number of buffered, not yet processed items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// WaitDrained blocks until the current drain loop has emptied the buffer.
// It returns immediately when the queue is idle.
func (q *Queue[T]) WaitDrained(ctx context.Context) error {
	q.mu.Lock()
	if !q.draining {
		q.mu.Unlock()
		return nil
	}
	ch := make(chan struct{})
	q.drained = append(q.drained, ch)
	q.mu.Unlock()

	return wait(ctx, ch)
}

// WaitBelowWatermark blocks while the buffer holds high-water-mark items or more.
func (q *Queue[T]) WaitBelowWatermark(ctx context.Context) error {
	q.mu.Lock()
	if !q.overMark {
		q.mu.Unlock()
		return nil
	}
	ch := make(chan struct{})
	q.belowMark = append(q.belowMark, ch)
	q.mu.Unlock()

	return wait(ctx, ch)
}

func (q *Queue[T]) drain() {
	for {
		q.mu.Lock()
		if len(q.items) == 0 {
			q.draining = false
			waiters := q.drained
			q.drained = nil
			q.mu.Unlock()
			release(waiters)
			return
		}
		item := q.items[0]
		var zero T
		q.items[0] = zero
		q.items = q.items[1:]
		q.mu.Unlock()

		q.process(item)

		q.mu.Lock()
		var waiters []chan struct{}
		if len(q.items) < q.highWaterMark {
			q.overMark = false
			waiters = q.belowMark
			q.belowMark = nil
		}
		q.mu.Unlock()
		release(waiters)
	}
}

func release(waiters []chan struct{}) {
	for _, ch := range waiters {
		close(ch)
	}
}

func wait(ctx context.Context, ch <-chan struct{}) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-ch:
		return nil
	}
}
