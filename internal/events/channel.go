package events

import (
	"context"
	"errors"
	"sync"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// ErrClosed is returned by Send once the channel has been closed and by Next
// once it is closed and drained.
var ErrClosed = errors.New("event channel closed")

// Channel is an unbounded, ordered, multi-producer single-consumer queue.
// Send never blocks, so scan workers and tickers are never throttled by a
// slow consumer.
type Channel struct {
	mu     sync.Mutex
	queue  *linkedlistqueue.Queue
	notify chan struct{}
	closed bool
}

func NewChannel() *Channel {
	return &Channel{
		queue:  linkedlistqueue.New(),
		notify: make(chan struct{}, 1),
	}
}

func (channel *Channel) Send(event Event) error {
	channel.mu.Lock()
	if channel.closed {
		channel.mu.Unlock()
		return ErrClosed
	}
	channel.queue.Enqueue(event)
	channel.mu.Unlock()
	channel.wake()
	return nil
}

// Next blocks until an event is available, the channel is closed and
// drained, or ctx is done.
func (channel *Channel) Next(ctx context.Context) (Event, error) {
	for {
		channel.mu.Lock()
		value, ok := channel.queue.Dequeue()
		closed := channel.closed
		channel.mu.Unlock()
		if ok {
			return value.(Event), nil
		}
		if closed {
			return nil, ErrClosed
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-channel.notify:
		}
	}
}

// TryNext returns the next queued event without blocking.
func (channel *Channel) TryNext() (Event, bool) {
	channel.mu.Lock()
	defer channel.mu.Unlock()
	value, ok := channel.queue.Dequeue()
	if !ok {
		return nil, false
	}
	return value.(Event), true
}

func (channel *Channel) Len() int {
	channel.mu.Lock()
	defer channel.mu.Unlock()
	return channel.queue.Size()
}

// Close rejects further sends. Events already queued can still be received.
func (channel *Channel) Close() {
	channel.mu.Lock()
	channel.closed = true
	channel.mu.Unlock()
	channel.wake()
}

func (channel *Channel) wake() {
	select {
	case channel.notify <- struct{}{}:
	default:
	}
}
