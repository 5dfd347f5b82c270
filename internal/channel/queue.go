package channel

import (
	"context"
	"sync"

	"github.com/cryptk/omnilogic-local/internal/protocol"
)

// messageQueue is a bounded FIFO of decoded messages. PushBack drops the
// incoming message rather than growing past capacity, so the reader
// goroutine never blocks on a slow consumer. PushFront is used only to
// return a message that was just popped back to the head of the queue,
// which by construction never exceeds capacity.
type messageQueue struct {
	mu       sync.Mutex
	items    []*protocol.Message
	capacity int
	notify   chan struct{}
}

func newMessageQueue(capacity int) *messageQueue {
	return &messageQueue{
		capacity: capacity,
		notify:   make(chan struct{}, 1),
	}
}

// PushBack appends msg to the tail. It reports true if the queue was
// already at capacity and the message was dropped instead.
func (q *messageQueue) PushBack(msg *protocol.Message) (dropped bool) {
	q.mu.Lock()
	if len(q.items) >= q.capacity {
		q.mu.Unlock()
		return true
	}
	q.items = append(q.items, msg)
	q.mu.Unlock()
	q.signal()
	return false
}

// PushFront reinserts msg at the head of the queue.
func (q *messageQueue) PushFront(msg *protocol.Message) {
	q.mu.Lock()
	q.items = append([]*protocol.Message{msg}, q.items...)
	q.mu.Unlock()
	q.signal()
}

func (q *messageQueue) signal() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// PopFront removes and returns the head of the queue, blocking until a
// message is available or ctx is done.
func (q *messageQueue) PopFront(ctx context.Context) (*protocol.Message, error) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			msg := q.items[0]
			q.items = q.items[1:]
			q.mu.Unlock()
			return msg, nil
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-q.notify:
		}
	}
}
