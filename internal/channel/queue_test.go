package channel

import (
	"context"
	"testing"
	"time"

	"github.com/cryptk/omnilogic-local/internal/omnitypes"
	"github.com/cryptk/omnilogic-local/internal/protocol"
)

func TestQueuePushBackDropsOnOverflow(t *testing.T) {
	q := newMessageQueue(2)
	if dropped := q.PushBack(protocol.New(1, omnitypes.MessageTypeAck, nil)); dropped {
		t.Fatalf("first push should not drop")
	}
	if dropped := q.PushBack(protocol.New(2, omnitypes.MessageTypeAck, nil)); dropped {
		t.Fatalf("second push should not drop")
	}
	if dropped := q.PushBack(protocol.New(3, omnitypes.MessageTypeAck, nil)); !dropped {
		t.Fatalf("third push should drop, queue at capacity")
	}
}

func TestQueuePushFrontTakesPriority(t *testing.T) {
	q := newMessageQueue(4)
	q.PushBack(protocol.New(1, omnitypes.MessageTypeAck, nil))
	q.PushFront(protocol.New(2, omnitypes.MessageTypeAck, nil))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	first, err := q.PopFront(ctx)
	if err != nil {
		t.Fatalf("PopFront: %v", err)
	}
	if first.ID != 2 {
		t.Fatalf("expected front-pushed message first, got id %d", first.ID)
	}
}

func TestQueuePopFrontRespectsContextCancellation(t *testing.T) {
	q := newMessageQueue(4)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := q.PopFront(ctx); err == nil {
		t.Fatalf("expected context deadline error on empty queue")
	}
}
