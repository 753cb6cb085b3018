package workers

import (
	"context"
	"sync"

	kafkago "github.com/segmentio/kafka-go"
)

// offsetTracker commits a partition only up to its highest contiguously
// processed offset.
type offsetTracker struct {
	mu         sync.Mutex
	reader     messageReader
	partitions map[int]*partitionOffsets
}

type partitionOffsets struct {
	// inflight holds fetched messages in fetch order
	inflight  []kafkago.Message
	done      map[int64]bool
	committed int64
}

func newOffsetTracker(reader messageReader) *offsetTracker {
	return &offsetTracker{
		reader:     reader,
		partitions: make(map[int]*partitionOffsets),
	}
}

// track registers a fetched message. Messages must be tracked in fetch order.
func (t *offsetTracker) track(msg kafkago.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.partitions[msg.Partition]
	if !ok {
		p = &partitionOffsets{done: make(map[int64]bool), committed: -1}
		t.partitions[msg.Partition] = p
	}
	p.inflight = append(p.inflight, msg)
}

// complete marks msg processed and commits the partition's contiguous prefix.
// It reports whether a commit was issued.
func (t *offsetTracker) complete(ctx context.Context, msg kafkago.Message) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.partitions[msg.Partition]
	if !ok {
		return false, nil
	}
	p.done[msg.Offset] = true

	var last kafkago.Message
	advanced := false
	for len(p.inflight) > 0 && p.done[p.inflight[0].Offset] {
		last = p.inflight[0]
		delete(p.done, last.Offset)
		p.inflight = p.inflight[1:]
		advanced = true
	}
	if !advanced || last.Offset <= p.committed {
		return false, nil
	}

	// Committing under the lock keeps commits per partition monotonic.
	if err := t.reader.CommitMessages(ctx, last); err != nil {
		return false, err
	}
	p.committed = last.Offset
	return true, nil
}
