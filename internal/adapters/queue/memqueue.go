package queue

import (
	"sync"

	"github.com/maskor/spotlink/internal/domain"
	"github.com/maskor/spotlink/internal/ports"
)

// MemQueue is a bounded in-memory snapshot queue that preserves FIFO
// ordering between the poll loop and the publish loop.
type MemQueue struct {
	mu   sync.Mutex
	data []ports.QueuedState
	cap  int
}

func NewMemQueue(capacity int) *MemQueue {
	return &MemQueue{
		data: make([]ports.QueuedState, 0, capacity),
		cap:  capacity,
	}
}

func (q *MemQueue) Enqueue(id ports.JournalEntryID, s *domain.RobotState) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.data) >= q.cap {
		return false
	}
	q.data = append(q.data, ports.QueuedState{ID: id, State: s})
	return true
}

func (q *MemQueue) DequeueBatch(max int) []ports.QueuedState {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.data) == 0 {
		return nil
	}
	if max <= 0 || max > len(q.data) {
		max = len(q.data)
	}
	out := make([]ports.QueuedState, max)
	copy(out, q.data[:max])
	q.data = append(q.data[:0], q.data[max:]...)
	return out
}

func (q *MemQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.data)
}

var _ ports.StateQueue = (*MemQueue)(nil)
