package ports

import "github.com/maskor/spotlink/internal/domain"

// QueuedState is one snapshot buffered between the poll and publish loops,
// tagged with its journal entry for commit tracking.
type QueuedState struct {
	ID    JournalEntryID
	State *domain.RobotState
}

// StateQueue is a bounded FIFO buffer of assembled snapshots.
type StateQueue interface {
	Enqueue(id JournalEntryID, s *domain.RobotState) bool
	DequeueBatch(max int) []QueuedState
	Len() int
}
