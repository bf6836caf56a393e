package ports

import "github.com/maskor/spotlink/internal/domain"

// JournalEntryID uniquely identifies a journaled snapshot.
type JournalEntryID uint64

// Journal persists assembled snapshots until the publish loop has delivered
// them, so a restart republishes anything unacknowledged.
type Journal interface {
	Append(s *domain.RobotState) (JournalEntryID, error)
	Iterate(from JournalEntryID, fn func(id JournalEntryID, s *domain.RobotState) error) error
	Commit(upto JournalEntryID) error
	TruncateCommitted() error
	Stats() JournalStats
}

// JournalStats exposes journal metadata for observability.
type JournalStats struct {
	OldestUncommitted JournalEntryID
	LatestAppended    JournalEntryID
	SizeBytes         int64
}
