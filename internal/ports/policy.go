package ports

import "time"

type Policy struct {
	MaxJournalSizeBytes int64
	MaxQueueLen         int
	MaxBatchSize        int
	IdleSleep           time.Duration

	OnJournalFull string // "block", "drop"
	OnQueueFull   string // "block", "drop", "reject"
}
