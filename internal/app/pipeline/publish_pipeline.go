package pipeline

import (
	"context"
	"time"

	"github.com/maskor/spotlink/internal/domain"
	"github.com/maskor/spotlink/internal/ports"
)

// RunPublishPipeline drains the snapshot queue in batches and delivers them
// to the sink, committing the journal only after a successful write so an
// interrupted process replays undelivered snapshots. Blocks until ctx is
// cancelled.
func RunPublishPipeline(ctx context.Context, jr ports.Journal, q ports.StateQueue, snk ports.Sink, pol ports.Policy, obs ports.Observability) {
	for {
		if ctx.Err() != nil {
			return
		}

		batch := q.DequeueBatch(pol.MaxBatchSize)
		if len(batch) == 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(pol.IdleSleep):
			}
			continue
		}

		var (
			out   = make([]*domain.RobotState, 0, len(batch))
			maxID ports.JournalEntryID
		)
		for _, item := range batch {
			out = append(out, item.State)
			if item.ID > maxID {
				maxID = item.ID
			}
		}

		start := time.Now()
		if err := snk.WriteBatch(out); err != nil {
			obs.LogError("sink_write_failed", err)
			// keep journal; replays later
			continue
		}
		obs.ObserveLatency("spotlink_publish_latency_seconds", time.Since(start).Seconds())
		obs.IncCounter("spotlink_snapshots_published_total", float64(len(out)))

		if err := jr.Commit(maxID); err != nil {
			obs.LogError("journal_commit_failed", err)
		}
	}
}
