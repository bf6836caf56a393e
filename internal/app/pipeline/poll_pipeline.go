package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/maskor/spotlink/internal/domain"
	"github.com/maskor/spotlink/internal/ports"
)

// StateAssembler produces one complete snapshot per call.
type StateAssembler interface {
	Assemble(ctx context.Context) (*domain.RobotState, error)
}

// RunPollPipeline drives the assembler on a fixed cadence and hands each
// snapshot to the journal and queue. A failed assembly yields no update:
// the last journaled snapshot stays the last-known-good value. Blocks until
// ctx is cancelled.
func RunPollPipeline(ctx context.Context, asm StateAssembler, jr ports.Journal, q ports.StateQueue, interval time.Duration, pol ports.Policy, obs ports.Observability) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		start := time.Now()
		s, err := asm.Assemble(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			obs.IncCounter("spotlink_assembly_failures_total", 1)
			obs.LogError("assembly_failed", err)
			continue
		}
		obs.ObserveLatency("spotlink_assembly_latency_seconds", time.Since(start).Seconds())
		obs.IncCounter("spotlink_snapshots_assembled_total", 1)

		if !waitForJournalCapacity(ctx, jr, pol, obs) {
			continue
		}

		id, err := jr.Append(s)
		if err != nil {
			obs.LogCritical("journal_append_failed", err)
			continue
		}

		if !enqueueWithPolicy(ctx, q, id, s, pol, obs) {
			obs.IncCounter("spotlink_queue_dropped_total", 1)
		}
	}
}

func waitForJournalCapacity(ctx context.Context, jr ports.Journal, pol ports.Policy, obs ports.Observability) bool {
	if pol.MaxJournalSizeBytes <= 0 {
		return true
	}
	sleep := pol.IdleSleep
	if sleep <= 0 {
		sleep = 5 * time.Millisecond
	}

	for {
		stats := jr.Stats()
		if stats.SizeBytes < pol.MaxJournalSizeBytes {
			return true
		}

		switch pol.OnJournalFull {
		case "block":
			if ctx.Err() != nil {
				return false
			}
			time.Sleep(sleep)
		case "drop":
			obs.LogError("journal_full_drop", fmt.Errorf("size=%d limit=%d", stats.SizeBytes, pol.MaxJournalSizeBytes))
			return false
		default:
			obs.LogError("journal_policy_invalid", fmt.Errorf("policy=%s", pol.OnJournalFull))
			return false
		}
	}
}

func enqueueWithPolicy(ctx context.Context, q ports.StateQueue, id ports.JournalEntryID, s *domain.RobotState, pol ports.Policy, obs ports.Observability) bool {
	sleep := pol.IdleSleep
	if sleep <= 0 {
		sleep = 5 * time.Millisecond
	}

	for {
		if ok := q.Enqueue(id, s); ok {
			return true
		}

		switch pol.OnQueueFull {
		case "block":
			if ctx.Err() != nil {
				return false
			}
			time.Sleep(sleep)
		case "drop", "reject":
			obs.LogError("queue_full_drop", fmt.Errorf("queue length exceeded capacity %d", pol.MaxQueueLen))
			return false
		default:
			obs.LogError("queue_policy_invalid", fmt.Errorf("policy=%s", pol.OnQueueFull))
			return false
		}
	}
}
