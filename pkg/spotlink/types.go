package spotlink

import (
	"github.com/maskor/spotlink/internal/api"
	"github.com/maskor/spotlink/internal/assembler"
	"github.com/maskor/spotlink/internal/domain"
	"github.com/maskor/spotlink/internal/ports"
)

// RobotState is one complete, time-consistent snapshot of the robot. It is
// exported so custom sinks and embedding services can consume it directly.
type RobotState = domain.RobotState

// QueuedState represents a snapshot buffered inside the bounded queue.
type QueuedState = ports.QueuedState

// StateClient fetches raw robot state from any transport (the built-in
// JSON-RPC client, simulators, test doubles).
type StateClient = ports.StateClient

// RawSnapshot is the untranslated wire form of one robot state fetch.
// Custom StateClient implementations produce it.
type RawSnapshot = api.RobotStateSnapshot

// TimeSync provides the clock-skew estimate applied to every timestamp.
type TimeSync = ports.TimeSync

// Sink consumes batches of snapshots and persists or forwards them.
type Sink = ports.Sink

// StateQueue is the bounded, in-memory queue between the poll and publish
// loops.
type StateQueue = ports.StateQueue

// Journal abstracts the on-disk snapshot log used for crash recovery.
type Journal = ports.Journal

// JournalStats exposes journal metadata for observability.
type JournalStats = ports.JournalStats

// JournalEntryID uniquely identifies a journaled snapshot.
type JournalEntryID = ports.JournalEntryID

// Observability emits metrics/logs about throughput, latency, and failures.
type Observability = ports.Observability

// Field is a structured log/metric field used by Observability
// implementations.
type Field = ports.Field

// Policy controls journal/queue thresholds.
type Policy = ports.Policy

// FetchError reports a failed or unusable remote state fetch.
type FetchError = assembler.FetchError

// ErrTimeSyncUnavailable is returned while no valid clock-skew estimate
// exists.
var ErrTimeSyncUnavailable = assembler.ErrTimeSyncUnavailable
