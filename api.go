package spotlink

import (
	base "github.com/maskor/spotlink/pkg/spotlink"
)

// Re-exported errors for convenience.
var (
	ErrTimeSyncUnavailable = base.ErrTimeSyncUnavailable
	ErrChannelSinkClosed   = base.ErrChannelSinkClosed
)

// Type aliases so consumers can import github.com/maskor/spotlink directly.
type (
	Config            = base.Config
	RobotConfig       = base.RobotConfig
	RPCConfig         = base.RPCConfig
	TimeSyncConfig    = base.TimeSyncConfig
	TimescaleConfig   = base.TimescaleConfig
	AMQPConfig        = base.AMQPConfig
	MetricsConfig     = base.MetricsConfig
	JournalConfig     = base.JournalConfig
	Policy            = base.Policy
	DriverRuntime     = base.DriverRuntime
	DriverOption      = base.DriverOption
	RobotState        = base.RobotState
	RawSnapshot       = base.RawSnapshot
	SnapshotBatchSink = base.SnapshotBatchSink
	StateClient       = base.StateClient
	TimeSync          = base.TimeSync
	Sink              = base.Sink
	StateQueue        = base.StateQueue
	Journal           = base.Journal
	Observability     = base.Observability
	QueuedState       = base.QueuedState
	JournalEntryID    = base.JournalEntryID
	JournalStats      = base.JournalStats
	FetchError        = base.FetchError
)

// Config helpers.
func LoadConfig(path string) (*Config, error) {
	return base.LoadConfig(path)
}

// Driver runtime and options.
func NewDriverRuntime(cfg *Config, opts ...DriverOption) (*DriverRuntime, error) {
	return base.NewDriverRuntime(cfg, opts...)
}

func WithStateClient(c StateClient) DriverOption {
	return base.WithStateClient(c)
}

func WithTimeSync(ts TimeSync) DriverOption {
	return base.WithTimeSync(ts)
}

func WithSink(s Sink) DriverOption {
	return base.WithSink(s)
}

func WithJournal(j Journal) DriverOption {
	return base.WithJournal(j)
}

func WithStateQueue(q StateQueue) DriverOption {
	return base.WithStateQueue(q)
}

func WithObservability(obs Observability) DriverOption {
	return base.WithObservability(obs)
}

// Sink adapters.
func NewCallbackSink(name string, fn SnapshotBatchSink) Sink {
	return base.NewCallbackSink(name, fn)
}

func NewChannelSink(name string, buffer int) (Sink, <-chan []*RobotState, func()) {
	return base.NewChannelSink(name, buffer)
}
