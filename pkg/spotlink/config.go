package spotlink

import (
	"github.com/maskor/spotlink/internal/adapters/amqp"
	"github.com/maskor/spotlink/internal/adapters/robotrpc"
	"github.com/maskor/spotlink/internal/adapters/timesync"
	"github.com/maskor/spotlink/internal/app/config"
)

// Config re-exports the root configuration struct so downstream projects can
// construct or modify it programmatically.
type Config = config.Config

type (
	// RobotConfig identifies the robot and its aggregation settings.
	RobotConfig = config.RobotConfig
	// RPCConfig holds the robot state service connection details.
	RPCConfig = robotrpc.Config
	// TimeSyncConfig controls the skew estimation cadence.
	TimeSyncConfig = timesync.Config
	// TimescaleConfig configures the snapshot archive sink.
	TimescaleConfig = config.TimescaleConfig
	// AMQPConfig configures the snapshot fanout exchange.
	AMQPConfig = amqp.Config
	// MetricsConfig configures the metrics HTTP server.
	MetricsConfig = config.MetricsConfig
	// JournalConfig configures on-disk durability.
	JournalConfig = config.JournalConfig
)

// LoadConfig loads YAML from disk using the internal config reader.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}
