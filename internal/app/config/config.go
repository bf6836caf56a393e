package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/maskor/spotlink/internal/adapters/amqp"
	"github.com/maskor/spotlink/internal/adapters/robotrpc"
	"github.com/maskor/spotlink/internal/adapters/timesync"
	"github.com/maskor/spotlink/internal/frames"
	"github.com/maskor/spotlink/internal/ports"
)

type Config struct {
	Robot     RobotConfig     `yaml:"robot"`
	RPC       robotrpc.Config `yaml:"rpc"`
	TimeSync  timesync.Config `yaml:"timesync"`
	Policy    ports.Policy    `yaml:"policy"`
	Timescale TimescaleConfig `yaml:"timescale"`
	AMQP      amqp.Config     `yaml:"amqp"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Journal   JournalConfig   `yaml:"journal"`
}

// RobotConfig identifies the robot and how its state is aggregated.
type RobotConfig struct {
	// Name namespaces all frame and joint names; empty for single-robot
	// deployments.
	Name string `yaml:"name"`
	// PreferredOdomFrame names the odometry parent frame. Only
	// "<prefix>vision" selects vision odometry; anything else falls back
	// to built-in odometry.
	PreferredOdomFrame string        `yaml:"preferred_odom_frame"`
	PollInterval       time.Duration `yaml:"poll_interval"`
}

type TimescaleConfig struct {
	ConnString string `yaml:"conn_string"`
	Table      string `yaml:"table"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

type JournalConfig struct {
	Dir string `yaml:"dir"`
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) ApplyDefaults() {
	if c.Robot.PreferredOdomFrame == "" {
		c.Robot.PreferredOdomFrame = frames.Prefix(c.Robot.Name) + frames.BaseOdom
	}
	if c.Robot.PollInterval <= 0 {
		c.Robot.PollInterval = 100 * time.Millisecond
	}
	if c.Policy.MaxJournalSizeBytes == 0 {
		c.Policy.MaxJournalSizeBytes = 1 << 30
	}
	if c.Policy.MaxQueueLen == 0 {
		c.Policy.MaxQueueLen = 10_000
	}
	if c.Policy.MaxBatchSize == 0 {
		c.Policy.MaxBatchSize = 100
	}
	if c.Policy.IdleSleep == 0 {
		c.Policy.IdleSleep = 5 * time.Millisecond
	}
	if c.Policy.OnQueueFull == "" {
		c.Policy.OnQueueFull = "block"
	}
	if c.Policy.OnJournalFull == "" {
		c.Policy.OnJournalFull = "block"
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = ":9100"
	}
	if c.Timescale.Table == "" {
		c.Timescale.Table = "snapshots"
	}
	if c.Journal.Dir == "" {
		c.Journal.Dir = "./data/journal"
	}

	c.RPC.ApplyDefaults()
	c.TimeSync.ApplyDefaults()
	c.AMQP.ApplyDefaults()
}

func (c *Config) Validate() error {
	if err := c.RPC.Validate(); err != nil {
		return fmt.Errorf("rpc config: %w", err)
	}
	if c.Timescale.ConnString == "" {
		return fmt.Errorf("timescale.conn_string is required")
	}
	if c.Metrics.Addr == "" {
		return fmt.Errorf("metrics.addr is required")
	}
	if c.Journal.Dir == "" {
		return fmt.Errorf("journal.dir is required")
	}
	return nil
}
