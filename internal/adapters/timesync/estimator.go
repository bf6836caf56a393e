// Package timesync estimates the offset between the local clock and the
// robot's onboard clock by periodically round-tripping a clock read.
package timesync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/maskor/spotlink/internal/api"
	"github.com/maskor/spotlink/internal/ports"
)

// ClockSource reads the robot's current onboard time.
type ClockSource interface {
	RobotClock(ctx context.Context) (api.Timestamp, error)
}

// Config controls the estimation cadence and how old an estimate may get
// before readers are told no valid skew exists.
type Config struct {
	Interval  time.Duration `yaml:"interval"`
	Tolerance time.Duration `yaml:"tolerance"`
}

func (c *Config) ApplyDefaults() {
	if c.Interval <= 0 {
		c.Interval = 10 * time.Second
	}
	if c.Tolerance <= 0 {
		c.Tolerance = 6 * c.Interval
	}
}

// ErrNoEstimate is returned before the first successful estimation round.
var ErrNoEstimate = errors.New("timesync: no estimation round has completed")

type estimate struct {
	skew time.Duration
	at   time.Time
}

// Estimator refreshes the skew estimate on a fixed cadence. One background
// goroutine writes; any number of assembler goroutines read through
// ClockSkew without locking.
type Estimator struct {
	cfg    Config
	source ClockSource
	obs    ports.Observability

	current atomic.Pointer[estimate]
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
}

func NewEstimator(cfg Config, source ClockSource, obs ports.Observability) *Estimator {
	cfg.ApplyDefaults()
	return &Estimator{cfg: cfg, source: source, obs: obs}
}

// Start launches the refresh loop. It performs one synchronous round first
// so a reachable robot yields a usable skew immediately.
func (e *Estimator) Start() error {
	e.mu.Lock()
	if e.started {
		e.mu.Unlock()
		return errors.New("timesync estimator already started")
	}
	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.started = true
	e.mu.Unlock()

	if err := e.refresh(ctx); err != nil {
		e.obs.LogError("timesync_initial_round_failed", err)
	}

	e.wg.Add(1)
	go e.loop(ctx)
	return nil
}

func (e *Estimator) Stop() {
	e.mu.Lock()
	cancel := e.cancel
	e.cancel = nil
	e.started = false
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	e.wg.Wait()
}

// ClockSkew returns the latest estimate of local − robot time. It fails
// before the first successful round and once the last round is older than
// the configured tolerance.
func (e *Estimator) ClockSkew() (time.Duration, error) {
	est := e.current.Load()
	if est == nil {
		return 0, ErrNoEstimate
	}
	if age := time.Since(est.at); age > e.cfg.Tolerance {
		return 0, fmt.Errorf("timesync: last estimate is %s old, tolerance %s", age.Round(time.Millisecond), e.cfg.Tolerance)
	}
	return est.skew, nil
}

func (e *Estimator) loop(ctx context.Context) {
	defer e.wg.Done()

	ticker := time.NewTicker(e.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := e.refresh(ctx); err != nil && ctx.Err() == nil {
				e.obs.LogError("timesync_round_failed", err)
			}
		}
	}
}

// refresh performs one round: the robot's clock is read and compared against
// the midpoint of the local send/receive window, which cancels symmetric
// network latency.
func (e *Estimator) refresh(ctx context.Context) error {
	before := time.Now()
	robotTime, err := e.source.RobotClock(ctx)
	after := time.Now()
	if err != nil {
		return err
	}

	mid := before.Add(after.Sub(before) / 2)
	robot := time.Unix(robotTime.Sec, int64(robotTime.Nanos))
	skew := mid.Sub(robot)

	e.current.Store(&estimate{skew: skew, at: after})
	e.obs.SetGauge("spotlink_clock_skew_seconds", skew.Seconds())
	return nil
}

var _ ports.TimeSync = (*Estimator)(nil)
