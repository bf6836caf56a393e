package timesync

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/maskor/spotlink/internal/api"
	"github.com/maskor/spotlink/internal/ports"
)

type fakeClock struct {
	mu     sync.Mutex
	offset time.Duration
	err    error
}

func (f *fakeClock) RobotClock(ctx context.Context) (api.Timestamp, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return api.Timestamp{}, f.err
	}
	now := time.Now().Add(-f.offset)
	return api.Timestamp{Sec: now.Unix(), Nanos: int32(now.Nanosecond())}, nil
}

type nopObs struct{}

func (nopObs) LogInfo(string, ...ports.Field)            {}
func (nopObs) LogError(string, error, ...ports.Field)    {}
func (nopObs) LogCritical(string, error, ...ports.Field) {}
func (nopObs) IncCounter(string, float64)                {}
func (nopObs) ObserveLatency(string, float64)            {}
func (nopObs) SetGauge(string, float64)                  {}

func TestClockSkewBeforeFirstRound(t *testing.T) {
	est := NewEstimator(Config{}, &fakeClock{}, nopObs{})

	_, err := est.ClockSkew()
	if !errors.Is(err, ErrNoEstimate) {
		t.Fatalf("expected ErrNoEstimate before first round, got %v", err)
	}
}

func TestRefreshProducesSkewNearOffset(t *testing.T) {
	clock := &fakeClock{offset: 3 * time.Second}
	est := NewEstimator(Config{Interval: time.Hour}, clock, nopObs{})

	if err := est.refresh(context.Background()); err != nil {
		t.Fatalf("refresh returned error: %v", err)
	}

	skew, err := est.ClockSkew()
	if err != nil {
		t.Fatalf("ClockSkew returned error: %v", err)
	}
	if diff := skew - 3*time.Second; diff < -100*time.Millisecond || diff > 100*time.Millisecond {
		t.Fatalf("expected skew near 3s, got %s", skew)
	}
}

func TestRefreshFailureKeepsPreviousEstimate(t *testing.T) {
	clock := &fakeClock{offset: time.Second}
	est := NewEstimator(Config{Interval: time.Hour}, clock, nopObs{})

	if err := est.refresh(context.Background()); err != nil {
		t.Fatalf("refresh returned error: %v", err)
	}

	clock.mu.Lock()
	clock.err = errors.New("robot unreachable")
	clock.mu.Unlock()

	if err := est.refresh(context.Background()); err == nil {
		t.Fatalf("expected refresh to fail")
	}

	if _, err := est.ClockSkew(); err != nil {
		t.Fatalf("previous estimate should stay readable, got %v", err)
	}
}

func TestClockSkewStaleEstimate(t *testing.T) {
	est := NewEstimator(Config{Interval: time.Hour, Tolerance: 10 * time.Millisecond}, &fakeClock{}, nopObs{})

	if err := est.refresh(context.Background()); err != nil {
		t.Fatalf("refresh returned error: %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	if _, err := est.ClockSkew(); err == nil {
		t.Fatalf("expected stale estimate to be rejected")
	}
}

func TestStartStop(t *testing.T) {
	est := NewEstimator(Config{Interval: 10 * time.Millisecond}, &fakeClock{offset: time.Second}, nopObs{})

	if err := est.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if err := est.Start(); err == nil {
		t.Fatalf("second Start should fail")
	}

	if _, err := est.ClockSkew(); err != nil {
		t.Fatalf("skew should be available after Start, got %v", err)
	}

	est.Stop()
	est.Stop()
}
