package spotlink

import (
	"errors"
	"fmt"
	"sync"
)

// ErrChannelSinkClosed is returned when a channel sink is written to after
// being closed.
var ErrChannelSinkClosed = errors.New("spotlink: channel sink closed")

// SnapshotBatchSink is invoked with ordered batches dequeued from the
// pipeline.
type SnapshotBatchSink func([]*RobotState) error

// NewCallbackSink adapts a SnapshotBatchSink into a full Sink implementation
// so callers can plug arbitrary functions without defining structs.
func NewCallbackSink(name string, fn SnapshotBatchSink) Sink {
	if name == "" {
		name = "callback"
	}
	return &callbackSink{name: name, fn: fn}
}

// NewChannelSink exposes batches via a channel; it returns the sink, the
// read-only channel, and a close function that the caller should invoke
// during shutdown.
func NewChannelSink(name string, buffer int) (Sink, <-chan []*RobotState, func()) {
	if name == "" {
		name = "channel"
	}
	if buffer < 0 {
		buffer = 0
	}
	ch := make(chan []*RobotState, buffer)
	s := &channelSink{
		name:   name,
		ch:     ch,
		closed: make(chan struct{}),
	}
	return s, ch, func() { s.close() }
}

type callbackSink struct {
	name string
	fn   SnapshotBatchSink
}

func (s *callbackSink) WriteBatch(states []*RobotState) error {
	if s.fn == nil {
		return fmt.Errorf("callback sink %q: nil handler", s.name)
	}
	if len(states) == 0 {
		return nil
	}
	return s.fn(states)
}

func (s *callbackSink) Name() string { return s.name }

type channelSink struct {
	name   string
	ch     chan []*RobotState
	closed chan struct{}
	once   sync.Once
}

func (s *channelSink) WriteBatch(states []*RobotState) error {
	select {
	case <-s.closed:
		return ErrChannelSinkClosed
	default:
	}

	if len(states) == 0 {
		return nil
	}

	select {
	case <-s.closed:
		return ErrChannelSinkClosed
	case s.ch <- states:
		return nil
	}
}

func (s *channelSink) Name() string { return s.name }

func (s *channelSink) close() {
	s.once.Do(func() {
		close(s.closed)
		close(s.ch)
	})
}
