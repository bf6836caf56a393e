package spotlink

import (
	"errors"
	"testing"
	"time"

	"github.com/maskor/spotlink/internal/domain"
)

func TestCallbackSinkInvokesHandler(t *testing.T) {
	var got []*RobotState
	s := NewCallbackSink("", func(states []*RobotState) error {
		got = states
		return nil
	})

	if s.Name() != "callback" {
		t.Fatalf("expected default name callback, got %q", s.Name())
	}

	batch := []*RobotState{{BatteryStates: []domain.BatteryState{{Identifier: "bat0"}}}}
	if err := s.WriteBatch(batch); err != nil {
		t.Fatalf("WriteBatch returned error: %v", err)
	}
	if len(got) != 1 || got[0].BatteryStates[0].Identifier != "bat0" {
		t.Fatalf("handler did not receive the batch")
	}
}

func TestCallbackSinkPropagatesHandlerError(t *testing.T) {
	want := errors.New("downstream unavailable")
	s := NewCallbackSink("db", func([]*RobotState) error { return want })

	err := s.WriteBatch([]*RobotState{{}})
	if !errors.Is(err, want) {
		t.Fatalf("expected handler error, got %v", err)
	}
}

func TestCallbackSinkEmptyBatchSkipsHandler(t *testing.T) {
	called := false
	s := NewCallbackSink("noop", func([]*RobotState) error {
		called = true
		return nil
	})
	if err := s.WriteBatch(nil); err != nil {
		t.Fatalf("WriteBatch returned error: %v", err)
	}
	if called {
		t.Fatalf("handler should not run for an empty batch")
	}
}

func TestChannelSinkDeliversBatches(t *testing.T) {
	s, ch, closeFn := NewChannelSink("stream", 1)
	defer closeFn()

	batch := []*RobotState{{}, {}}
	if err := s.WriteBatch(batch); err != nil {
		t.Fatalf("WriteBatch returned error: %v", err)
	}

	select {
	case got := <-ch:
		if len(got) != 2 {
			t.Fatalf("expected 2 snapshots, got %d", len(got))
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for batch")
	}
}

func TestChannelSinkClosedRejectsWrites(t *testing.T) {
	s, _, closeFn := NewChannelSink("stream", 0)
	closeFn()
	closeFn()

	err := s.WriteBatch([]*RobotState{{}})
	if !errors.Is(err, ErrChannelSinkClosed) {
		t.Fatalf("expected ErrChannelSinkClosed, got %v", err)
	}
}
