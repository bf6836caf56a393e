package conv

import (
	"testing"
	"time"

	"github.com/maskor/spotlink/internal/api"
	"github.com/maskor/spotlink/internal/domain"
)

func TestSystemFaultStateAppliesSkew(t *testing.T) {
	if SystemFaultState(nil, time.Second) != nil {
		t.Fatalf("missing fault record should translate to nil")
	}

	raw := &api.SystemFaultState{
		Faults: []api.SystemFault{{
			Timestamp:    ts(30, 0),
			Name:         "fault_low_battery",
			Code:         42,
			UID:          7,
			ErrorMessage: "battery low",
			Attributes:   []string{"battery"},
			Severity:     "SEVERITY_WARN",
		}},
		HistoricalFaults: []api.SystemFault{{Timestamp: ts(10, 0), Name: "fault_old"}},
	}

	out := SystemFaultState(raw, 5*time.Second)
	if len(out.Faults) != 1 || len(out.HistoricalFaults) != 1 {
		t.Fatalf("fault sets not carried over: %+v", out)
	}
	if out.Faults[0].Timestamp != (domain.Timestamp{Sec: 35, Nanos: 0}) {
		t.Fatalf("active fault stamp not shifted: %+v", out.Faults[0].Timestamp)
	}
	if out.HistoricalFaults[0].Timestamp != (domain.Timestamp{Sec: 15, Nanos: 0}) {
		t.Fatalf("historical fault stamp not shifted: %+v", out.HistoricalFaults[0].Timestamp)
	}
	if out.Faults[0].Code != 42 || out.Faults[0].UID != 7 {
		t.Fatalf("fault fields not carried over: %+v", out.Faults[0])
	}
}

func TestBehaviorFaultStateAppliesSkew(t *testing.T) {
	if BehaviorFaultState(nil, time.Second) != nil {
		t.Fatalf("missing fault record should translate to nil")
	}

	raw := &api.BehaviorFaultState{
		Faults: []api.BehaviorFault{{
			Timestamp: ts(60, 0),
			ID:        3,
			Cause:     "CAUSE_FALL",
			Status:    "STATUS_UNCLEARABLE",
		}},
	}

	out := BehaviorFaultState(raw, 2*time.Second)
	if len(out.Faults) != 1 {
		t.Fatalf("expected 1 fault, got %d", len(out.Faults))
	}
	f := out.Faults[0]
	if f.Timestamp != (domain.Timestamp{Sec: 62, Nanos: 0}) {
		t.Fatalf("fault stamp not shifted: %+v", f.Timestamp)
	}
	if f.ID != 3 || f.Cause != "CAUSE_FALL" || f.Status != "STATUS_UNCLEARABLE" {
		t.Fatalf("fault fields not carried over: %+v", f)
	}
}
