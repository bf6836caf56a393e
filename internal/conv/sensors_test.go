package conv

import (
	"testing"
	"time"

	"github.com/maskor/spotlink/internal/api"
	"github.com/maskor/spotlink/internal/domain"
)

func TestWifiStatePicksFirstWifiRecord(t *testing.T) {
	raw := []api.CommsState{
		{},
		{Wifi: &api.WifiState{CurrentMode: "MODE_CLIENT", Essid: "lab-net"}},
		{Wifi: &api.WifiState{CurrentMode: "MODE_ACCESS_POINT", Essid: "other"}},
	}

	out := WifiState(raw)
	if out.CurrentMode != "MODE_CLIENT" || out.ESSID != "lab-net" {
		t.Fatalf("expected first wifi record, got %+v", out)
	}
}

func TestWifiStateEmptyWithoutWifiRecord(t *testing.T) {
	if out := WifiState([]api.CommsState{{}}); out != (domain.WifiState{}) {
		t.Fatalf("expected zero wifi state, got %+v", out)
	}
}

func TestFootStates(t *testing.T) {
	raw := []api.FootState{
		{FootPositionRtBody: &api.Vec3{X: 0.3, Y: 0.2, Z: -0.5}, Contact: "CONTACT_MADE"},
		{Contact: "CONTACT_LOST"},
		{Contact: "CONTACT_UNKNOWN"},
	}

	out := FootStates(raw)
	if len(out) != 3 {
		t.Fatalf("expected 3 feet, got %d", len(out))
	}
	if out[0].Position != (domain.Vec3{X: 0.3, Y: 0.2, Z: -0.5}) || out[0].Contact != domain.FootContactMade {
		t.Fatalf("unexpected first foot: %+v", out[0])
	}
	if out[1].Contact != domain.FootContactLost || out[1].Position != (domain.Vec3{}) {
		t.Fatalf("unexpected second foot: %+v", out[1])
	}
	if out[2].Contact != domain.FootContactUnknown {
		t.Fatalf("unexpected third foot: %+v", out[2])
	}
}

func TestEStopStatesAppliesSkew(t *testing.T) {
	raw := []api.EStopState{{
		Timestamp: ts(10, 500_000_000),
		Name:      "hardware_estop",
		Type:      "TYPE_HARDWARE",
		State:     "STATE_NOT_ESTOPPED",
	}}

	out := EStopStates(raw, 2*time.Second)
	if len(out) != 1 {
		t.Fatalf("expected 1 estop, got %d", len(out))
	}
	if out[0].Timestamp != (domain.Timestamp{Sec: 12, Nanos: 500_000_000}) {
		t.Fatalf("expected shifted timestamp, got %+v", out[0].Timestamp)
	}
	if out[0].Name != "hardware_estop" || out[0].State != "STATE_NOT_ESTOPPED" {
		t.Fatalf("estop fields not carried over: %+v", out[0])
	}
}
