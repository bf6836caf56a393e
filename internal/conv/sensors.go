package conv

import (
	"time"

	"github.com/maskor/spotlink/internal/api"
	"github.com/maskor/spotlink/internal/domain"
)

// WifiState translates the first comms record carrying a Wi-Fi sub-state.
// Robots report one Wi-Fi radio; additional comms channels are ignored.
func WifiState(raw []api.CommsState) domain.WifiState {
	for _, c := range raw {
		if c.Wifi != nil {
			return domain.WifiState{
				CurrentMode: c.Wifi.CurrentMode,
				ESSID:       c.Wifi.Essid,
			}
		}
	}
	return domain.WifiState{}
}

func footContact(raw string) domain.FootContact {
	switch raw {
	case "CONTACT_MADE", "made":
		return domain.FootContactMade
	case "CONTACT_LOST", "lost":
		return domain.FootContactLost
	default:
		return domain.FootContactUnknown
	}
}

// FootStates translates per-foot contact records. Foot positions are
// body-relative and carry no timestamps of their own.
func FootStates(raw []api.FootState) []domain.FootState {
	out := make([]domain.FootState, 0, len(raw))
	for _, f := range raw {
		out = append(out, domain.FootState{
			Position: vec3(f.FootPositionRtBody),
			Contact:  footContact(f.Contact),
		})
	}
	return out
}

// EStopStates translates every emergency-stop endpoint record, shifting each
// timestamp by skew.
func EStopStates(raw []api.EStopState, skew time.Duration) []domain.EStopState {
	out := make([]domain.EStopState, 0, len(raw))
	for _, e := range raw {
		out = append(out, domain.EStopState{
			Timestamp: localTimestamp(e.Timestamp, skew),
			Name:      e.Name,
			Type:      e.Type,
			State:     e.State,
		})
	}
	return out
}
