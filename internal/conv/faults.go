package conv

import (
	"time"

	"github.com/maskor/spotlink/internal/api"
	"github.com/maskor/spotlink/internal/domain"
)

func systemFaults(raw []api.SystemFault, skew time.Duration) []domain.SystemFault {
	out := make([]domain.SystemFault, 0, len(raw))
	for _, f := range raw {
		out = append(out, domain.SystemFault{
			Timestamp:    localTimestamp(f.Timestamp, skew),
			Name:         f.Name,
			Code:         f.Code,
			UID:          f.UID,
			ErrorMessage: f.ErrorMessage,
			Attributes:   append([]string(nil), f.Attributes...),
			Severity:     f.Severity,
		})
	}
	return out
}

// SystemFaultState translates active and historical onboard faults. Returns
// nil when the robot reported no fault record.
func SystemFaultState(raw *api.SystemFaultState, skew time.Duration) *domain.SystemFaultState {
	if raw == nil {
		return nil
	}
	return &domain.SystemFaultState{
		Faults:           systemFaults(raw.Faults, skew),
		HistoricalFaults: systemFaults(raw.HistoricalFaults, skew),
	}
}

// BehaviorFaultState translates raised behavior faults. Returns nil when the
// robot reported no record.
func BehaviorFaultState(raw *api.BehaviorFaultState, skew time.Duration) *domain.BehaviorFaultState {
	if raw == nil {
		return nil
	}
	out := &domain.BehaviorFaultState{
		Faults: make([]domain.BehaviorFault, 0, len(raw.Faults)),
	}
	for _, f := range raw.Faults {
		out.Faults = append(out.Faults, domain.BehaviorFault{
			Timestamp: localTimestamp(f.Timestamp, skew),
			ID:        f.ID,
			Cause:     f.Cause,
			Status:    f.Status,
		})
	}
	return out
}
