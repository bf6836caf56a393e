package conv

import (
	"time"

	"github.com/maskor/spotlink/internal/api"
	"github.com/maskor/spotlink/internal/domain"
)

func batteryStatus(raw string) domain.BatteryStatus {
	switch raw {
	case "MISSING", "missing":
		return domain.BatteryStatusMissing
	case "CHARGING", "charging":
		return domain.BatteryStatusCharging
	case "DISCHARGING", "discharging":
		return domain.BatteryStatusDischarging
	case "BOOTING", "booting":
		return domain.BatteryStatusBooting
	default:
		return domain.BatteryStatusUnknown
	}
}

// BatteryStates translates every per-battery record, shifting each timestamp
// by skew.
func BatteryStates(raw []api.BatteryState, skew time.Duration) []domain.BatteryState {
	out := make([]domain.BatteryState, 0, len(raw))
	for _, b := range raw {
		out = append(out, domain.BatteryState{
			Timestamp:        localTimestamp(b.Timestamp, skew),
			Identifier:       b.Identifier,
			ChargePercentage: b.ChargePercentage,
			EstimatedRuntime: duration(b.EstimatedRuntime),
			Current:          b.Current,
			Voltage:          b.Voltage,
			Temperatures:     append([]float64(nil), b.Temperatures...),
			Status:           batteryStatus(b.Status),
		})
	}
	return out
}

// PowerState translates the power sub-record, or returns nil when the robot
// did not report one.
func PowerState(raw *api.PowerState, skew time.Duration) *domain.PowerState {
	if raw == nil {
		return nil
	}
	return &domain.PowerState{
		Timestamp:                  localTimestamp(raw.Timestamp, skew),
		MotorPowerState:            raw.MotorPowerState,
		ShorePowerState:            raw.ShorePowerState,
		LocomotionChargePercentage: raw.LocomotionChargePercentage,
		LocomotionEstimatedRuntime: duration(raw.LocomotionEstimatedRuntime),
	}
}
