package conv

import (
	"time"

	"github.com/maskor/spotlink/internal/api"
	"github.com/maskor/spotlink/internal/domain"
)

// friendlyJointNames maps the robot's internal actuator names to the names
// downstream consumers expect. 12 leg joints; 7 more on robots with an arm.
var friendlyJointNames = map[string]string{
	"fl.hx": "front_left_hip_x",
	"fl.hy": "front_left_hip_y",
	"fl.kn": "front_left_knee",
	"fr.hx": "front_right_hip_x",
	"fr.hy": "front_right_hip_y",
	"fr.kn": "front_right_knee",
	"hl.hx": "rear_left_hip_x",
	"hl.hy": "rear_left_hip_y",
	"hl.kn": "rear_left_knee",
	"hr.hx": "rear_right_hip_x",
	"hr.hy": "rear_right_hip_y",
	"hr.kn": "rear_right_knee",

	"arm0.sh0": "arm_sh0",
	"arm0.sh1": "arm_sh1",
	"arm0.el0": "arm_el0",
	"arm0.el1": "arm_el1",
	"arm0.wr0": "arm_wr0",
	"arm0.wr1": "arm_wr1",
	"arm0.f1x": "arm_f1x",
}

// FriendlyJointName resolves a raw actuator name to its friendly form.
// Unknown names pass through unchanged.
func FriendlyJointName(raw string) string {
	if friendly, ok := friendlyJointNames[raw]; ok {
		return friendly
	}
	return raw
}

// JointStates translates the kinematic joint records into one column-aligned
// joint state stamped with the skew-corrected acquisition time. Joint names
// are mapped to friendly names and prefixed. Returns nil when the snapshot
// has no kinematic state.
func JointStates(ks *api.KinematicState, skew time.Duration, prefix string) (*domain.JointStates, error) {
	if ks == nil {
		return nil, nil
	}

	out := &domain.JointStates{
		Timestamp: localTimestamp(ks.AcquisitionTimestamp, skew),
		Names:     make([]string, 0, len(ks.JointStates)),
		Positions: make([]float64, 0, len(ks.JointStates)),
		Velocity:  make([]float64, 0, len(ks.JointStates)),
		Effort:    make([]float64, 0, len(ks.JointStates)),
	}

	for _, j := range ks.JointStates {
		if j.Name == "" {
			return nil, decodeErrf("joint", "joint record without a name")
		}
		out.Names = append(out.Names, prefix+FriendlyJointName(j.Name))
		out.Positions = append(out.Positions, deref(j.Position))
		out.Velocity = append(out.Velocity, deref(j.Velocity))
		out.Effort = append(out.Effort, deref(j.Load))
	}
	return out, nil
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
