package conv

import (
	"time"

	"github.com/maskor/spotlink/internal/api"
	"github.com/maskor/spotlink/internal/domain"
)

// HandFrame is the base name of the frame the end-effector force is measured
// in.
const HandFrame = "hand"

// ManipulatorState translates the arm and gripper record. Returns nil for
// robots without an arm. Optional raw fields stay nil in the output.
func ManipulatorState(raw *api.ManipulatorState) *domain.ManipulatorState {
	if raw == nil {
		return nil
	}
	out := &domain.ManipulatorState{
		GripperOpenPercentage:  raw.GripperOpenPercentage,
		IsGripperHoldingItem:   raw.IsGripperHoldingItem,
		StowState:              raw.StowState,
		VelocityOfHandInVision: velocityPtr(raw.VelocityOfHandInVision),
		VelocityOfHandInOdom:   velocityPtr(raw.VelocityOfHandInOdom),
		CarryState:             raw.CarryState,
	}
	if raw.EstimatedEndEffectorForce != nil {
		f := vec3(raw.EstimatedEndEffectorForce)
		out.EstimatedEndEffectorForce = &f
	}
	return out
}

// EndEffectorForce builds the stamped, hand-frame-qualified force estimate.
// Returns nil when the robot has no arm or reported no force. The stamp is
// the kinematic acquisition time, shifted by skew like every other
// timestamp in the snapshot.
func EndEffectorForce(raw *api.ManipulatorState, ks *api.KinematicState, skew time.Duration, prefix string) *domain.EndEffectorForce {
	if raw == nil || raw.EstimatedEndEffectorForce == nil {
		return nil
	}
	var ts domain.Timestamp
	if ks != nil {
		ts = localTimestamp(ks.AcquisitionTimestamp, skew)
	}
	return &domain.EndEffectorForce{
		Timestamp: ts,
		Frame:     prefix + HandFrame,
		Force:     vec3(raw.EstimatedEndEffectorForce),
	}
}
