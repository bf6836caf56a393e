// Package api defines the wire representation of the robot's state service
// payloads. Optional fields are pointers: a nil pointer means the robot did
// not report the field. All timestamps are in the robot's clock domain.
package api

// Timestamp mirrors the wire encoding of a point in robot time.
type Timestamp struct {
	Sec   int64 `json:"sec"`
	Nanos int32 `json:"nanos"`
}

// Duration mirrors the wire encoding of a span of time.
type Duration struct {
	Sec   int64 `json:"sec"`
	Nanos int32 `json:"nanos"`
}

// Vec3 is a wire-format three-vector.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Quaternion is a wire-format orientation.
type Quaternion struct {
	W float64 `json:"w"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// SE3Pose is a wire-format rigid transform.
type SE3Pose struct {
	Position *Vec3       `json:"position,omitempty"`
	Rotation *Quaternion `json:"rotation,omitempty"`
}

// SE3Velocity is a wire-format spatial velocity.
type SE3Velocity struct {
	Linear  *Vec3 `json:"linear,omitempty"`
	Angular *Vec3 `json:"angular,omitempty"`
}

// BatteryState is the raw per-battery record.
type BatteryState struct {
	Timestamp        *Timestamp `json:"timestamp,omitempty"`
	Identifier       string     `json:"identifier"`
	ChargePercentage *float64   `json:"charge_percentage,omitempty"`
	EstimatedRuntime *Duration  `json:"estimated_runtime,omitempty"`
	Current          *float64   `json:"current,omitempty"`
	Voltage          *float64   `json:"voltage,omitempty"`
	Temperatures     []float64  `json:"temperatures,omitempty"`
	Status           string     `json:"status"`
}

// WifiState is the raw Wi-Fi sub-record of a comms state.
type WifiState struct {
	CurrentMode string `json:"current_mode"`
	Essid       string `json:"essid"`
}

// CommsState is one raw communication channel record.
type CommsState struct {
	Wifi *WifiState `json:"wifi_state,omitempty"`
}

// FootState is the raw per-foot record.
type FootState struct {
	FootPositionRtBody *Vec3  `json:"foot_position_rt_body,omitempty"`
	Contact            string `json:"contact"`
}

// EStopState is one raw emergency-stop endpoint record.
type EStopState struct {
	Timestamp *Timestamp `json:"timestamp,omitempty"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	State     string     `json:"state"`
}

// JointState is one raw actuator record. Position, velocity, and load are
// optional per joint.
type JointState struct {
	Name     string   `json:"name"`
	Position *float64 `json:"position,omitempty"`
	Velocity *float64 `json:"velocity,omitempty"`
	Load     *float64 `json:"load,omitempty"`
}

// ParentEdge is one edge of the transform snapshot: the pose of the child
// frame expressed in its parent.
type ParentEdge struct {
	ParentFrameName  string   `json:"parent_frame_name"`
	ParentTformChild *SE3Pose `json:"parent_tform_child,omitempty"`
}

// FrameTreeSnapshot is the raw transform tree keyed by child frame name.
type FrameTreeSnapshot struct {
	ChildToParentEdgeMap map[string]ParentEdge `json:"child_to_parent_edge_map"`
}

// KinematicState groups the joint, velocity, and transform data acquired in
// one pass over the robot's kinematics.
type KinematicState struct {
	JointStates            []JointState       `json:"joint_states,omitempty"`
	AcquisitionTimestamp   *Timestamp         `json:"acquisition_timestamp,omitempty"`
	TransformsSnapshot     *FrameTreeSnapshot `json:"transforms_snapshot,omitempty"`
	VelocityOfBodyInOdom   *SE3Velocity       `json:"velocity_of_body_in_odom,omitempty"`
	VelocityOfBodyInVision *SE3Velocity       `json:"velocity_of_body_in_vision,omitempty"`
}

// PowerState is the raw power sub-record.
type PowerState struct {
	Timestamp                  *Timestamp `json:"timestamp,omitempty"`
	MotorPowerState            string     `json:"motor_power_state"`
	ShorePowerState            string     `json:"shore_power_state"`
	LocomotionChargePercentage *float64   `json:"locomotion_charge_percentage,omitempty"`
	LocomotionEstimatedRuntime *Duration  `json:"locomotion_estimated_runtime,omitempty"`
}

// SystemFault is one raw onboard-software fault.
type SystemFault struct {
	Timestamp    *Timestamp `json:"onset_timestamp,omitempty"`
	Name         string     `json:"name"`
	Code         int32      `json:"code"`
	UID          uint64     `json:"uid"`
	ErrorMessage string     `json:"error_message"`
	Attributes   []string   `json:"attributes,omitempty"`
	Severity     string     `json:"severity"`
}

// SystemFaultState is the raw fault record split into active and historical.
type SystemFaultState struct {
	Faults           []SystemFault `json:"faults,omitempty"`
	HistoricalFaults []SystemFault `json:"historical_faults,omitempty"`
}

// ManipulatorState is the raw arm and gripper record. Absent on robots
// without an arm.
type ManipulatorState struct {
	GripperOpenPercentage     *float64     `json:"gripper_open_percentage,omitempty"`
	IsGripperHoldingItem      *bool        `json:"is_gripper_holding_item,omitempty"`
	EstimatedEndEffectorForce *Vec3        `json:"estimated_end_effector_force_in_hand,omitempty"`
	StowState                 string       `json:"stow_state"`
	VelocityOfHandInVision    *SE3Velocity `json:"velocity_of_hand_in_vision,omitempty"`
	VelocityOfHandInOdom      *SE3Velocity `json:"velocity_of_hand_in_odom,omitempty"`
	CarryState                string       `json:"carry_state"`
}

// BehaviorFault is one raw behavior-system fault.
type BehaviorFault struct {
	Timestamp *Timestamp `json:"onset_timestamp,omitempty"`
	ID        uint32     `json:"behavior_fault_id"`
	Cause     string     `json:"cause"`
	Status    string     `json:"status"`
}

// BehaviorFaultState is the raw set of raised behavior faults.
type BehaviorFaultState struct {
	Faults []BehaviorFault `json:"faults,omitempty"`
}

// RobotStateSnapshot is one full raw state capture returned by the robot's
// state service. It is consumed by exactly one assembly call and discarded.
type RobotStateSnapshot struct {
	BatteryStates      []BatteryState      `json:"battery_states,omitempty"`
	CommsStates        []CommsState        `json:"comms_states,omitempty"`
	FootStates         []FootState         `json:"foot_state,omitempty"`
	EStopStates        []EStopState        `json:"estop_states,omitempty"`
	KinematicState     *KinematicState     `json:"kinematic_state,omitempty"`
	PowerState         *PowerState         `json:"power_state,omitempty"`
	SystemFaultState   *SystemFaultState   `json:"system_fault_state,omitempty"`
	ManipulatorState   *ManipulatorState   `json:"manipulator_state,omitempty"`
	BehaviorFaultState *BehaviorFaultState `json:"behavior_fault_state,omitempty"`
}
