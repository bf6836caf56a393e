package domain

import "time"

// BatteryStatus enumerates the charge cycle states reported per battery.
type BatteryStatus string

const (
	BatteryStatusUnknown     BatteryStatus = "unknown"
	BatteryStatusMissing     BatteryStatus = "missing"
	BatteryStatusCharging    BatteryStatus = "charging"
	BatteryStatusDischarging BatteryStatus = "discharging"
	BatteryStatusBooting     BatteryStatus = "booting"
)

// BatteryState is the translated charge state of one battery.
type BatteryState struct {
	Timestamp        Timestamp
	Identifier       string
	ChargePercentage *float64
	EstimatedRuntime *time.Duration
	Current          *float64
	Voltage          *float64
	Temperatures     []float64
	Status           BatteryStatus
}

// WifiState reports the robot's Wi-Fi radio mode and associated network.
type WifiState struct {
	CurrentMode string
	ESSID       string
}

// FootContact enumerates ground-contact states per foot.
type FootContact string

const (
	FootContactUnknown FootContact = "unknown"
	FootContactMade    FootContact = "made"
	FootContactLost    FootContact = "lost"
)

// FootState is the position of one foot relative to the body frame.
type FootState struct {
	Position Vec3
	Contact  FootContact
}

// EStopState is the translated state of one emergency-stop endpoint.
type EStopState struct {
	Timestamp Timestamp
	Name      string
	Type      string
	State     string
}

// JointStates carries the positions, velocities, and efforts of every joint,
// column-aligned with Names. Names are friendly joint names with the robot's
// frame prefix applied.
type JointStates struct {
	Timestamp Timestamp
	Names     []string
	Positions []float64
	Velocity  []float64
	Effort    []float64
}

// FrameTransform is one stamped edge of the robot's transform tree.
type FrameTransform struct {
	Timestamp   Timestamp
	ParentFrame string
	ChildFrame  string
	Transform   SE3Pose
}

// OdomTwist is the body velocity in the odometry frame.
type OdomTwist struct {
	Timestamp Timestamp
	Twist     SE3Velocity
}

// Odometry is the authoritative pose and velocity of the body in the chosen
// odometry parent frame.
type Odometry struct {
	Timestamp   Timestamp
	ParentFrame string
	ChildFrame  string
	Pose        SE3Pose
	Twist       SE3Velocity
}

// PowerState reports motor and shore power plus locomotion charge estimates.
type PowerState struct {
	Timestamp                  Timestamp
	MotorPowerState            string
	ShorePowerState            string
	LocomotionChargePercentage *float64
	LocomotionEstimatedRuntime *time.Duration
}

// SystemFault is one active or historical fault raised by the robot's onboard
// software.
type SystemFault struct {
	Timestamp    Timestamp
	Name         string
	Code         int32
	UID          uint64
	ErrorMessage string
	Attributes   []string
	Severity     string
}

// SystemFaultState splits faults into currently active and historical sets.
type SystemFaultState struct {
	Faults           []SystemFault
	HistoricalFaults []SystemFault
}

// ManipulatorState is the translated arm and gripper state. All fields are
// optional: a robot without an arm reports none of them.
type ManipulatorState struct {
	GripperOpenPercentage     *float64
	IsGripperHoldingItem      *bool
	EstimatedEndEffectorForce *Vec3
	StowState                 string
	VelocityOfHandInVision    *SE3Velocity
	VelocityOfHandInOdom      *SE3Velocity
	CarryState                string
}

// EndEffectorForce is the stamped, frame-qualified force measured at the end
// effector.
type EndEffectorForce struct {
	Timestamp Timestamp
	Frame     string
	Force     Vec3
}

// BehaviorFault is one fault raised by the robot's behavior system.
type BehaviorFault struct {
	Timestamp Timestamp
	ID        uint32
	Cause     string
	Status    string
}

// BehaviorFaultState is the set of currently raised behavior faults.
type BehaviorFaultState struct {
	Faults []BehaviorFault
}

// RobotState is one complete, internally time-consistent snapshot of the
// robot. Every embedded timestamp has been corrected by the same clock skew,
// and every frame name carries the robot's frame prefix. Either all
// categories are populated from one raw snapshot or no RobotState exists at
// all; partial aggregates are never constructed.
type RobotState struct {
	BatteryStates    []BatteryState
	Wifi             WifiState
	FootStates       []FootState
	EStopStates      []EStopState
	Joints           *JointStates
	Transforms       []FrameTransform
	OdomTwist        *OdomTwist
	Odom             *Odometry
	Power            *PowerState
	SystemFaults     *SystemFaultState
	Manipulator      *ManipulatorState
	EndEffectorForce *EndEffectorForce
	BehaviorFaults   *BehaviorFaultState
}

// AcquisitionTime is the snapshot's representative capture time: the
// kinematic acquisition stamp when present, the power state stamp otherwise,
// zero when neither exists.
func (s *RobotState) AcquisitionTime() time.Time {
	switch {
	case s.Joints != nil:
		return s.Joints.Timestamp.Time()
	case s.Power != nil:
		return s.Power.Timestamp.Time()
	default:
		return time.Time{}
	}
}
