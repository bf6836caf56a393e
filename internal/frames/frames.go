// Package frames resolves coordinate-frame names for single- and multi-robot
// deployments. With a robot name configured every frame is namespaced as
// "<name>/<frame>", letting several robots share one transform tree.
package frames

const (
	// BaseOdom is the robot's built-in kinematic odometry frame.
	BaseOdom = "odom"
	// BaseVision is the robot's vision-based odometry frame.
	BaseVision = "vision"
	// BaseBody is the robot body frame.
	BaseBody = "body"
)

// Prefix derives the frame prefix from a configured robot name: empty for an
// unnamed robot, "<name>/" otherwise.
func Prefix(robotName string) string {
	if robotName == "" {
		return ""
	}
	return robotName + "/"
}

// Resolution holds the fully-qualified frame names for one assembly call and
// the odometry source decision.
type Resolution struct {
	OdomFrame   string
	VisionFrame string
	BodyFrame   string

	// PreferVision is true when the vision-based estimator is the
	// authoritative parent of the body frame.
	PreferVision bool
}

// Resolve qualifies the well-known frame names with prefix and decides which
// odometry estimator is authoritative. Vision odometry is selected only when
// preferredOdomFrame is exactly prefix+"vision"; every other value, including
// unrecognized ones, falls back to built-in odometry so a bad preference
// never stops state aggregation.
func Resolve(prefix, preferredOdomFrame string) Resolution {
	return Resolution{
		OdomFrame:    prefix + BaseOdom,
		VisionFrame:  prefix + BaseVision,
		BodyFrame:    prefix + BaseBody,
		PreferVision: preferredOdomFrame == prefix+BaseVision,
	}
}
