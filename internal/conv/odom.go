package conv

import (
	"time"

	"github.com/maskor/spotlink/internal/api"
	"github.com/maskor/spotlink/internal/domain"
	"github.com/maskor/spotlink/internal/frames"
)

// OdomTwist translates the body velocity in the built-in odometry frame.
// Returns nil when the snapshot has no kinematic state or velocity.
func OdomTwist(ks *api.KinematicState, skew time.Duration) *domain.OdomTwist {
	if ks == nil || ks.VelocityOfBodyInOdom == nil {
		return nil
	}
	return &domain.OdomTwist{
		Timestamp: localTimestamp(ks.AcquisitionTimestamp, skew),
		Twist:     velocity(ks.VelocityOfBodyInOdom),
	}
}

// Odometry builds the authoritative pose of the body in the chosen odometry
// parent frame, with the matching body velocity. The raw tree stores the
// estimator frames as children of the body, so the edge is inverted to get
// parent_tform_body.
func Odometry(ks *api.KinematicState, skew time.Duration, res frames.Resolution) (*domain.Odometry, error) {
	if ks == nil || ks.TransformsSnapshot == nil {
		return nil, nil
	}

	parentBase := frames.BaseOdom
	parentFrame := res.OdomFrame
	twist := ks.VelocityOfBodyInOdom
	if res.PreferVision {
		parentBase = frames.BaseVision
		parentFrame = res.VisionFrame
		twist = ks.VelocityOfBodyInVision
	}

	edge, ok := ks.TransformsSnapshot.ChildToParentEdgeMap[parentBase]
	if !ok || edge.ParentFrameName != frames.BaseBody {
		return nil, decodeErrf("odometry", "snapshot has no %s edge", parentBase)
	}
	if edge.ParentTformChild == nil {
		return nil, decodeErrf("odometry", "%s edge has no pose", parentBase)
	}

	return &domain.Odometry{
		Timestamp:   localTimestamp(ks.AcquisitionTimestamp, skew),
		ParentFrame: parentFrame,
		ChildFrame:  res.BodyFrame,
		Pose:        invertPose(pose(edge.ParentTformChild)),
		Twist:       velocity(twist),
	}, nil
}
