package conv

import (
	"errors"
	"testing"
	"time"

	"github.com/maskor/spotlink/internal/api"
	"github.com/maskor/spotlink/internal/domain"
	"github.com/maskor/spotlink/internal/frames"
)

func kinematicsWithVelocities() *api.KinematicState {
	return &api.KinematicState{
		AcquisitionTimestamp: ts(400, 0),
		TransformsSnapshot:   bodyRootedTree(),
		VelocityOfBodyInOdom: &api.SE3Velocity{
			Linear: &api.Vec3{X: 0.5}, Angular: &api.Vec3{Z: 0.1},
		},
		VelocityOfBodyInVision: &api.SE3Velocity{
			Linear: &api.Vec3{X: 0.4}, Angular: &api.Vec3{Z: 0.2},
		},
	}
}

func TestOdometryBuiltInOdom(t *testing.T) {
	ks := kinematicsWithVelocities()
	res := frames.Resolve("spot1/", "spot1/odom")

	out, err := Odometry(ks, 3*time.Second, res)
	if err != nil {
		t.Fatalf("Odometry returned error: %v", err)
	}
	if out.ParentFrame != "spot1/odom" || out.ChildFrame != "spot1/body" {
		t.Fatalf("unexpected odometry frames: %+v", out)
	}
	if out.Timestamp != (domain.Timestamp{Sec: 403, Nanos: 0}) {
		t.Fatalf("odometry stamp not shifted: %+v", out.Timestamp)
	}
	if out.Pose.Position != (domain.Vec3{X: -1, Y: -2, Z: -3}) {
		t.Fatalf("pose should be the inverted body-to-odom edge: %+v", out.Pose)
	}
	if out.Twist.Linear.X != 0.5 || out.Twist.Angular.Z != 0.1 {
		t.Fatalf("expected odom twist, got %+v", out.Twist)
	}
}

func TestOdometryVisionPreference(t *testing.T) {
	ks := kinematicsWithVelocities()
	res := frames.Resolve("", "vision")

	out, err := Odometry(ks, 0, res)
	if err != nil {
		t.Fatalf("Odometry returned error: %v", err)
	}
	if out.ParentFrame != "vision" || out.ChildFrame != "body" {
		t.Fatalf("unexpected odometry frames: %+v", out)
	}
	if out.Pose.Position != (domain.Vec3{X: 4, Y: 0, Z: 0}) {
		t.Fatalf("pose should be the inverted body-to-vision edge: %+v", out.Pose)
	}
	if out.Twist.Linear.X != 0.4 || out.Twist.Angular.Z != 0.2 {
		t.Fatalf("expected vision twist, got %+v", out.Twist)
	}
}

func TestOdometryMissingEdgeFailsDecode(t *testing.T) {
	ks := &api.KinematicState{
		TransformsSnapshot: &api.FrameTreeSnapshot{
			ChildToParentEdgeMap: map[string]api.ParentEdge{
				"body": {ParentFrameName: ""},
			},
		},
	}

	_, err := Odometry(ks, 0, frames.Resolve("", "odom"))
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Category != "odometry" {
		t.Fatalf("expected odometry decode error, got %v", err)
	}
}

func TestOdometryMissingPoseFailsDecode(t *testing.T) {
	ks := &api.KinematicState{
		TransformsSnapshot: &api.FrameTreeSnapshot{
			ChildToParentEdgeMap: map[string]api.ParentEdge{
				"odom": {ParentFrameName: "body"},
			},
		},
	}

	_, err := Odometry(ks, 0, frames.Resolve("", "odom"))
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestOdometryNilKinematics(t *testing.T) {
	out, err := Odometry(nil, 0, frames.Resolve("", "odom"))
	if err != nil || out != nil {
		t.Fatalf("expected nil, nil for missing kinematics, got %v, %v", out, err)
	}
}

func TestOdomTwist(t *testing.T) {
	if OdomTwist(nil, 0) != nil {
		t.Fatalf("nil kinematics should translate to nil twist")
	}
	if OdomTwist(&api.KinematicState{}, 0) != nil {
		t.Fatalf("missing velocity should translate to nil twist")
	}

	out := OdomTwist(kinematicsWithVelocities(), 2*time.Second)
	if out.Timestamp != (domain.Timestamp{Sec: 402, Nanos: 0}) {
		t.Fatalf("twist stamp not shifted: %+v", out.Timestamp)
	}
	if out.Twist.Linear.X != 0.5 {
		t.Fatalf("unexpected twist: %+v", out.Twist)
	}
}
