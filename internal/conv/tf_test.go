package conv

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/maskor/spotlink/internal/api"
	"github.com/maskor/spotlink/internal/domain"
	"github.com/maskor/spotlink/internal/frames"
)

func bodyRootedTree() *api.FrameTreeSnapshot {
	return &api.FrameTreeSnapshot{
		ChildToParentEdgeMap: map[string]api.ParentEdge{
			"body": {ParentFrameName: ""},
			"odom": {
				ParentFrameName:  "body",
				ParentTformChild: &api.SE3Pose{Position: &api.Vec3{X: 1, Y: 2, Z: 3}},
			},
			"vision": {
				ParentFrameName:  "body",
				ParentTformChild: &api.SE3Pose{Position: &api.Vec3{X: -4, Y: 0, Z: 0}},
			},
		},
	}
}

func TestTransformsInvertsPreferredOdomEdge(t *testing.T) {
	ks := &api.KinematicState{
		AcquisitionTimestamp: ts(300, 0),
		TransformsSnapshot:   bodyRootedTree(),
	}
	res := frames.Resolve("spot1/", "spot1/odom")

	out, err := Transforms(ks, 2*time.Second, "spot1/", res)
	if err != nil {
		t.Fatalf("Transforms returned error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 transforms (root skipped), got %d", len(out))
	}

	odomEdge := out[0]
	if odomEdge.ParentFrame != "spot1/odom" || odomEdge.ChildFrame != "spot1/body" {
		t.Fatalf("odom edge not re-parented: %+v", odomEdge)
	}
	if odomEdge.Transform.Position != (domain.Vec3{X: -1, Y: -2, Z: -3}) {
		t.Fatalf("odom edge not inverted: %+v", odomEdge.Transform)
	}
	if odomEdge.Timestamp != (domain.Timestamp{Sec: 302, Nanos: 0}) {
		t.Fatalf("transform stamp not shifted: %+v", odomEdge.Timestamp)
	}

	visionEdge := out[1]
	if visionEdge.ParentFrame != "spot1/body" || visionEdge.ChildFrame != "spot1/vision" {
		t.Fatalf("vision edge should stay a child of body: %+v", visionEdge)
	}
	if visionEdge.Transform.Position != (domain.Vec3{X: -4, Y: 0, Z: 0}) {
		t.Fatalf("vision edge should be untouched: %+v", visionEdge.Transform)
	}
}

func TestTransformsVisionPreference(t *testing.T) {
	ks := &api.KinematicState{TransformsSnapshot: bodyRootedTree()}
	res := frames.Resolve("", "vision")

	out, err := Transforms(ks, 0, "", res)
	if err != nil {
		t.Fatalf("Transforms returned error: %v", err)
	}

	var visionEdge, odomEdge *domain.FrameTransform
	for i := range out {
		switch out[i].ChildFrame {
		case "body":
			visionEdge = &out[i]
		case "odom":
			odomEdge = &out[i]
		}
	}
	if visionEdge == nil || visionEdge.ParentFrame != "vision" {
		t.Fatalf("vision should parent body: %+v", out)
	}
	if visionEdge.Transform.Position != (domain.Vec3{X: 4, Y: 0, Z: 0}) {
		t.Fatalf("vision edge not inverted: %+v", visionEdge.Transform)
	}
	if odomEdge == nil || odomEdge.ParentFrame != "body" {
		t.Fatalf("odom should stay a child of body: %+v", out)
	}
}

func TestTransformsDeterministicOrder(t *testing.T) {
	ks := &api.KinematicState{TransformsSnapshot: bodyRootedTree()}
	res := frames.Resolve("", "odom")

	first, err := Transforms(ks, 0, "", res)
	if err != nil {
		t.Fatalf("Transforms returned error: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := Transforms(ks, 0, "", res)
		if err != nil {
			t.Fatalf("Transforms returned error: %v", err)
		}
		for j := range first {
			if again[j].ChildFrame != first[j].ChildFrame || again[j].ParentFrame != first[j].ParentFrame {
				t.Fatalf("transform order changed between runs: %+v vs %+v", first, again)
			}
		}
	}
}

func TestTransformsMissingPoseFailsDecode(t *testing.T) {
	ks := &api.KinematicState{
		TransformsSnapshot: &api.FrameTreeSnapshot{
			ChildToParentEdgeMap: map[string]api.ParentEdge{
				"odom": {ParentFrameName: "body"},
			},
		},
	}

	_, err := Transforms(ks, 0, "", frames.Resolve("", "odom"))
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Category != "transform" {
		t.Fatalf("expected transform decode error, got %v", err)
	}
}

func TestTransformsNilKinematics(t *testing.T) {
	out, err := Transforms(nil, 0, "", frames.Resolve("", "odom"))
	if err != nil || out != nil {
		t.Fatalf("expected nil, nil for missing kinematics, got %v, %v", out, err)
	}
}

func TestInvertPoseRotation(t *testing.T) {
	s := math.Sqrt2 / 2
	p := domain.SE3Pose{
		Position: domain.Vec3{X: 1, Y: 0, Z: 0},
		Rotation: domain.Quaternion{W: s, Z: s},
	}

	inv := invertPose(p)
	approx := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
	if !approx(inv.Position.X, 0) || !approx(inv.Position.Y, 1) || !approx(inv.Position.Z, 0) {
		t.Fatalf("unexpected inverted translation: %+v", inv.Position)
	}
	if !approx(inv.Rotation.W, s) || !approx(inv.Rotation.Z, -s) {
		t.Fatalf("unexpected inverted rotation: %+v", inv.Rotation)
	}
}
