// Package conv translates raw wire-format robot state into domain types.
// Every converter is a pure function of its raw slice, the clock skew for
// the current assembly call, and the resolved frame names. All converters
// apply the same skew to every timestamp they touch and copy geometric
// fields one-for-one without renormalization.
package conv

import (
	"fmt"
	"time"

	"github.com/maskor/spotlink/internal/api"
	"github.com/maskor/spotlink/internal/domain"
)

// DecodeError reports raw data a converter could not interpret. It aborts
// the whole assembly; partial snapshots are never produced.
type DecodeError struct {
	Category string
	Detail   string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s state: %s", e.Category, e.Detail)
}

func decodeErrf(category, format string, args ...any) *DecodeError {
	return &DecodeError{Category: category, Detail: fmt.Sprintf(format, args...)}
}

// localTimestamp shifts a robot-clock timestamp into the local clock domain.
func localTimestamp(ts *api.Timestamp, skew time.Duration) domain.Timestamp {
	if ts == nil {
		return domain.Timestamp{}
	}
	return domain.Timestamp{Sec: ts.Sec, Nanos: ts.Nanos}.Add(skew)
}

func duration(d *api.Duration) *time.Duration {
	if d == nil {
		return nil
	}
	out := time.Duration(d.Sec)*time.Second + time.Duration(d.Nanos)
	return &out
}

func vec3(v *api.Vec3) domain.Vec3 {
	if v == nil {
		return domain.Vec3{}
	}
	return domain.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

func quaternion(q *api.Quaternion) domain.Quaternion {
	if q == nil {
		return domain.Quaternion{W: 1}
	}
	return domain.Quaternion{W: q.W, X: q.X, Y: q.Y, Z: q.Z}
}

func pose(p *api.SE3Pose) domain.SE3Pose {
	if p == nil {
		return domain.SE3Pose{Rotation: domain.Quaternion{W: 1}}
	}
	return domain.SE3Pose{
		Position: vec3(p.Position),
		Rotation: quaternion(p.Rotation),
	}
}

func velocity(v *api.SE3Velocity) domain.SE3Velocity {
	if v == nil {
		return domain.SE3Velocity{}
	}
	return domain.SE3Velocity{Linear: vec3(v.Linear), Angular: vec3(v.Angular)}
}

func velocityPtr(v *api.SE3Velocity) *domain.SE3Velocity {
	if v == nil {
		return nil
	}
	out := velocity(v)
	return &out
}

// rotate applies a unit quaternion to a vector.
func rotate(q domain.Quaternion, v domain.Vec3) domain.Vec3 {
	// v' = q * (0, v) * q⁻¹, expanded.
	uvx := q.Y*v.Z - q.Z*v.Y
	uvy := q.Z*v.X - q.X*v.Z
	uvz := q.X*v.Y - q.Y*v.X
	uuvx := q.Y*uvz - q.Z*uvy
	uuvy := q.Z*uvx - q.X*uvz
	uuvz := q.X*uvy - q.Y*uvx
	return domain.Vec3{
		X: v.X + 2*(q.W*uvx+uuvx),
		Y: v.Y + 2*(q.W*uvy+uuvy),
		Z: v.Z + 2*(q.W*uvz+uuvz),
	}
}

// invertPose returns the inverse rigid transform. The rotation is assumed to
// be a unit quaternion, so its inverse is the conjugate.
func invertPose(p domain.SE3Pose) domain.SE3Pose {
	conj := domain.Quaternion{W: p.Rotation.W, X: -p.Rotation.X, Y: -p.Rotation.Y, Z: -p.Rotation.Z}
	t := rotate(conj, p.Position)
	return domain.SE3Pose{
		Position: domain.Vec3{X: -t.X, Y: -t.Y, Z: -t.Z},
		Rotation: conj,
	}
}
