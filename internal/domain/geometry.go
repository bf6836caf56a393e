package domain

import "time"

// Timestamp is a point in time decomposed into whole seconds and nanoseconds,
// matching the robot's wire representation. Values are kept as-is when copied
// from the raw snapshot; skew correction is the only arithmetic applied.
type Timestamp struct {
	Sec   int64 `json:"sec"`
	Nanos int32 `json:"nanos"`
}

// Add returns the timestamp shifted by d, renormalized so Nanos stays in
// [0, 1e9).
func (t Timestamp) Add(d time.Duration) Timestamp {
	total := t.Sec*int64(time.Second) + int64(t.Nanos) + int64(d)
	sec := total / int64(time.Second)
	nanos := total % int64(time.Second)
	if nanos < 0 {
		sec--
		nanos += int64(time.Second)
	}
	return Timestamp{Sec: sec, Nanos: int32(nanos)}
}

// Time converts to a stdlib time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return time.Unix(t.Sec, int64(t.Nanos)).UTC()
}

// Vec3 is a three-dimensional vector or point.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Quaternion is an orientation. Components are copied field-for-field from
// the source; no renormalization is performed.
type Quaternion struct {
	W float64 `json:"w"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// SE3Pose is a rigid-body transform: a translation and a rotation.
type SE3Pose struct {
	Position Vec3       `json:"position"`
	Rotation Quaternion `json:"rotation"`
}

// SE3Velocity is a spatial velocity split into linear and angular parts.
type SE3Velocity struct {
	Linear  Vec3 `json:"linear"`
	Angular Vec3 `json:"angular"`
}
