package ports

import "time"

// TimeSync exposes the most recent estimate of the offset between the local
// clock and the robot's clock (local − robot). Implementations must be safe
// for concurrent reads while a background collaborator refreshes the
// estimate. ClockSkew fails when no estimation round has completed yet or
// the last one is stale.
type TimeSync interface {
	ClockSkew() (time.Duration, error)
}
