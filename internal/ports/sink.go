package ports

import "github.com/maskor/spotlink/internal/domain"

// Sink consumes batches of assembled snapshots and delivers them to a
// downstream system.
type Sink interface {
	WriteBatch(states []*domain.RobotState) error
	Name() string
}
