package ports

import (
	"context"

	"github.com/maskor/spotlink/internal/api"
)

// StateClient fetches one raw full-state snapshot from the robot. A call
// issues exactly one request and never retries; retry policy belongs to the
// caller. Cancelling ctx while the request is in flight aborts the call and
// is reported as an error.
type StateClient interface {
	FetchState(ctx context.Context) (*api.RobotStateSnapshot, error)
}
