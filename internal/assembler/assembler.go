// Package assembler builds one internally time-consistent RobotState from a
// single raw fetch. Each call runs fetch → skew check → translate and fails
// fast: the first error aborts the call and no partial aggregate is ever
// returned.
package assembler

import (
	"context"
	"errors"
	"fmt"

	"github.com/maskor/spotlink/internal/conv"
	"github.com/maskor/spotlink/internal/domain"
	"github.com/maskor/spotlink/internal/frames"
	"github.com/maskor/spotlink/internal/ports"
)

// FetchError reports a failed or unusable remote state fetch. Detail carries
// the remote diagnostic text verbatim.
type FetchError struct {
	Detail string
}

func (e *FetchError) Error() string {
	return "fetch robot state: " + e.Detail
}

// ErrTimeSyncUnavailable is returned when no valid clock-skew estimate exists
// at assembly time. Previously assembled snapshots stay valid.
var ErrTimeSyncUnavailable = errors.New("no valid clock skew estimate")

// Assembler turns raw robot state into RobotState aggregates. It holds no
// per-call state, so concurrent Assemble calls are independent.
type Assembler struct {
	client   ports.StateClient
	timeSync ports.TimeSync

	prefix             string
	preferredOdomFrame string
}

// New builds an Assembler for one robot. robotName may be empty for unnamed
// deployments; preferredOdomFrame names the desired odometry parent frame
// and is not validated here.
func New(client ports.StateClient, timeSync ports.TimeSync, robotName, preferredOdomFrame string) *Assembler {
	return &Assembler{
		client:             client,
		timeSync:           timeSync,
		prefix:             frames.Prefix(robotName),
		preferredOdomFrame: preferredOdomFrame,
	}
}

// Assemble fetches one raw snapshot, reads the current clock skew, and runs
// every category translator against the same raw data and skew. The caller
// owns the returned RobotState. Cancelling ctx aborts the in-flight fetch
// and surfaces as a FetchError.
func (a *Assembler) Assemble(ctx context.Context) (*domain.RobotState, error) {
	raw, err := a.client.FetchState(ctx)
	if err != nil {
		return nil, &FetchError{Detail: err.Error()}
	}
	if raw == nil {
		return nil, &FetchError{Detail: "response contained no robot state"}
	}

	skew, err := a.timeSync.ClockSkew()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTimeSyncUnavailable, err)
	}

	res := frames.Resolve(a.prefix, a.preferredOdomFrame)

	joints, err := conv.JointStates(raw.KinematicState, skew, a.prefix)
	if err != nil {
		return nil, err
	}
	transforms, err := conv.Transforms(raw.KinematicState, skew, a.prefix, res)
	if err != nil {
		return nil, err
	}
	odom, err := conv.Odometry(raw.KinematicState, skew, res)
	if err != nil {
		return nil, err
	}

	return &domain.RobotState{
		BatteryStates:    conv.BatteryStates(raw.BatteryStates, skew),
		Wifi:             conv.WifiState(raw.CommsStates),
		FootStates:       conv.FootStates(raw.FootStates),
		EStopStates:      conv.EStopStates(raw.EStopStates, skew),
		Joints:           joints,
		Transforms:       transforms,
		OdomTwist:        conv.OdomTwist(raw.KinematicState, skew),
		Odom:             odom,
		Power:            conv.PowerState(raw.PowerState, skew),
		SystemFaults:     conv.SystemFaultState(raw.SystemFaultState, skew),
		Manipulator:      conv.ManipulatorState(raw.ManipulatorState),
		EndEffectorForce: conv.EndEffectorForce(raw.ManipulatorState, raw.KinematicState, skew, a.prefix),
		BehaviorFaults:   conv.BehaviorFaultState(raw.BehaviorFaultState, skew),
	}, nil
}
