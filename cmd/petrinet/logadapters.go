package main

import (
	"github.com/katalvlaran/petrinet/telemetry"
)

// symbolicLogAdapter satisfies symbolic.Logger over a telemetry.Logger,
// so the CLI's single structured-logging backend can observe the
// fixed-point computation's progress without the symbolic package
// importing logiface/stumpy itself.
type symbolicLogAdapter struct {
	l *telemetry.Logger
}

func (a symbolicLogAdapter) Iteration(n int, nodes int) {
	a.l.Debug().Int(`iteration`, n).Int(`nodes`, nodes).Log(`symbolic fixed-point round`)
}

func (a symbolicLogAdapter) Converged(n int, nodes int) {
	a.l.Info().Int(`iterations`, n).Int(`nodes`, nodes).Log(`symbolic reachability converged`)
}

// ilpLogAdapter satisfies ilp.Logger over a telemetry.Logger.
type ilpLogAdapter struct {
	l *telemetry.Logger
}

func (a ilpLogAdapter) Attempt(n int, candidate uint64) {
	a.l.Debug().Int(`attempt`, n).Int64(`candidate`, int64(candidate)).Log(`ilp candidate extracted`)
}

func (a ilpLogAdapter) CutAdded(n int, candidate uint64) {
	a.l.Debug().Int(`attempt`, n).Int64(`candidate`, int64(candidate)).Log(`no-good cut added`)
}

func (a ilpLogAdapter) Solved(n int, objective float64) {
	a.l.Info().Int(`attempts`, n).Float64(`objective`, objective).Log(`ilp oracle loop solved`)
}
