package perf

import "github.com/DjordjeVuckovic/ts-perf/internal/apperr"

// Lifecycle errors. All of them match apperr.ErrState.
var (
	// ErrTrajectoriesDiscarded is returned by trajectory accessors after
	// CalculateFinalResults(true).
	ErrTrajectoriesDiscarded = apperr.NewState("trajectories discarded")

	// ErrNotFinalized is returned when an aggregate is offered a run that has
	// not been finalized.
	ErrNotFinalized = apperr.NewState("run not finalized")

	// ErrRunFinalized is returned when results or a learning time are added to
	// a finalized run.
	ErrRunFinalized = apperr.NewState("run already finalized")
)
