package motionplan

import (
	"github.com/pkg/errors"

	"go.viam.com/rrtplan/statespace"
)

var errPlannerFailed = errors.New("motion planner failed to find path")

// IsPlannerFailed returns whether err reports that no path was found.
func IsPlannerFailed(err error) bool {
	return errors.Is(err, errPlannerFailed)
}

func newBadQueryError(xInit, xGoal statespace.State) error {
	return errors.Errorf("cannot plan from %v to %v: both must be valid states of the space", xInit, xGoal)
}
