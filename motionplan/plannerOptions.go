package motionplan

import (
	"math"

	"go.uber.org/multierr"

	"go.viam.com/rrtplan/utils"
)

// default values for planning options.
const (
	// Number of planner iterations before giving up.
	defaultMaxIter = 10000

	// Probability of sampling the goal instead of a random state. RRT only.
	defaultGoalBias = 0.05

	// Fraction of max iterations between progress debug logs.
	defaultLoggingInterval = 0.1
)

// PlannerOptions control a single planner. Zero values are not replaced with defaults; start
// from NewPlannerOptions.
type PlannerOptions struct {
	// Number of planner iterations before giving up.
	MaxIter int `json:"max_iter"`

	// Probability with which RRT samples the goal state directly.
	GoalBias float64 `json:"goal_bias"`

	// Percentage interval of max iterations after which to print debug logs. 0 disables them.
	LoggingInterval float64 `json:"logging_interval"`
}

// NewPlannerOptions returns the default planner options.
func NewPlannerOptions() *PlannerOptions {
	return &PlannerOptions{
		MaxIter:         defaultMaxIter,
		GoalBias:        defaultGoalBias,
		LoggingInterval: defaultLoggingInterval,
	}
}

// NewPlannerOptionsFromExtra overlays extra onto the default options and validates the result.
func NewPlannerOptionsFromExtra(extra utils.AttributeMap) (*PlannerOptions, error) {
	opts := NewPlannerOptions()
	if err := extra.Decode(opts); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate returns every problem with the options.
func (o *PlannerOptions) Validate() error {
	var err error
	if o.MaxIter < 0 {
		err = multierr.Append(err, utils.NewOutOfRangeError("max_iter", o.MaxIter, ">= 0"))
	}
	if o.GoalBias < 0 || o.GoalBias > 1 {
		err = multierr.Append(err, utils.NewOutOfRangeError("goal_bias", o.GoalBias, "[0, 1]"))
	}
	if o.LoggingInterval < 0 || o.LoggingInterval > 1 {
		err = multierr.Append(err, utils.NewOutOfRangeError("logging_interval", o.LoggingInterval, "[0, 1]"))
	}
	return err
}

// logEvery returns the number of iterations between progress logs, or 0 for none.
func (o *PlannerOptions) logEvery() int {
	if o.LoggingInterval == 0 || o.MaxIter == 0 {
		return 0
	}
	return int(math.Max(1, math.Ceil(o.LoggingInterval*float64(o.MaxIter))))
}
