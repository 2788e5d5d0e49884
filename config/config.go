// Package config reads planning problems from JSON files.
package config

import (
	"math/rand"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/rrtplan/logging"
	"go.viam.com/rrtplan/motionplan"
	"go.viam.com/rrtplan/statespace"
	"go.viam.com/rrtplan/utils"
)

// Config describes a planning problem and how to solve it.
type Config struct {
	Space   SpaceConfig   `json:"space"`
	Planner PlannerConfig `json:"planner"`
	Output  OutputConfig  `json:"output,omitempty"`

	// ConfigFilePath is the path the config was read from, if any.
	ConfigFilePath string `json:"-"`
}

// SpaceConfig selects a registered state space and its attributes.
type SpaceConfig struct {
	Type       string             `json:"type" jsonschema:"enum=basic2d,enum=bitmap,enum=circles,enum=rectangle"`
	Attributes utils.AttributeMap `json:"attributes,omitempty"`
}

// PlannerConfig selects the planning algorithm.
type PlannerConfig struct {
	Algorithm string `json:"algorithm" jsonschema:"enum=rrt,enum=birrt"`

	// Seed for the random generators of the space and the planner.
	Seed int64 `json:"seed"`

	// Planner options such as max_iter and goal_bias.
	Options utils.AttributeMap `json:"options,omitempty"`
}

// OutputConfig controls what a run produces besides logs.
type OutputConfig struct {
	// Path to write a PNG rendering of the trees and solution to.
	Image string `json:"image,omitempty"`
}

// Validate returns every problem with the config.
func (c *Config) Validate() error {
	var err error
	if c.Space.Type == "" {
		err = multierr.Append(err, errors.New("space type is required"))
	} else if !isRegisteredKind(c.Space.Type) {
		err = multierr.Append(err, errors.Wrapf(statespace.ErrUnknownKind, "%q", c.Space.Type))
	}
	switch c.Planner.Algorithm {
	case motionplan.AlgorithmRRT, motionplan.AlgorithmBiRRT:
	case "":
		err = multierr.Append(err, errors.New("planner algorithm is required"))
	default:
		err = multierr.Append(err, errors.Errorf("unknown planning algorithm %q", c.Planner.Algorithm))
	}
	if _, optErr := c.PlannerOptions(); optErr != nil {
		err = multierr.Append(err, optErr)
	}
	return err
}

func isRegisteredKind(kind string) bool {
	for _, k := range statespace.RegisteredKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// PlannerOptions returns the default planner options overlaid with the configured ones.
func (c *Config) PlannerOptions() (*motionplan.PlannerOptions, error) {
	return motionplan.NewPlannerOptionsFromExtra(c.Planner.Options)
}

// BuildProblem creates the configured state space, seeded with seed.
func (c *Config) BuildProblem(seed int64, logger logging.Logger) (statespace.Problem, error) {
	//nolint:gosec
	return statespace.New(c.Space.Type, c.Space.Attributes, rand.New(rand.NewSource(seed)), logger.Sublogger("statespace"))
}

// BuildPlanner creates the configured planner for problem, seeded with seed.
func (c *Config) BuildPlanner(problem statespace.Problem, seed int64, logger logging.Logger) (motionplan.Planner, error) {
	opts, err := c.PlannerOptions()
	if err != nil {
		return nil, err
	}
	//nolint:gosec
	return motionplan.NewPlanner(c.Planner.Algorithm, problem, rand.New(rand.NewSource(seed)), logger.Sublogger("motionplan"), opts)
}
