package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/rrtplan/benchmark"
	"go.viam.com/rrtplan/config"
	"go.viam.com/rrtplan/logging"
	"go.viam.com/rrtplan/motionplan"
	"go.viam.com/rrtplan/statespace"
	"go.viam.com/rrtplan/utils"
	"go.viam.com/rrtplan/vis"
)

func newLogger(c *cli.Context) (logging.Logger, error) {
	logger := logging.NewLogger("rrtplan")
	if c.Bool(flagDebug) {
		logger.SetLevel(logging.DEBUG)
		return logger, nil
	}
	level, err := logging.LevelFromString(c.String(flagLogLevel))
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)
	return logger, nil
}

// readConfig reads the config named by the first argument and applies the flag overrides.
func readConfig(c *cli.Context, logger logging.Logger) (*config.Config, error) {
	if c.Args().Len() != 1 {
		return nil, errors.New("expected exactly one config file argument")
	}
	cfg, err := config.Read(c.Args().First(), logger)
	if err != nil {
		return nil, err
	}
	if c.IsSet(flagMaxIter) {
		if cfg.Planner.Options == nil {
			cfg.Planner.Options = utils.AttributeMap{}
		}
		cfg.Planner.Options["max_iter"] = c.Int(flagMaxIter)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// solve builds the configured problem and planner from seed and runs the planner once.
func solve(cfg *config.Config, seed int64, logger logging.Logger) (statespace.Problem, motionplan.Result, error) {
	problem, err := cfg.BuildProblem(seed, logger)
	if err != nil {
		return nil, nil, err
	}
	mp, err := cfg.BuildPlanner(problem, seed, logger)
	if err != nil {
		return nil, nil, err
	}
	result, err := mp.Solve(problem.Start(), problem.Goal())
	if err != nil {
		return nil, nil, err
	}
	return problem, result, nil
}

// pathLength returns the euclidean length of the solution, or 0 if there is none.
func pathLength(problem statespace.Problem, result motionplan.Result) (float64, error) {
	if !result.Solved() {
		return 0, nil
	}
	plan, err := result.Plan()
	if err != nil {
		return 0, err
	}
	return plan.Length(func(x1, x2 statespace.State) float64 {
		return math.Sqrt(problem.Metric(x1, x2))
	}), nil
}

// PlanAction solves the configured problem once and optionally renders the result.
func PlanAction(c *cli.Context) error {
	logger, err := newLogger(c)
	if err != nil {
		return err
	}
	cfg, err := readConfig(c, logger)
	if err != nil {
		return err
	}
	seed := cfg.Planner.Seed
	if c.IsSet(flagSeed) {
		seed = c.Int64(flagSeed)
	}

	start := time.Now()
	problem, result, err := solve(cfg, seed, logger)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	length, err := pathLength(problem, result)
	if err != nil {
		return err
	}

	stats := result.Stats()
	status := "not solved"
	if result.Solved() {
		status = "solved"
	}
	fmt.Fprintf(c.App.Writer, "%s with %s in %d iterations (%v)\n", status, cfg.Planner.Algorithm, stats.Iterations, elapsed)
	fmt.Fprintf(c.App.Writer, "start tree: %d nodes\n", stats.StartTreeSize)
	if cfg.Planner.Algorithm == motionplan.AlgorithmBiRRT {
		fmt.Fprintf(c.App.Writer, "goal tree: %d nodes\n", stats.GoalTreeSize)
	}
	if result.Solved() {
		fmt.Fprintf(c.App.Writer, "path length: %.4f\n", length)
	} else {
		logger.Warnw("no path found", "algorithm", cfg.Planner.Algorithm, "iterations", stats.Iterations)
	}

	out := cfg.Output.Image
	if c.IsSet(flagOut) {
		out = c.String(flagOut)
	}
	if out == "" {
		return nil
	}
	v, err := vis.ForProblem(out, problem, logger)
	if err != nil {
		return err
	}
	return result.Draw(v)
}

// BenchAction solves the configured problem with seeds seed through seed+runs-1 and prints
// a summary of the runs.
func BenchAction(c *cli.Context) error {
	logger, err := newLogger(c)
	if err != nil {
		return err
	}
	cfg, err := readConfig(c, logger)
	if err != nil {
		return err
	}
	// per-run logs would drown out the report
	quiet := logging.NewBlankLogger("rrtplan")

	report, err := benchmark.Run(c.Int(flagRuns), func(i int) (benchmark.Sample, error) {
		start := time.Now()
		problem, result, err := solve(cfg, cfg.Planner.Seed+int64(i), quiet)
		if err != nil {
			return benchmark.Sample{}, err
		}
		elapsed := time.Since(start)
		length, err := pathLength(problem, result)
		if err != nil {
			return benchmark.Sample{}, err
		}
		stats := result.Stats()
		return benchmark.Sample{
			Solved:        result.Solved(),
			Iterations:    stats.Iterations,
			StartTreeSize: stats.StartTreeSize,
			GoalTreeSize:  stats.GoalTreeSize,
			PathLength:    length,
			Duration:      elapsed,
		}, nil
	})
	if err != nil {
		return err
	}
	logger.Debugw("benchmark finished", "runs", report.Runs, "solved", report.Solved)
	if report.Solved == 0 {
		logger.Warnw("no run found a path", "runs", report.Runs)
	}

	fmt.Fprintf(c.App.Writer, "%s on %s: solved %d/%d (%.0f%%)\n",
		cfg.Planner.Algorithm, cfg.Space.Type, report.Solved, report.Runs, 100*report.SuccessRate())
	fmt.Fprintln(c.App.Writer, report.Table())
	return nil
}

// SchemaAction prints the JSON schema of config files, or of a space type's attributes.
func SchemaAction(c *cli.Context) error {
	var schema interface{} = config.Schema()
	if kind := c.String(flagSpace); kind != "" {
		s, ok := config.SpaceAttributeSchemas[kind]
		if !ok {
			return errors.Wrapf(statespace.ErrUnknownKind, "%q", kind)
		}
		schema = s
	}
	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, string(out))
	return nil
}
