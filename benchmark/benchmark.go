// Package benchmark runs a planner repeatedly and summarizes how it performed.
package benchmark

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Sample is the outcome of one planner run.
type Sample struct {
	Solved        bool
	Iterations    int
	StartTreeSize int
	// Zero for single tree planners.
	GoalTreeSize int
	// Only meaningful for solved runs.
	PathLength float64
	Duration   time.Duration
}

// Summary is the population mean and standard deviation of a measurement.
type Summary struct {
	Mean   float64
	StdDev float64
}

func (s Summary) String() string {
	return fmt.Sprintf("%.2f ± %.2f", s.Mean, s.StdDev)
}

func summarize(data []float64) (Summary, error) {
	if len(data) == 0 {
		return Summary{}, nil
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, err
	}
	stdDev, err := stats.StandardDeviationPopulation(data)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Mean: mean, StdDev: stdDev}, nil
}

// Report summarizes a set of runs. Path lengths only include solved runs.
type Report struct {
	Samples []Sample

	Runs          int
	Solved        int
	Iterations    Summary
	StartTreeSize Summary
	GoalTreeSize  Summary
	PathLength    Summary
	// In milliseconds.
	Duration Summary
}

// SuccessRate returns the fraction of runs that found a path.
func (r *Report) SuccessRate() float64 {
	if r.Runs == 0 {
		return 0
	}
	return float64(r.Solved) / float64(r.Runs)
}

// Run calls run for 0 through runs-1 and summarizes the samples. An error from any run stops
// the benchmark.
func Run(runs int, run func(i int) (Sample, error)) (*Report, error) {
	if runs <= 0 {
		return nil, errors.Errorf("number of runs must be positive, got %d", runs)
	}
	samples := make([]Sample, 0, runs)
	for i := 0; i < runs; i++ {
		start := time.Now()
		sample, err := run(i)
		if err != nil {
			return nil, errors.Wrapf(err, "run %d failed", i)
		}
		if sample.Duration == 0 {
			sample.Duration = time.Since(start)
		}
		samples = append(samples, sample)
	}
	return NewReport(samples)
}

// NewReport summarizes samples.
func NewReport(samples []Sample) (*Report, error) {
	var iterations, startSizes, goalSizes, lengths, durations []float64
	solved := 0
	for _, s := range samples {
		iterations = append(iterations, float64(s.Iterations))
		startSizes = append(startSizes, float64(s.StartTreeSize))
		goalSizes = append(goalSizes, float64(s.GoalTreeSize))
		durations = append(durations, float64(s.Duration)/float64(time.Millisecond))
		if s.Solved {
			solved++
			lengths = append(lengths, s.PathLength)
		}
	}

	r := &Report{Samples: samples, Runs: len(samples), Solved: solved}
	var err, e error
	r.Iterations, e = summarize(iterations)
	err = multierr.Append(err, e)
	r.StartTreeSize, e = summarize(startSizes)
	err = multierr.Append(err, e)
	r.GoalTreeSize, e = summarize(goalSizes)
	err = multierr.Append(err, e)
	r.PathLength, e = summarize(lengths)
	err = multierr.Append(err, e)
	r.Duration, e = summarize(durations)
	err = multierr.Append(err, e)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Table renders the report as a text table.
func (r *Report) Table() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Measure", "Mean", "Std Dev"})
	for _, row := range []struct {
		name string
		s    Summary
	}{
		{"iterations", r.Iterations},
		{"start tree size", r.StartTreeSize},
		{"goal tree size", r.GoalTreeSize},
		{"path length", r.PathLength},
		{"duration (ms)", r.Duration},
	} {
		t.AppendRow(table.Row{row.name, fmt.Sprintf("%.2f", row.s.Mean), fmt.Sprintf("%.2f", row.s.StdDev)})
	}
	t.AppendFooter(table.Row{"solved", fmt.Sprintf("%d/%d", r.Solved, r.Runs), fmt.Sprintf("%.1f%%", 100*r.SuccessRate())})
	return t.Render()
}
