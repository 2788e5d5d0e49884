package benchmark

import (
	"math"
	"testing"
	"time"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestRun(t *testing.T) {
	iterations := []int{10, 20, 30, 40}
	report, err := Run(len(iterations), func(i int) (Sample, error) {
		return Sample{
			Solved:        i%2 == 0,
			Iterations:    iterations[i],
			StartTreeSize: iterations[i] + 1,
			GoalTreeSize:  2,
			PathLength:    float64(i + 1),
			Duration:      time.Millisecond,
		}, nil
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, report.Runs, test.ShouldEqual, 4)
	test.That(t, report.Solved, test.ShouldEqual, 2)
	test.That(t, report.SuccessRate(), test.ShouldEqual, 0.5)
	test.That(t, report.Iterations.Mean, test.ShouldEqual, 25)
	test.That(t, report.Iterations.StdDev, test.ShouldAlmostEqual, math.Sqrt(125))
	test.That(t, report.StartTreeSize.Mean, test.ShouldEqual, 26)
	test.That(t, report.GoalTreeSize, test.ShouldResemble, Summary{Mean: 2, StdDev: 0})
	// Runs 0 and 2 were solved.
	test.That(t, report.PathLength, test.ShouldResemble, Summary{Mean: 2, StdDev: 1})
	test.That(t, report.Duration.Mean, test.ShouldEqual, 1)

	out := report.Table()
	test.That(t, out, test.ShouldContainSubstring, "start tree size")
	test.That(t, out, test.ShouldContainSubstring, "25.00")
	test.That(t, out, test.ShouldContainSubstring, "2/4")
}

func TestRunErrors(t *testing.T) {
	_, err := Run(0, func(int) (Sample, error) { return Sample{}, nil })
	test.That(t, err, test.ShouldNotBeNil)

	calls := 0
	_, err = Run(5, func(i int) (Sample, error) {
		calls++
		if i == 2 {
			return Sample{}, errors.New("bad map")
		}
		return Sample{}, nil
	})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "run 2 failed: bad map")
	test.That(t, calls, test.ShouldEqual, 3)
}

func TestNoneSolved(t *testing.T) {
	report, err := Run(3, func(i int) (Sample, error) {
		return Sample{Iterations: 100, StartTreeSize: 50}, nil
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, report.SuccessRate(), test.ShouldEqual, 0)
	test.That(t, report.PathLength, test.ShouldResemble, Summary{})
	test.That(t, report.Iterations.StdDev, test.ShouldEqual, 0)
	test.That(t, report.Duration.Mean, test.ShouldBeGreaterThanOrEqualTo, 0)
}
