package motionplan

import (
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/rrtplan/statespace"
)

type fakeVisualizer struct {
	calls     []string
	edges     map[color.Color]int
	solution  []statespace.State
	initial   statespace.State
	goal      statespace.State
	doneError error
}

func newFakeVisualizer() *fakeVisualizer {
	return &fakeVisualizer{edges: map[color.Color]int{}}
}

func (v *fakeVisualizer) DrawInitial(x statespace.State) {
	v.calls = append(v.calls, "initial")
	v.initial = x
}

func (v *fakeVisualizer) DrawGoal(x statespace.State) {
	v.calls = append(v.calls, "goal")
	v.goal = x
}

func (v *fakeVisualizer) DrawEdge(parent, child statespace.State, c color.Color) {
	v.edges[c]++
}

func (v *fakeVisualizer) DrawSolution(states []statespace.State, c color.Color) {
	v.calls = append(v.calls, "solution")
	v.solution = states
}

func (v *fakeVisualizer) Done() error {
	v.calls = append(v.calls, "done")
	return v.doneError
}

func TestDrawRRT(t *testing.T) {
	space := newBasic2D(t, 1)
	mp, err := NewRRTPlanner(space, nil, nil, nil)
	test.That(t, err, test.ShouldBeNil)
	result, err := mp.Build(space.Start(), space.Goal())
	test.That(t, err, test.ShouldBeNil)

	v := newFakeVisualizer()
	test.That(t, DrawRRT(v, result), test.ShouldBeNil)
	test.That(t, v.calls, test.ShouldResemble, []string{"initial", "goal", "solution", "done"})
	test.That(t, v.edges[StartTreeColor], test.ShouldEqual, result.Tree.Len()-1)
	test.That(t, v.initial, test.ShouldResemble, space.Start())
	test.That(t, v.goal, test.ShouldResemble, space.Goal())
	test.That(t, v.solution[len(v.solution)-1], test.ShouldResemble, result.Reached)

	t.Run("without solution", func(t *testing.T) {
		opts := NewPlannerOptions()
		opts.MaxIter = 1
		mp, err := NewRRTPlanner(space, nil, nil, opts)
		test.That(t, err, test.ShouldBeNil)
		result, err := mp.Build(space.Start(), space.Goal())
		test.That(t, err, test.ShouldBeNil)

		v := newFakeVisualizer()
		v.doneError = errors.New("disk full")
		test.That(t, DrawRRT(v, result), test.ShouldBeError, v.doneError)
		test.That(t, v.calls, test.ShouldResemble, []string{"initial", "goal", "done"})
	})
}

func TestDrawBiRRT(t *testing.T) {
	space := newBasic2D(t, 1)
	mp, err := NewBiRRTPlanner(space, nil, nil, nil)
	test.That(t, err, test.ShouldBeNil)
	result, err := mp.Build(space.Start(), space.Goal())
	test.That(t, err, test.ShouldBeNil)

	v := newFakeVisualizer()
	test.That(t, DrawBiRRT(v, result), test.ShouldBeNil)
	test.That(t, v.calls, test.ShouldResemble, []string{"initial", "goal", "solution", "done"})
	test.That(t, v.edges[StartTreeColor], test.ShouldEqual, result.StartTree.Len()-1)
	test.That(t, v.edges[GoalTreeColor], test.ShouldEqual, result.GoalTree.Len()-1)
	test.That(t, v.solution[0], test.ShouldResemble, space.Start())
	test.That(t, v.solution[len(v.solution)-1], test.ShouldResemble, space.Goal())
}

func TestPlannerOptions(t *testing.T) {
	opts, err := NewPlannerOptionsFromExtra(map[string]interface{}{"max_iter": 50, "goal_bias": "0.2"})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, opts.MaxIter, test.ShouldEqual, 50)
	test.That(t, opts.GoalBias, test.ShouldEqual, 0.2)
	test.That(t, opts.LoggingInterval, test.ShouldEqual, defaultLoggingInterval)
	test.That(t, opts.logEvery(), test.ShouldEqual, 5)

	_, err = NewPlannerOptionsFromExtra(map[string]interface{}{"max_iter": -1, "goal_bias": 2})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "max_iter")
	test.That(t, err.Error(), test.ShouldContainSubstring, "goal_bias")

	_, err = NewPlannerOptionsFromExtra(map[string]interface{}{"plan_iter": 10})
	test.That(t, err, test.ShouldNotBeNil)

	opts, err = NewPlannerOptionsFromExtra(nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, opts, test.ShouldResemble, NewPlannerOptions())
}
