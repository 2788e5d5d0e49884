package config

import (
	"encoding/json"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"go.viam.com/test"

	"go.viam.com/rrtplan/logging"
	"go.viam.com/rrtplan/statespace"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	test.That(t, os.WriteFile(path, []byte(contents), 0o600), test.ShouldBeNil)
	return path
}

func TestReadBasic2D(t *testing.T) {
	logger := logging.NewTestLogger(t)
	t.Setenv("RRT_MAX_ITER", "500")
	path := writeFile(t, t.TempDir(), "basic.json", `{
		"space": {"type": "basic2d", "attributes": {"max_step": 0.1}},
		"planner": {"algorithm": "rrt", "seed": 3, "options": {"max_iter": ${RRT_MAX_ITER}}}
	}`)

	cfg, err := Read(path, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.ConfigFilePath, test.ShouldEqual, path)
	test.That(t, cfg.Planner.Seed, test.ShouldEqual, int64(3))

	opts, err := cfg.PlannerOptions()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, opts.MaxIter, test.ShouldEqual, 500)

	problem, err := cfg.BuildProblem(cfg.Planner.Seed, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, problem.(*statespace.Basic2D).MaxStep(), test.ShouldEqual, 0.1)

	mp, err := cfg.BuildPlanner(problem, cfg.Planner.Seed, logger)
	test.That(t, err, test.ShouldBeNil)
	result, err := mp.Solve(problem.Start(), problem.Goal())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result.Stats().Iterations, test.ShouldBeBetweenOrEqual, 1, 500)
}

func TestReadResolvesPaths(t *testing.T) {
	logger := logging.NewTestLogger(t)
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 50, 50))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(25, 25, color.Black)
	test.That(t, imaging.Save(img, filepath.Join(dir, "map.png")), test.ShouldBeNil)

	path := writeFile(t, dir, "bitmap.json", `{
		"space": {"type": "bitmap", "attributes": {"map": "map.png", "start": [1, 1], "goal": [48, 48], "max_step": 4}},
		"planner": {"algorithm": "birrt"},
		"output": {"image": "out.png"}
	}`)
	cfg, err := Read(path, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Space.Attributes["map"], test.ShouldEqual, filepath.Join(dir, "map.png"))
	test.That(t, cfg.Output.Image, test.ShouldEqual, filepath.Join(dir, "out.png"))

	problem, err := cfg.BuildProblem(0, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, problem.ValidState(statespace.State{25, 25}), test.ShouldBeFalse)
	test.That(t, problem.ValidState(statespace.State{24, 25}), test.ShouldBeTrue)

	bad := writeFile(t, dir, "bad.json", `{
		"space": {"type": "bitmap", "attributes": {"map": 5}},
		"planner": {"algorithm": "rrt"}
	}`)
	_, err = Read(bad, logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `attribute "map"`)
}

func TestValidate(t *testing.T) {
	logger := logging.NewTestLogger(t)
	for _, tc := range []struct {
		name     string
		contents string
		errStrs  []string
	}{
		{"empty", `{}`, []string{"space type is required", "planner algorithm is required"}},
		{"unknown kinds", `{"space": {"type": "maze"}, "planner": {"algorithm": "prm"}}`, []string{"maze", "prm"}},
		{"bad options", `{"space": {"type": "basic2d"}, "planner": {"algorithm": "rrt", "options": {"goal_bias": 1.5}}}`,
			[]string{"goal_bias"}},
		{"unknown field", `{"space": {"type": "basic2d"}, "planner": {"algorithm": "rrt"}, "verbose": true}`,
			[]string{"verbose"}},
		{"not json", `space: basic2d`, []string{"cannot parse config"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromReader("", strings.NewReader(tc.contents), logger)
			test.That(t, err, test.ShouldNotBeNil)
			for _, s := range tc.errStrs {
				test.That(t, err.Error(), test.ShouldContainSubstring, s)
			}
		})
	}

	_, err := Read(filepath.Join(t.TempDir(), "missing.json"), logger)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSchema(t *testing.T) {
	out, err := json.Marshal(Schema())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(out), test.ShouldContainSubstring, `"planner"`)
	test.That(t, string(out), test.ShouldContainSubstring, `"birrt"`)

	for _, kind := range statespace.RegisteredKinds() {
		test.That(t, SpaceAttributeSchemas, test.ShouldContainKey, kind)
	}
	out, err = json.Marshal(SpaceAttributeSchemas[statespace.KindRectangle])
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(out), test.ShouldContainSubstring, "disable_rotation_fallback")

	out, err = json.Marshal(PlannerOptionsSchema)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(out), test.ShouldContainSubstring, "max_iter")
}
