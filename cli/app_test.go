package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

const basicConfig = `{
	"space": {"type": "basic2d", "attributes": {"max_step": 0.1, "goal_tolerance": 0.01}},
	"planner": {"algorithm": "birrt", "seed": 2, "options": {"max_iter": 2000}}
}`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	test.That(t, os.WriteFile(path, []byte(contents), 0o600), test.ShouldBeNil)
	return path
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := NewApp(&out, &errOut).Run(append([]string{"rrtplan"}, args...))
	return out.String(), err
}

func TestPlanAction(t *testing.T) {
	path := writeConfig(t, basicConfig)
	img := filepath.Join(t.TempDir(), "plan.png")

	out, err := runApp(t, "plan", "--out", img, path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "solved with birrt")
	test.That(t, out, test.ShouldContainSubstring, "goal tree:")
	test.That(t, out, test.ShouldContainSubstring, "path length:")

	info, err := os.Stat(img)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, info.Size(), test.ShouldBeGreaterThan, 0)

	out, err = runApp(t, "plan", "--max-iter", "0", path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "not solved")

	_, err = runApp(t, "plan", "--max-iter", "-1", path)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "max_iter")

	_, err = runApp(t, "plan")
	test.That(t, err, test.ShouldNotBeNil)

	out, err = runApp(t, "--log-level", "warn", "plan", path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "solved with birrt")

	_, err = runApp(t, "--log-level", "loud", "plan", path)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "unknown log level")
}

func TestBenchAction(t *testing.T) {
	path := writeConfig(t, basicConfig)

	out, err := runApp(t, "bench", "--runs", "3", path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "birrt on basic2d: solved 3/3")
	test.That(t, out, test.ShouldContainSubstring, "iterations")

	_, err = runApp(t, "bench", "--runs", "0", path)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSchemaAction(t *testing.T) {
	out, err := runApp(t, "schema")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, `"algorithm"`)

	out, err = runApp(t, "schema", "--space", "circles")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, `"num_obstacles"`)

	_, err = runApp(t, "schema", "--space", "maze")
	test.That(t, err, test.ShouldNotBeNil)
}
