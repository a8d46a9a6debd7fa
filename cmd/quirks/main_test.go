package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quirks/internal/check"
	"quirks/internal/registry"
)

// TestMain lets the test binary act as the quirks binary when asked to.
func TestMain(m *testing.M) {
	if os.Getenv("QUIRKS_BE_MAIN") == "1" {
		switch os.Getenv("QUIRKS_SUITE") {
		case "empty":
			suite = func(r *registry.Registry) *registry.Registry { return r }
		case "failing":
			suite = failingSuite
		}
		os.Args = append([]string{"quirks"}, strings.Fields(os.Getenv("QUIRKS_ARGS"))...)
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func failingSuite(r *registry.Registry) *registry.Registry {
	return r.
		Add("testFirst", func() { println("ran first") }).
		Add("testBroken", func() { check.Equal(1, 2) }).
		Add("testNeverRuns", func() { println("ran never") })
}

type mainRun struct {
	stdout string
	stderr string
	code   int
}

func runMain(t *testing.T, args string, env ...string) (string, int) {
	t.Helper()
	res := runMainIn(t, t.TempDir(), args, env...)
	return res.stdout, res.code
}

func runMainIn(t *testing.T, dir, args string, env ...string) mainRun {
	t.Helper()
	cmd := exec.Command(os.Args[0])
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"QUIRKS_BE_MAIN=1",
		"QUIRKS_ARGS="+args,
		"QUIRKS_RESULTS_DIR="+t.TempDir(),
	)
	cmd.Env = append(cmd.Env, env...)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	res := mainRun{stdout: stdout.String(), stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		res.code = exitErr.ExitCode()
	}
	return res
}

func TestMain_RunsAllChecks(t *testing.T) {
	out, code := runMain(t, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "33 tests passed successfully!\n", out)
}

func TestMain_FilterWithoutMatches(t *testing.T) {
	out, code := runMain(t, "--filter *NoSuchCheck*")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "No checks match")
}

func TestMain_UnknownCommand(t *testing.T) {
	_, code := runMain(t, "frobnicate")
	assert.NotEqual(t, 0, code)
}

func TestMain_LastWithoutSavedRun(t *testing.T) {
	_, code := runMain(t, "last")
	assert.Equal(t, 2, code)
}

func TestMain_EmptySuite(t *testing.T) {
	out, code := runMain(t, "", "QUIRKS_SUITE=empty")
	assert.Equal(t, 0, code)
	assert.Equal(t, "0 tests passed successfully!\n", out)
}

func TestMain_FailingCheckAbortsProcess(t *testing.T) {
	res := runMainIn(t, t.TempDir(), "", "QUIRKS_SUITE=failing")
	assert.NotEqual(t, 0, res.code)
	assert.NotContains(t, res.stdout, "passed successfully")
	assert.Contains(t, res.stderr, "ran first")
	assert.NotContains(t, res.stderr, "ran never")
	assert.Contains(t, res.stderr, "mismatch (-want +got)")
}

func TestMain_ConfigProblemsAreWarnings(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("QUIRKS-BROKEN!\n"), 0644))

	res := runMainIn(t, dir, "", "QUIRKS_NO_COLOR=yes")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "33 tests passed successfully!\n", res.stdout)
	assert.Contains(t, res.stderr, "Warning:")
}
