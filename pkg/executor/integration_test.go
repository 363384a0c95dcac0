//go:build !windows

// Integration tests that exercise the real process runner against stub
// shell scripts on disk.

package executor_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dotup-sh/dotup/pkg/executor"
	"github.com/dotup-sh/dotup/pkg/testutil"
	"github.com/dotup-sh/dotup/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessRunnerSuccess(t *testing.T) {
	root := testutil.SetupRoot(t)
	dot := testutil.SetupTestDot(t, root, "bash")
	marker := filepath.Join(t.TempDir(), "ran")
	script := dot.AddScript(t, "setup.sh", testutil.TouchScript(marker))

	runner := executor.NewProcessRunner()
	require.NoError(t, runner.Run(context.Background(), script))

	_, err := os.Stat(marker)
	assert.NoError(t, err, "script should have created the marker file")
}

func TestProcessRunnerNonZeroExit(t *testing.T) {
	root := testutil.SetupRoot(t)
	dot := testutil.SetupTestDot(t, root, "bash")
	script := dot.AddScript(t, "setup.sh", testutil.ExitingScript(3))

	runner := executor.NewProcessRunner()
	assert.Error(t, runner.Run(context.Background(), script))
}

func TestProcessRunnerMissingScript(t *testing.T) {
	runner := executor.NewProcessRunner()
	assert.Error(t, runner.Run(context.Background(), filepath.Join(t.TempDir(), "gone.sh")))
}

func TestExecuteEndToEnd(t *testing.T) {
	root := testutil.SetupRoot(t)

	bash := testutil.SetupTestDot(t, root, "bash")
	bashMarker := filepath.Join(t.TempDir(), "bash-ran")
	bashDot := types.Dot{
		Name:        "bash",
		Path:        bash.Dir,
		SetupScript: bash.AddScript(t, "setup.sh", testutil.TouchScript(bashMarker)),
	}

	starship := testutil.SetupTestDot(t, root, "starship")
	starshipSetupMarker := filepath.Join(t.TempDir(), "starship-setup-ran")
	starshipDot := types.Dot{
		Name:          "starship",
		Path:          starship.Dir,
		InstallScript: starship.AddInstallScript(t, 1),
		SetupScript:   starship.AddScript(t, "setup.sh", testutil.TouchScript(starshipSetupMarker)),
	}

	e := executor.New(executor.Options{})
	results := e.Execute(context.Background(), []types.Selection{
		{Dot: bashDot},
		{Dot: starshipDot, Install: true},
	})

	assert.Equal(t, []string{"bash"}, results.SucceededNames())
	assert.Equal(t, []string{"starship"}, results.FailedNames())
	assert.Equal(t, types.ReasonInstallFailed, results.Failed[0].Reason)

	_, err := os.Stat(bashMarker)
	assert.NoError(t, err, "bash setup should have run")

	_, err = os.Stat(starshipSetupMarker)
	assert.True(t, os.IsNotExist(err), "starship setup must not run after failed install")
}
