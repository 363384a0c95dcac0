package executor

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/dotup-sh/dotup/pkg/logging"
)

// Runner invokes a single script and reports whether it completed normally.
// A non-zero exit status or a failure to start is the error condition.
type Runner interface {
	Run(ctx context.Context, scriptPath string) error
}

// processRunner executes scripts as external processes with inherited
// stdout/stderr, working directory set to the script's directory
type processRunner struct{}

// NewProcessRunner creates the production Runner
func NewProcessRunner() Runner {
	return &processRunner{}
}

func (r *processRunner) Run(ctx context.Context, scriptPath string) error {
	logger := logging.GetLogger("executor.runner")
	logger.Debug().Str("script", scriptPath).Msg("Invoking script")

	cmd := exec.CommandContext(ctx, scriptPath)
	cmd.Dir = filepath.Dir(scriptPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
