// Package executor runs the install and setup scripts of selected dots,
// one dot at a time, and classifies each outcome. A failed install skips
// the dot's setup; per-dot failures never abort the run.
package executor

import (
	"context"
	"time"

	"github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/logging"
	"github.com/dotup-sh/dotup/pkg/types"
	"github.com/rs/zerolog"
)

// Options contains configuration for the executor
type Options struct {
	Runner Runner
	DryRun bool
	Logger zerolog.Logger

	// ScriptTimeout bounds each script invocation; zero means no timeout.
	// The reference behavior has none, so a hung script blocks forever
	// unless this is set.
	ScriptTimeout time.Duration
}

// Executor processes selections sequentially
type Executor struct {
	runner  Runner
	dryRun  bool
	logger  zerolog.Logger
	timeout time.Duration
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("executor")
	}

	runner := opts.Runner
	if runner == nil {
		runner = NewProcessRunner()
	}

	return &Executor{
		runner:  runner,
		dryRun:  opts.DryRun,
		logger:  logger,
		timeout: opts.ScriptTimeout,
	}
}

// Execute runs install and setup for each selection in order and aggregates
// per-dot outcomes. Dots without a setup script yield no outcome at all.
func (e *Executor) Execute(ctx context.Context, selections []types.Selection) types.Results {
	var results types.Results

	for _, sel := range selections {
		outcome, classified := e.executeDot(ctx, sel)
		if !classified {
			continue
		}
		if outcome.Success {
			results.Succeeded = append(results.Succeeded, outcome)
		} else {
			results.Failed = append(results.Failed, outcome)
		}
	}

	e.logger.Info().
		Int("succeeded", len(results.Succeeded)).
		Int("failed", len(results.Failed)).
		Msg("Execution finished")

	return results
}

// executeDot runs one dot's install and setup phases. The second return
// value is false when the dot produced no classification (no setup script
// and nothing failed before it).
func (e *Executor) executeDot(ctx context.Context, sel types.Selection) (types.Outcome, bool) {
	dot := sel.Dot
	start := time.Now()

	e.logger.Debug().
		Str("dot", dot.Name).
		Bool("install", sel.Install).
		Bool("dry_run", e.dryRun).
		Msg("Executing dot")

	if sel.Install && dot.HasInstallScript() {
		if err := e.runScript(ctx, dot, dot.InstallScript); err != nil {
			e.logger.Error().
				Err(err).
				Str("dot", dot.Name).
				Str("script", dot.InstallScript).
				Msg("Install script failed, skipping setup")

			return types.Outcome{
				Dot:     dot,
				Success: false,
				Reason:  types.ReasonInstallFailed,
				Err:     err,
			}, true
		}

		e.logger.Info().
			Str("dot", dot.Name).
			Dur("duration", time.Since(start)).
			Msg("Install script succeeded")
	}

	if !dot.HasSetupScript() {
		e.logger.Debug().Str("dot", dot.Name).Msg("No setup script, nothing to do")
		return types.Outcome{}, false
	}

	if err := e.runScript(ctx, dot, dot.SetupScript); err != nil {
		e.logger.Error().
			Err(err).
			Str("dot", dot.Name).
			Str("script", dot.SetupScript).
			Msg("Setup script failed")

		return types.Outcome{
			Dot:     dot,
			Success: false,
			Reason:  types.ReasonSetupFailed,
			Err:     err,
		}, true
	}

	e.logger.Info().
		Str("dot", dot.Name).
		Dur("duration", time.Since(start)).
		Msg("Setup completed")

	return types.Outcome{Dot: dot, Success: true}, true
}

// runScript invokes one script through the runner, applying the configured
// timeout and dry-run mode
func (e *Executor) runScript(ctx context.Context, dot types.Dot, script string) error {
	if e.dryRun {
		e.logger.Info().
			Str("dot", dot.Name).
			Str("script", script).
			Msg("Dry run - would execute script")
		return nil
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	if err := e.runner.Run(ctx, script); err != nil {
		return errors.Wrap(err, errors.ErrScriptExecute, "script exited abnormally").
			WithDetail("dot", dot.Name).
			WithDetail("script", script)
	}
	return nil
}
