// Package core wires the pipeline together: resolve the dotfiles root,
// discover dots, load and apply the config, then execute the selection.
package core

import (
	"context"
	"runtime"
	"time"

	"github.com/dotup-sh/dotup/pkg/config"
	"github.com/dotup-sh/dotup/pkg/dots"
	"github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/executor"
	"github.com/dotup-sh/dotup/pkg/filesystem"
	"github.com/dotup-sh/dotup/pkg/logging"
	"github.com/dotup-sh/dotup/pkg/paths"
	"github.com/dotup-sh/dotup/pkg/selection"
	"github.com/dotup-sh/dotup/pkg/types"
)

// Options configures a run
type Options struct {
	// Root is the explicit dotfiles root; empty falls back to the
	// environment and then ~/dotfiles
	Root string

	// ConfigPath overrides config discovery inside the root
	ConfigPath string

	// IgnoreOS runs a config even when its os list excludes this platform
	IgnoreOS bool

	// DryRun logs what would execute without invoking any script
	DryRun bool

	// ScriptTimeout bounds each script invocation; zero means unlimited
	ScriptTimeout time.Duration

	// FS overrides the filesystem, for tests
	FS types.FS

	// Runner overrides script invocation, for tests
	Runner executor.Runner
}

// Result carries everything a caller needs to report on a run
type Result struct {
	Root        string
	Config      *types.Config
	Discovered  []types.Dot
	Selected    []types.Selection
	MissingApps []string
	Results     types.Results
}

// Run executes the full pipeline and returns the aggregated result. Fatal
// errors (unresolvable root, broken config, OS mismatch) abort the run;
// per-dot script failures never do.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("core")
	defer logging.LogOperationStart(logger, "run")()

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	root, err := paths.ResolveRoot(opts.Root)
	if err != nil {
		return nil, err
	}

	discovered, err := dots.Find(fs, root)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(fs, root, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if cfg != nil && !opts.IgnoreOS && !cfg.AppliesTo(runtime.GOOS) {
		return nil, errors.Newf(errors.ErrOSMismatch,
			"config %q does not apply to this operating system", cfg.Name).
			WithDetail("os", runtime.GOOS).
			WithDetail("applicable", cfg.OperatingSystems)
	}

	selected := selection.Select(discovered, cfg)
	missing := selection.MissingApps(discovered, cfg)
	for _, name := range missing {
		logger.Warn().Str("app", name).Msg("Configured app matches no discovered dot")
	}

	exec := executor.New(executor.Options{
		Runner:        opts.Runner,
		DryRun:        opts.DryRun,
		Logger:        logging.GetLogger("executor"),
		ScriptTimeout: opts.ScriptTimeout,
	})
	results := exec.Execute(ctx, selected)

	return &Result{
		Root:        root,
		Config:      cfg,
		Discovered:  discovered,
		Selected:    selected,
		MissingApps: missing,
		Results:     results,
	}, nil
}

// loadConfig loads the explicit config path, or probes the root for one.
// No config anywhere is a valid state: every dot runs, none installed.
func loadConfig(fs types.FS, root, explicit string) (*types.Config, error) {
	path := explicit
	if path == "" {
		path = config.Locate(fs, root)
	}
	if path == "" {
		return nil, nil
	}
	return config.Load(fs, path)
}
