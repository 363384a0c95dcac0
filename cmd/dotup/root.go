package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dotup-sh/dotup/pkg/core"
	"github.com/dotup-sh/dotup/pkg/logging"
	"github.com/dotup-sh/dotup/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	exitOK = iota
	exitError
	exitDotsFailed
)

var (
	verbosity     int
	dryRun        bool
	ignoreOS      bool
	noColor       bool
	configPath    string
	scriptTimeout time.Duration

	rootCmd = &cobra.Command{
		Use:   "dotup [dotfiles-root]",
		Short: "Discover, install and set up your dotfiles",
		Long: `dotup scans a dotfiles directory for per-application configuration
bundles ("dots"), optionally installs the underlying application via the
dot's install script, then runs its setup script and reports the outcome.

A dot is any directory in the dotfiles root containing a setup script.
An optional config file (.dotup.toml or .dotup.yaml in the root) narrows
the set of dots and marks which ones get installed first.`,
		Args: tooManyArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE:          runUp,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// tooManyArgs enforces the single optional positional argument. Anything
// beyond that aborts before discovery or execution.
func tooManyArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("too many arguments: expected at most one dotfiles root, got %d", len(args))
	}
	return nil
}

func runUp(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger("cmd")

	root := ""
	if len(args) == 1 {
		root = args[0]
	}

	result, err := core.Run(cmd.Context(), core.Options{
		Root:          root,
		ConfigPath:    configPath,
		IgnoreOS:      ignoreOS,
		DryRun:        dryRun,
		ScriptTimeout: scriptTimeout,
	})
	if err != nil {
		return err
	}

	logger.Info().
		Str("root", result.Root).
		Int("discovered", len(result.Discovered)).
		Int("selected", len(result.Selected)).
		Msg("Run completed")

	renderer := output.NewRenderer(cmd.OutOrStdout(), noColor)
	renderer.RenderSummary(result.Results)

	if result.Results.HasFailures() {
		// distinct from fatal errors: the run finished but some dots broke
		return errDotsFailed
	}
	return nil
}

// errDotsFailed signals a finished run with per-dot failures
var errDotsFailed = fmt.Errorf("some dots failed")

// run executes the root command and maps the error to an exit code
func run() int {
	err := rootCmd.Execute()
	if err == nil {
		return exitOK
	}
	if err == errDotsFailed {
		return exitDotsFailed
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return exitError
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview which scripts would run without executing them")
	rootCmd.Flags().BoolVar(&ignoreOS, "ignore-os", false, "Run even when the config's os list excludes this platform")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file (default: .dotup.toml or .dotup.yaml in the dotfiles root)")
	rootCmd.Flags().DurationVar(&scriptTimeout, "timeout", 0, "Per-script timeout (0 disables)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dotup version %s\n", version)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", date)
	},
}

var completionCmd = &cobra.Command{
	Use:                   "completion [bash|zsh|fish|powershell]",
	Short:                 "Generate shell completion script",
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		}
		return nil
	},
}
