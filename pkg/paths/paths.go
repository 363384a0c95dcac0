// Package paths resolves and validates the dotfiles root directory.
// Resolution priority: explicit argument, DOTUP_DOTFILES_ROOT, then a
// "dotfiles" directory under the user's home.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/logging"
)

// Environment variable names
const (
	// EnvDotfilesRoot is the primary environment variable for the dotfiles location
	EnvDotfilesRoot = "DOTUP_DOTFILES_ROOT"
)

// DefaultDotfilesDir is the default directory name for dotfiles under home
const DefaultDotfilesDir = "dotfiles"

// ResolveRoot determines the dotfiles root from an optional explicit path.
// An empty explicit path falls back to DOTUP_DOTFILES_ROOT, then to
// ~/dotfiles. The result is absolute with symlinks resolved; a root that
// does not exist or is not a directory is a coded error.
func ResolveRoot(explicit string) (string, error) {
	logger := logging.GetLogger("paths")

	root := explicit
	if root == "" {
		root = os.Getenv(EnvDotfilesRoot)
	}
	if root == "" {
		home := homeDir()
		if home == "" {
			return "", errors.New(errors.ErrNotFound, "cannot determine home directory for default dotfiles root")
		}
		root = filepath.Join(home, DefaultDotfilesDir)
	}
	root = expandHome(root)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to get absolute path for dotfiles root").
			WithDetail("path", root)
	}

	resolved, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrap(err, errors.ErrNotFound, "dotfiles root does not exist").
				WithDetail("path", absRoot)
		}
		return "", errors.Wrap(err, errors.ErrFileAccess, "cannot resolve dotfiles root").
			WithDetail("path", absRoot)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "cannot access dotfiles root").
			WithDetail("path", resolved)
	}
	if !info.IsDir() {
		return "", errors.New(errors.ErrInvalidInput, "dotfiles root is not a directory").
			WithDetail("path", resolved)
	}

	logger.Debug().Str("root", resolved).Msg("Resolved dotfiles root")
	return resolved, nil
}

// homeDir returns the user's home directory, preferring os.UserHomeDir and
// falling back to the XDG library's view of home
func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	return xdg.Home
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" {
		return homeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home := homeDir()
		if home != "" {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
