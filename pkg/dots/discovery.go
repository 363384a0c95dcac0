package dots

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/logging"
	"github.com/dotup-sh/dotup/pkg/platform"
	"github.com/dotup-sh/dotup/pkg/types"
)

// Find scans the immediate subdirectories of root and returns one Dot per
// qualifying directory, sorted by name for deterministic ordering.
func Find(filesystem types.FS, root string) ([]types.Dot, error) {
	return FindFor(filesystem, root, platform.Detect())
}

// FindFor is Find with an explicit platform family, so script resolution is
// testable on any host.
func FindFor(filesystem types.FS, root string, family platform.Family) ([]types.Dot, error) {
	logger := logging.GetLogger("dots.discovery")
	logger.Trace().Str("root", root).Msg("Scanning dotfiles root")

	info, err := filesystem.Stat(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrNotFound, "dotfiles root does not exist").
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrInvalidInput, "dotfiles root is not a directory").
			WithDetail("path", root)
	}

	entries, err := filesystem.ReadDir(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read dotfiles root").
			WithDetail("path", root)
	}

	var dots []types.Dot
	for _, entry := range entries {
		name := entry.Name()

		if !entry.IsDir() {
			continue
		}

		// Skip hidden directories (.git and friends)
		if strings.HasPrefix(name, ".") {
			logger.Trace().Str("name", name).Msg("Skipping hidden directory")
			continue
		}

		dirPath := filepath.Join(root, name)
		files, err := filesystem.ReadDir(dirPath)
		if err != nil {
			// Log the error but continue with other directories
			logger.Warn().
				Err(err).
				Str("path", dirPath).
				Msg("Cannot read directory, skipping")
			continue
		}

		if !hasSetupFile(files) {
			logger.Trace().Str("name", name).Msg("No setup file, not a dot")
			continue
		}

		dot := types.Dot{
			Name:          name,
			Path:          dirPath,
			InstallScript: resolveScript(files, dirPath, family, platform.ActionInstall),
			SetupScript:   resolveScript(files, dirPath, family, platform.ActionSetup),
		}
		dots = append(dots, dot)

		logger.Trace().
			Str("name", dot.Name).
			Bool("hasInstall", dot.HasInstallScript()).
			Bool("hasSetup", dot.HasSetupScript()).
			Msg("Found dot")
	}

	// Sort by name for consistent ordering
	sort.Slice(dots, func(i, j int) bool {
		return dots[i].Name < dots[j].Name
	})

	logger.Info().Int("count", len(dots)).Msg("Discovered dots")
	return dots, nil
}

// hasSetupFile reports whether any regular file in the listing has the
// stem "setup", regardless of extension. This is what qualifies a
// directory as a dot; whether the setup script is runnable on this
// platform is a separate question answered by resolveScript.
func hasSetupFile(files []fs.DirEntry) bool {
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		stem := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
		if stem == platform.ActionSetup {
			return true
		}
	}
	return false
}

// resolveScript returns the path of the single file matching the platform's
// accepted names for the action. Zero or multiple matches resolve to "":
// ambiguity means the action is simply unavailable for this dot, never an
// error.
func resolveScript(files []fs.DirEntry, dirPath string, family platform.Family, action string) string {
	accepted := platform.ScriptNamesFor(family, action)

	var matches []string
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		for _, name := range accepted {
			if f.Name() == name {
				matches = append(matches, f.Name())
			}
		}
	}

	if len(matches) != 1 {
		return ""
	}
	return filepath.Join(dirPath, matches[0])
}
