// Package selection joins the declarative config against discovered dots.
// The output preserves discovery order; config order only decides which
// install flag wins when an app is listed more than once.
package selection

import (
	"github.com/dotup-sh/dotup/pkg/logging"
	"github.com/dotup-sh/dotup/pkg/types"
)

// Select returns one Selection per discovered dot referenced by the config,
// in discovery order. A nil config selects every dot with install disabled.
// Duplicate app entries are deduplicated; the last entry's install flag wins.
func Select(dots []types.Dot, cfg *types.Config) []types.Selection {
	logger := logging.GetLogger("selection")

	if cfg == nil {
		selections := make([]types.Selection, len(dots))
		for i, dot := range dots {
			selections[i] = types.Selection{Dot: dot}
		}
		logger.Info().Int("selected", len(selections)).Msg("No config, selected all dots")
		return selections
	}

	// Last entry wins for duplicate app names
	install := make(map[string]bool, len(cfg.Apps))
	for _, app := range cfg.Apps {
		if _, seen := install[app.Name]; seen {
			logger.Warn().Str("app", app.Name).Msg("Duplicate app in config, last entry wins")
		}
		install[app.Name] = app.Install
	}

	var selections []types.Selection
	for _, dot := range dots {
		flag, referenced := install[dot.Name]
		if !referenced {
			logger.Trace().Str("dot", dot.Name).Msg("Dot not referenced by config")
			continue
		}
		selections = append(selections, types.Selection{Dot: dot, Install: flag})
	}

	logger.Info().
		Int("selected", len(selections)).
		Int("discovered", len(dots)).
		Int("configured", len(cfg.Apps)).
		Msg("Selected dots")

	return selections
}

// MissingApps returns config app names that match no discovered dot, in
// declaration order. Useful for surfacing typos in the config.
func MissingApps(dots []types.Dot, cfg *types.Config) []string {
	if cfg == nil {
		return nil
	}

	discovered := make(map[string]struct{}, len(dots))
	for _, dot := range dots {
		discovered[dot.Name] = struct{}{}
	}

	var missing []string
	seen := make(map[string]struct{})
	for _, app := range cfg.Apps {
		if _, ok := discovered[app.Name]; ok {
			continue
		}
		if _, dup := seen[app.Name]; dup {
			continue
		}
		seen[app.Name] = struct{}{}
		missing = append(missing, app.Name)
	}
	return missing
}
