// Package config loads the declarative run configuration: which apps to set
// up, whether to install them first, and which operating systems the policy
// applies to. TOML is the primary format; YAML is accepted by extension.
package config

import (
	"path/filepath"
	"strings"

	"github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/logging"
	"github.com/dotup-sh/dotup/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// File names probed inside the dotfiles root, in order
var configFileNames = []string{
	".dotup.toml",
	"dotup.toml",
	".dotup.yaml",
	"dotup.yaml",
	".dotup.yml",
	"dotup.yml",
}

// Locate finds the config file inside the dotfiles root. An absent config
// is not an error: it returns "" and the caller runs every discovered dot.
func Locate(filesystem types.FS, root string) string {
	logger := logging.GetLogger("config")

	for _, name := range configFileNames {
		path := filepath.Join(root, name)
		if info, err := filesystem.Stat(path); err == nil && !info.IsDir() {
			logger.Debug().Str("path", path).Msg("Found config file")
			return path
		}
	}

	logger.Debug().Str("root", root).Msg("No config file in dotfiles root")
	return ""
}

// Load reads and parses a config file, selecting the parser by extension
func Load(filesystem types.FS, path string) (*types.Config, error) {
	logger := logging.GetLogger("config")

	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to read config file").
			WithDetail("path", path)
	}

	var cfg types.Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse TOML config").
				WithDetail("path", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse YAML config").
				WithDetail("path", path)
		}
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	logger.Info().
		Str("name", cfg.Name).
		Int("apps", len(cfg.Apps)).
		Strs("os", cfg.OperatingSystems).
		Msg("Loaded config")

	return &cfg, nil
}

// validate checks structural requirements on a parsed config
func validate(cfg *types.Config) error {
	if cfg.Name == "" {
		return errors.New(errors.ErrConfigValid, "config is missing a name")
	}
	for i, app := range cfg.Apps {
		if app.Name == "" {
			return errors.Newf(errors.ErrConfigValid, "app at index %d is missing a name", i)
		}
	}
	return nil
}
