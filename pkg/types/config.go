package types

import "strings"

// App is a declarative reference to a Dot by name, carrying the desired
// install behavior. Only apps listed in a Config are set up.
type App struct {
	Name    string `toml:"name" yaml:"name"`
	Install bool   `toml:"install" yaml:"install"`
}

// Config is the declarative policy for one target environment: which apps
// to set up and which operating systems the policy applies to.
type Config struct {
	Name             string   `toml:"name" yaml:"name"`
	Description      string   `toml:"description" yaml:"description"`
	OperatingSystems []string `toml:"os" yaml:"os"`
	Apps             []App    `toml:"apps" yaml:"apps"`
}

// AppliesTo reports whether the config is applicable on the given GOOS.
// An empty OS list means the config applies everywhere.
func (c *Config) AppliesTo(goos string) bool {
	if len(c.OperatingSystems) == 0 {
		return true
	}
	for _, os := range c.OperatingSystems {
		if strings.EqualFold(os, goos) {
			return true
		}
	}
	return false
}

// AppNames returns the names of all apps in declaration order
func (c *Config) AppNames() []string {
	names := make([]string, len(c.Apps))
	for i, app := range c.Apps {
		names[i] = app.Name
	}
	return names
}
