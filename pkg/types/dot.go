package types

import "path/filepath"

// Dot represents a single application's configuration bundle: a directory
// inside the dotfiles root holding an optional install script and a setup
// script. Dots are immutable once constructed by discovery; the install
// decision lives on Selection, not here.
type Dot struct {
	// Name is the dot name (the directory name)
	Name string

	// Path is the absolute path to the dot directory
	Path string

	// InstallScript is the resolved install script path, or "" when the
	// dot has no unambiguous install script for this platform
	InstallScript string

	// SetupScript is the resolved setup script path, or "" when the dot
	// has no unambiguous setup script for this platform
	SetupScript string
}

// HasInstallScript reports whether an install script was resolved
func (d Dot) HasInstallScript() bool {
	return d.InstallScript != ""
}

// HasSetupScript reports whether a setup script was resolved
func (d Dot) HasSetupScript() bool {
	return d.SetupScript != ""
}

// FilePath returns the full path to a file within the dot directory
func (d Dot) FilePath(filename string) string {
	return filepath.Join(d.Path, filename)
}

// Selection pairs a discovered Dot with the install decision the config
// made for it. Produced by the selector, consumed by the executor.
type Selection struct {
	Dot Dot

	// Install requests the install script be run before setup
	Install bool
}
