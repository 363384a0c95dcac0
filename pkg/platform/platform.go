// Package platform maps the runtime operating system to the set of script
// file names dotup accepts for an action. The mapping is a fixed lookup:
// every platform accepts the cross-platform ".py" form, the Windows family
// additionally accepts ".ps1", and everything else accepts ".sh".
package platform

import "runtime"

// Family is a coarse operating system classification. Script resolution
// only cares about Windows versus everything else.
type Family string

const (
	Windows Family = "windows"
	Unix    Family = "unix"
)

// Action names for the two script kinds a dot can carry
const (
	ActionInstall = "install"
	ActionSetup   = "setup"
)

// Detect classifies the runtime operating system
func Detect() Family {
	return classify(runtime.GOOS)
}

func classify(goos string) Family {
	if goos == "windows" {
		return Windows
	}
	return Unix
}

// ScriptNames returns the accepted file names for an action on the runtime
// platform, e.g. ScriptNames("setup") -> ["setup.py", "setup.sh"] on Linux.
func ScriptNames(action string) []string {
	return ScriptNamesFor(Detect(), action)
}

// ScriptNamesFor returns the accepted file names for an action on the given
// family. The generic extension comes first; ordering is not significant
// since resolution requires exactly one match.
func ScriptNamesFor(family Family, action string) []string {
	switch family {
	case Windows:
		return []string{action + ".py", action + ".ps1"}
	default:
		return []string{action + ".py", action + ".sh"}
	}
}
