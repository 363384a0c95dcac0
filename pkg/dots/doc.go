// Package dots implements discovery of dot directories inside the dotfiles
// root. A directory qualifies as a dot when it directly contains a file whose
// stem is "setup"; install and setup scripts are then resolved against the
// platform's accepted script names.
package dots
