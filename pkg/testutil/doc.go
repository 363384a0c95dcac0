// Package testutil provides shared helpers for building dotfiles trees and
// stub scripts on t.TempDir() in tests.
package testutil
