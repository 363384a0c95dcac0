// Package filesystem provides implementations of the types.FS abstraction.
// Production code uses NewOS; tests build real trees on t.TempDir() and go
// through the same interface.
package filesystem
