// Package types defines the core data model shared across dotup: the Dot
// bundle produced by discovery, the declarative App/Config policy, the
// Selection join record, and per-run execution results.
package types
