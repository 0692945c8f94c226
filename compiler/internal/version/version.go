// Package version holds the single version string cmd/smlc reports.
package version

const v = "smlc 0.1.0"

// String returns the compiler's version string.
func String() string { return v }
