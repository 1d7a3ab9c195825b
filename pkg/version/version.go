// Copyright ClusterHQ Inc.  See LICENSE file for details.

// Package version carries the build identity of the diagnostics tool.
package version

import "fmt"

// Populated at build time:
//
//	go build -ldflags="-X 'github.com/ClusterHQ/flocker-diagnostics/pkg/version.Version=1.2.0'"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns a single human-readable build identity line.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
