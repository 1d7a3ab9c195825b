// Copyright ClusterHQ Inc.  See LICENSE file for details.

// Package cli implements the flocker-diagnostics command line interface.
//
// # Overview
//
// flocker-diagnostics collects support diagnostics from the node it runs
// on and packages them into a single tar archive. It must run as root on
// one of the supported distributions (CentOS 7, Fedora 22, Ubuntu 14.04);
// anywhere else it refuses to run before collecting anything.
//
// # Usage
//
//	flocker-diagnostics [--output-dir DIR] [--format text|json|yaml] [--log-level LEVEL]
//
// On success the path of the created archive is printed on stdout. With
// --format json or yaml a small report (archive path, distribution,
// hostname, size, elapsed time) is printed instead. Logging always goes
// to stderr so stdout stays parseable.
//
// # Environment Variables
//
//	FLOCKER_DIAGNOSTICS_OUTPUT_DIR  Default for --output-dir
//	FLOCKER_DIAGNOSTICS_FORMAT      Default for --format
//	LOG_LEVEL                       Default for --log-level
//
// # Exit Codes
//
//	0  Success, archive written
//	1  Any failure (unsupported distribution, command failure, I/O error)
//
// The CLI uses the urfave/cli/v3 framework and delegates to:
//   - pkg/platform  - distribution detection and strategy selection
//   - pkg/archive   - collection and tar assembly
//   - pkg/serializer - result formatting
//   - pkg/logging   - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/ClusterHQ/flocker-diagnostics/pkg/version.Version=1.2.0'"
package cli
