// Copyright ClusterHQ Inc.  See LICENSE file for details.

// Package logexport writes a host's service and system logs into a
// directory as gzip-compressed files. JournaldExporter reads from the
// systemd journal, UpstartExporter from the log files upstart and rsyslog
// leave under /var/log; both produce the same file layout so the archive
// looks identical across platforms.
package logexport

import "context"

// Exporter captures logs into a staging directory.
type Exporter interface {
	// ExportService writes <name>_startup.gz and <name>_eliot.gz into dir.
	ExportService(ctx context.Context, name, dir string) error
	// ExportSystem writes syslog.gz into dir.
	ExportSystem(ctx context.Context, dir string) error
}
