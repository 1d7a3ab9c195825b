// Copyright ClusterHQ Inc.  See LICENSE file for details.

package logexport

import (
	"context"
	"path/filepath"
)

// Default log locations on Ubuntu 14.04.
const (
	upstartLogDir = "/var/log/upstart"
	flockerLogDir = "/var/log/flocker"
	syslogPath    = "/var/log/syslog"
)

// UpstartExporter copies the log files upstart and rsyslog write under
// /var/log. The fields exist so tests can point the exporter at fixture
// directories.
type UpstartExporter struct {
	UpstartDir string
	FlockerDir string
	Syslog     string
}

// NewUpstartExporter returns an exporter reading from the standard
// Ubuntu 14.04 log locations.
func NewUpstartExporter() *UpstartExporter {
	return &UpstartExporter{
		UpstartDir: upstartLogDir,
		FlockerDir: flockerLogDir,
		Syslog:     syslogPath,
	}
}

// ExportService writes the upstart job log of name into dir as
// <name>_startup.gz and its eliot log as <name>_eliot.gz. Either source
// may be absent, producing an empty compressed file.
func (e *UpstartExporter) ExportService(ctx context.Context, name, dir string) error {
	startup := filepath.Join(e.UpstartDir, name+".log")
	if err := gzipFile(startup, filepath.Join(dir, name+"_startup.gz")); err != nil {
		return err
	}
	eliot := filepath.Join(e.FlockerDir, name+".log")
	return gzipFile(eliot, filepath.Join(dir, name+"_eliot.gz"))
}

// ExportSystem writes the rsyslog system log into dir as syslog.gz.
func (e *UpstartExporter) ExportSystem(ctx context.Context, dir string) error {
	return gzipFile(e.Syslog, filepath.Join(dir, "syslog.gz"))
}
