// Copyright ClusterHQ Inc.  See LICENSE file for details.

package logexport

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ClusterHQ/flocker-diagnostics/pkg/command"
)

// JournaldExporter reads service and system logs from the systemd journal
// with journalctl. Output is compressed in-process, so no shell pipeline
// is involved.
type JournaldExporter struct {
	runner command.Runner
}

// NewJournaldExporter returns an exporter backed by the given runner, or
// by the real journalctl binary when runner is nil.
func NewJournaldExporter(runner command.Runner) *JournaldExporter {
	if runner == nil {
		runner = command.ExecRunner{}
	}
	return &JournaldExporter{runner: runner}
}

// ExportService writes the journal of <name>.service into dir as
// <name>_eliot.gz. journald keeps no separate startup log, so
// <name>_startup.gz is written as an empty gzip stream to keep the archive
// shape identical across platforms.
func (e *JournaldExporter) ExportService(ctx context.Context, name, dir string) error {
	if err := writeEmptyGzip(filepath.Join(dir, name+"_startup.gz")); err != nil {
		return err
	}

	// name is a unit name from the systemctl listing with .service
	// stripped; appending the suffix reconstructs it exactly.
	unitName := name + ".service"
	target := filepath.Join(dir, name+"_eliot.gz")
	slog.Debug("exporting journal", slog.String("unit", unitName))
	return compressCommand(ctx, e.runner, target,
		"journalctl", "--all", "--output", "cat", "--unit", unitName)
}

// ExportSystem writes the full journal for the current boot into dir as
// syslog.gz.
func (e *JournaldExporter) ExportSystem(ctx context.Context, dir string) error {
	target := filepath.Join(dir, "syslog.gz")
	if err := compressCommand(ctx, e.runner, target, "journalctl", "--all", "--boot"); err != nil {
		return fmt.Errorf("export journal: %w", err)
	}
	return nil
}
