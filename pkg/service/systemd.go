// Copyright ClusterHQ Inc.  See LICENSE file for details.

package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/ClusterHQ/flocker-diagnostics/pkg/command"
)

// flockerUnit matches Flocker service units and captures the unit name
// without its .service suffix.
var flockerUnit = regexp.MustCompile(`^(flocker-.+)\.service`)

// SystemdManager lists services through systemctl.
type SystemdManager struct {
	runner command.Runner
}

// NewSystemdManager returns a manager backed by the given runner, or by
// the real systemctl binary when runner is nil.
func NewSystemdManager(runner command.Runner) *SystemdManager {
	if runner == nil {
		runner = command.ExecRunner{}
	}
	return &SystemdManager{runner: runner}
}

// Services lists every unit file known to systemd. Sockets, timers and
// other non-service units are included; Flocker filters them out.
func (m *SystemdManager) Services(ctx context.Context) ([]Record, error) {
	output, err := m.runner.Output(ctx, "systemctl", "list-unit-files", "--no-legend")
	if err != nil {
		return nil, fmt.Errorf("list unit files: %w", err)
	}
	records, err := parseListing(output)
	if err != nil {
		return nil, err
	}
	slog.Debug("listed unit files", slog.Int("count", len(records)))
	return records, nil
}

// Flocker returns the enabled flocker-* service units with the .service
// suffix stripped, so the names line up with journald unit queries and
// log file naming.
func (m *SystemdManager) Flocker(ctx context.Context) ([]Record, error) {
	all, err := m.Services(ctx)
	if err != nil {
		return nil, err
	}

	var flocker []Record
	for _, record := range all {
		match := flockerUnit.FindStringSubmatch(record.Name)
		if match == nil || record.Status != "enabled" {
			continue
		}
		flocker = append(flocker, Record{Name: match[1], Status: record.Status})
	}
	return flocker, nil
}
