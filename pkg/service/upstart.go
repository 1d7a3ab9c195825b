// Copyright ClusterHQ Inc.  See LICENSE file for details.

package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ClusterHQ/flocker-diagnostics/pkg/command"
)

// UpstartManager lists services through initctl.
type UpstartManager struct {
	runner command.Runner
}

// NewUpstartManager returns a manager backed by the given runner, or by
// the real initctl binary when runner is nil.
func NewUpstartManager(runner command.Runner) *UpstartManager {
	if runner == nil {
		runner = command.ExecRunner{}
	}
	return &UpstartManager{runner: runner}
}

// Services lists every job initctl knows about.
func (m *UpstartManager) Services(ctx context.Context) ([]Record, error) {
	output, err := m.runner.Output(ctx, "initctl", "list")
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	records, err := parseListing(output)
	if err != nil {
		return nil, err
	}
	slog.Debug("listed upstart jobs", slog.Int("count", len(records)))
	return records, nil
}

// Flocker returns the flocker-* jobs. Upstart carries no enablement state
// in its listing, so unlike systemd there is no status filter and names
// need no normalization.
func (m *UpstartManager) Flocker(ctx context.Context) ([]Record, error) {
	all, err := m.Services(ctx)
	if err != nil {
		return nil, err
	}

	var flocker []Record
	for _, record := range all {
		if strings.HasPrefix(record.Name, "flocker-") {
			flocker = append(flocker, record)
		}
	}
	return flocker, nil
}
