// Copyright ClusterHQ Inc.  See LICENSE file for details.

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/ClusterHQ/flocker-diagnostics/pkg/platform"
)

// Report summarizes one diagnostics run. Its String form is just the
// archive path, which is what the default text output prints.
type Report struct {
	Archive      string `json:"archive" yaml:"archive"`
	Distribution string `json:"distribution" yaml:"distribution"`
	Hostname     string `json:"hostname" yaml:"hostname"`
	SizeBytes    int64  `json:"size_bytes" yaml:"size_bytes"`
	ElapsedMS    int64  `json:"elapsed_ms" yaml:"elapsed_ms"`
}

func (r Report) String() string { return r.Archive }

func newReport(path string, dist platform.Distribution, elapsed time.Duration) (Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Report{}, fmt.Errorf("stat archive: %w", err)
	}
	hostname, _ := os.Hostname()
	return Report{
		Archive:      path,
		Distribution: dist.Label(),
		Hostname:     hostname,
		SizeBytes:    info.Size(),
		ElapsedMS:    elapsed.Milliseconds(),
	}, nil
}
