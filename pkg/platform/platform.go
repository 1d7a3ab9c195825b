// Copyright ClusterHQ Inc.  See LICENSE file for details.

package platform

import (
	"fmt"
	"strings"

	"github.com/ClusterHQ/flocker-diagnostics/pkg/command"
	"github.com/ClusterHQ/flocker-diagnostics/pkg/logexport"
	"github.com/ClusterHQ/flocker-diagnostics/pkg/service"
)

// InitSystem identifies how a distribution manages services.
type InitSystem int

const (
	InitSystemd InitSystem = iota
	InitUpstart
)

func (s InitSystem) String() string {
	switch s {
	case InitUpstart:
		return "upstart"
	default:
		return "systemd"
	}
}

// LogSystem identifies where a distribution keeps service and system logs.
type LogSystem int

const (
	LogJournald LogSystem = iota
	LogSyslog
)

func (s LogSystem) String() string {
	switch s {
	case LogSyslog:
		return "syslog"
	default:
		return "journald"
	}
}

// Distribution describes one supported Linux distribution and the
// capabilities used to collect diagnostics from it. The capability fields
// are closed enumerations rather than free-form hooks: adding a platform
// means adding a registry entry, not threading new function values through
// the collection path.
type Distribution struct {
	Name    string
	Version string
	Init    InitSystem
	Logs    LogSystem
}

// Label returns the name-version form used for matching and error
// reporting, e.g. "ubuntu-14.04".
func (d Distribution) Label() string {
	return strings.ToLower(d.Name) + "-" + d.Version
}

// ServiceManager returns the service listing strategy for d.
func (d Distribution) ServiceManager(runner command.Runner) service.Manager {
	switch d.Init {
	case InitUpstart:
		return service.NewUpstartManager(runner)
	default:
		return service.NewSystemdManager(runner)
	}
}

// LogExporter returns the log collection strategy for d.
func (d Distribution) LogExporter(runner command.Runner) logexport.Exporter {
	switch d.Logs {
	case LogSyslog:
		return logexport.NewUpstartExporter()
	default:
		return logexport.NewJournaldExporter(runner)
	}
}

// Distributions returns the supported distributions in match order.
func Distributions() []Distribution {
	return []Distribution{
		{Name: "centos", Version: "7", Init: InitSystemd, Logs: LogJournald},
		{Name: "fedora", Version: "22", Init: InitSystemd, Logs: LogJournald},
		{Name: "ubuntu", Version: "14.04", Init: InitUpstart, Logs: LogSyslog},
	}
}

// UnsupportedDistributionError reports a host that matched no supported
// distribution. Label carries what the probe saw, so the operator learns
// which platform support would have to be added for.
type UnsupportedDistributionError struct {
	Label string
}

func (e *UnsupportedDistributionError) Error() string {
	return fmt.Sprintf("unsupported distribution: %s", e.Label)
}
