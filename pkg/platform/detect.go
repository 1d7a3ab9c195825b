// Copyright ClusterHQ Inc.  See LICENSE file for details.

package platform

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// Identity is the probed OS identity of the running host.
type Identity struct {
	Name     string // distribution id, e.g. "ubuntu"
	Version  string // distribution version, e.g. "14.04"
	Hostname string
	Kernel   string
}

// Label returns the name-version form of the identity, lowercased the same
// way Distribution labels are.
func (id Identity) Label() string {
	return strings.ToLower(id.Name) + "-" + id.Version
}

// Detect probes the running host. Probing is best-effort and never fails:
// a host the probe cannot describe ends up with an empty identity, which
// simply matches no supported distribution later.
func Detect(ctx context.Context) Identity {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		slog.Warn("host probe failed", slog.String("error", err.Error()))
		return Identity{}
	}
	return Identity{
		Name:     info.Platform,
		Version:  info.PlatformVersion,
		Hostname: info.Hostname,
		Kernel:   info.KernelVersion,
	}
}

// Match returns the first supported distribution whose label is a prefix
// of the identity's label, so point releases like centos-7.1.1503 match
// centos-7. Declaration order of the registry decides ties.
func Match(id Identity) (Distribution, error) {
	probed := id.Label()
	for _, dist := range Distributions() {
		if strings.HasPrefix(probed, dist.Label()) {
			return dist, nil
		}
	}
	return Distribution{}, &UnsupportedDistributionError{Label: probed}
}

// CurrentDistribution probes the running host and matches it against the
// supported set.
func CurrentDistribution(ctx context.Context) (Distribution, error) {
	return Match(Detect(ctx))
}
