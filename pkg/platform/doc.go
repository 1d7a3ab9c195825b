// Copyright ClusterHQ Inc.  See LICENSE file for details.

// Package platform decides which collection strategies fit the running
// host.
//
// Flocker runs on a small, explicitly supported set of Linux
// distributions, and how diagnostics are collected differs by init system
// and logging stack:
//
//	centos-7      systemd   journald
//	fedora-22     systemd   journald
//	ubuntu-14.04  upstart   rsyslog files
//
// Detect probes the host's identity, and Match compares the probed
// "name-version" label against the registry by prefix, so a point release
// such as ubuntu-14.04.5 still matches ubuntu-14.04. An unmatched host
// produces UnsupportedDistributionError before any collection starts; a
// near-miss like ubuntu-15.04 is rejected, not approximated.
//
// The usual entry point:
//
//	dist, err := platform.CurrentDistribution(ctx)
//	if err != nil {
//	    return err
//	}
//	services := dist.ServiceManager(runner)
//	logs := dist.LogExporter(runner)
package platform
