// Copyright ClusterHQ Inc.  See LICENSE file for details.

// Package archive assembles a host's diagnostics into a single tar file
// for Flocker support.
//
// A Builder stages everything under one directory named
//
//	clusterhq_flocker_logs_<hostname>_<epoch-seconds>
//
// and produces <name>.tar next to it, with that directory as the sole
// top-level entry. The archive holds, for a host running services A and B:
//
//	flocker-version
//	A_startup.gz   A_eliot.gz
//	B_startup.gz   B_eliot.gz
//	syslog.gz
//	service-status
//	docker-version
//	docker-info
//	uname
//	os-release
//
// Collection is sequential and fails fast on the first error. The staging
// directory never outlives Create: it is removed on success and on
// failure, and the collection error, if any, takes precedence over a
// cleanup error. The tar itself stays uncompressed; the bulky members are
// individually gzipped, and support tooling expects to list the tar
// cheaply.
package archive
