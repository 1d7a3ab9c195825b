// Copyright ClusterHQ Inc.  See LICENSE file for details.

// Package service lists the services an init system knows about, and
// picks out the Flocker ones. SystemdManager and UpstartManager implement
// the same Manager interface so callers never branch on the init system
// themselves.
package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// Record is one row of an init system's service listing.
type Record struct {
	Name   string
	Status string
}

// Manager lists the services known to a host's init system. Implementations
// shell out on every call, so repeated listings observe current state.
type Manager interface {
	// Services returns every service in the listing.
	Services(ctx context.Context) ([]Record, error)
	// Flocker returns the subset of the listing that belongs to Flocker,
	// with names normalized for log export.
	Flocker(ctx context.Context) ([]Record, error)
}

// MalformedLineError reports a listing line that does not carry both a
// service name and a status. Such a line means the listing command changed
// shape underneath us, so collection stops rather than silently dropping
// services.
type MalformedLineError struct {
	Line string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed service listing line: %q", e.Line)
}

// parseListing turns raw listing output into records, one per line. A name
// and a status are separated by the first run of whitespace; the status
// keeps any internal whitespace ("start/running, process 1234" stays
// intact). Empty output yields no records, but an empty line inside the
// listing is malformed like any other line missing a field.
func parseListing(output []byte) ([]Record, error) {
	lines := strings.Split(string(output), "\n")
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}

	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		record, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func parseLine(line string) (Record, error) {
	trimmed := strings.TrimSpace(line)
	sep := strings.IndexFunc(trimmed, unicode.IsSpace)
	if sep < 0 {
		return Record{}, &MalformedLineError{Line: line}
	}
	return Record{
		Name:   trimmed[:sep],
		Status: strings.TrimLeftFunc(trimmed[sep:], unicode.IsSpace),
	}, nil
}
