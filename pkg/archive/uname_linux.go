// Copyright ClusterHQ Inc.  See LICENSE file for details.

//go:build linux

package archive

import (
	"bytes"
	"strings"

	"golang.org/x/sys/unix"
)

// unameLine returns the kernel identity fields support expects, space
// joined: sysname, nodename, release, version, machine.
func unameLine() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	fields := []string{
		utsString(uts.Sysname[:]),
		utsString(uts.Nodename[:]),
		utsString(uts.Release[:]),
		utsString(uts.Version[:]),
		utsString(uts.Machine[:]),
	}
	return strings.Join(fields, " "), nil
}

// utsString trims a NUL-terminated utsname field.
func utsString(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return string(field)
}
