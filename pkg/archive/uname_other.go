// Copyright ClusterHQ Inc.  See LICENSE file for details.

//go:build !linux

package archive

import "errors"

// Diagnostics target Linux hosts only; other platforms compile but cannot
// collect kernel identity.
func unameLine() (string, error) {
	return "", errors.New("uname collection requires linux")
}
