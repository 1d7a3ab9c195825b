// Copyright ClusterHQ Inc.  See LICENSE file for details.

package platform

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping host probe in short mode")
	}
	if runtime.GOOS != "linux" {
		t.Skip("host probe only meaningful on linux")
	}

	id := Detect(context.Background())
	assert.NotEmpty(t, id.Name)
	assert.NotEmpty(t, id.Hostname)
	assert.Contains(t, id.Label(), "-")
}

func TestIdentityLabel(t *testing.T) {
	id := Identity{Name: "Ubuntu", Version: "14.04"}
	assert.Equal(t, "ubuntu-14.04", id.Label())
}
