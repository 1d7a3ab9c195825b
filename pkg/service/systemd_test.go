// Copyright ClusterHQ Inc.  See LICENSE file for details.

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listUnitFiles = "systemctl list-unit-files --no-legend"

func TestSystemdServices(t *testing.T) {
	runner := &fakeRunner{output: map[string]string{
		listUnitFiles: "cron.service enabled\nflocker-control.service enabled\n",
	}}
	manager := NewSystemdManager(runner)

	records, err := manager.Services(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Record{
		{Name: "cron.service", Status: "enabled"},
		{Name: "flocker-control.service", Status: "enabled"},
	}, records)
}

func TestSystemdServicesRelists(t *testing.T) {
	runner := &fakeRunner{output: map[string]string{
		listUnitFiles: "cron.service enabled\n",
	}}
	manager := NewSystemdManager(runner)

	ctx := context.Background()
	_, err := manager.Services(ctx)
	require.NoError(t, err)
	_, err = manager.Services(ctx)
	require.NoError(t, err)
	assert.Len(t, runner.calls, 2, "every listing should re-run systemctl")
}

func TestSystemdFlocker(t *testing.T) {
	listing := "proc-sys-fs-binfmt_misc.automount static\n" +
		"flocker-control.service enabled\n" +
		"flocker-dataset-agent.service enabled\n" +
		"flocker-container-agent.service disabled\n" +
		"flocker-control.socket enabled\n" +
		"docker.service enabled\n"
	runner := &fakeRunner{output: map[string]string{listUnitFiles: listing}}
	manager := NewSystemdManager(runner)

	records, err := manager.Flocker(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Record{
		{Name: "flocker-control", Status: "enabled"},
		{Name: "flocker-dataset-agent", Status: "enabled"},
	}, records, "only enabled flocker-* service units, names stripped of .service")
}

func TestSystemdFlockerEmptyListing(t *testing.T) {
	runner := &fakeRunner{output: map[string]string{listUnitFiles: ""}}
	manager := NewSystemdManager(runner)

	records, err := manager.Flocker(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSystemdListingFailure(t *testing.T) {
	listErr := errors.New("exit status 1")
	runner := &fakeRunner{errs: map[string]error{listUnitFiles: listErr}}
	manager := NewSystemdManager(runner)

	_, err := manager.Services(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, listErr)

	_, err = manager.Flocker(context.Background())
	assert.ErrorIs(t, err, listErr)
}

func TestSystemdMalformedListing(t *testing.T) {
	runner := &fakeRunner{output: map[string]string{
		listUnitFiles: "cron.service enabled\nbroken\n",
	}}
	manager := NewSystemdManager(runner)

	_, err := manager.Services(context.Background())
	var malformed *MalformedLineError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "broken", malformed.Line)
}
