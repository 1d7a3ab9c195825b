// Copyright ClusterHQ Inc.  See LICENSE file for details.

package logexport

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournaldExportService(t *testing.T) {
	journal := "starting control service\nlistening on 4523\n"
	runner := &fakeRunner{output: map[string]string{
		"journalctl --all --output cat --unit flocker-control.service": journal,
	}}
	exporter := NewJournaldExporter(runner)
	dir := t.TempDir()

	require.NoError(t, exporter.ExportService(context.Background(), "flocker-control", dir))

	assert.Empty(t, gunzip(t, filepath.Join(dir, "flocker-control_startup.gz")),
		"journald has no startup log; the placeholder is an empty gzip stream")
	assert.Equal(t, journal, string(gunzip(t, filepath.Join(dir, "flocker-control_eliot.gz"))))
	assert.Equal(t, []string{"journalctl --all --output cat --unit flocker-control.service"}, runner.calls)
}

func TestJournaldUnitNameVerbatim(t *testing.T) {
	// Dashes are the norm in Flocker unit names; journalctl must receive
	// the listed name unchanged, with only the .service suffix appended.
	runner := &fakeRunner{output: map[string]string{
		"journalctl --all --output cat --unit flocker-dataset-agent.service": "agent log\n",
	}}
	exporter := NewJournaldExporter(runner)

	require.NoError(t, exporter.ExportService(context.Background(), "flocker-dataset-agent", t.TempDir()))
	assert.Equal(t, []string{
		"journalctl --all --output cat --unit flocker-dataset-agent.service",
	}, runner.calls)
}

func TestJournaldExportServiceFailure(t *testing.T) {
	cmdErr := errors.New("exit status 1")
	runner := &fakeRunner{errs: map[string]error{
		"journalctl --all --output cat --unit flocker-control.service": cmdErr,
	}}
	exporter := NewJournaldExporter(runner)

	err := exporter.ExportService(context.Background(), "flocker-control", t.TempDir())
	assert.ErrorIs(t, err, cmdErr)
}

func TestJournaldExportSystem(t *testing.T) {
	boot := "kernel: Linux version 3.10.0\nsystemd[1]: Startup finished\n"
	runner := &fakeRunner{output: map[string]string{
		"journalctl --all --boot": boot,
	}}
	exporter := NewJournaldExporter(runner)
	dir := t.TempDir()

	require.NoError(t, exporter.ExportSystem(context.Background(), dir))
	assert.Equal(t, boot, string(gunzip(t, filepath.Join(dir, "syslog.gz"))))
}

func TestJournaldExportSystemFailure(t *testing.T) {
	cmdErr := errors.New("exit status 1")
	runner := &fakeRunner{errs: map[string]error{"journalctl --all --boot": cmdErr}}
	exporter := NewJournaldExporter(runner)

	err := exporter.ExportSystem(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, cmdErr)
}
