// Copyright ClusterHQ Inc.  See LICENSE file for details.

package logexport

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeRunner scripts command output per argv line.
type fakeRunner struct {
	output map[string]string
	errs   map[string]error
	calls  []string
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, key)
	if err := f.errs[key]; err != nil {
		return nil, err
	}
	out, ok := f.output[key]
	if !ok {
		return nil, fmt.Errorf("unexpected command: %s", key)
	}
	return []byte(out), nil
}

func (f *fakeRunner) Run(ctx context.Context, stdout io.Writer, name string, args ...string) error {
	out, err := f.Output(ctx, name, args...)
	if err != nil {
		return err
	}
	_, err = stdout.Write(out)
	return err
}

// gunzip decompresses a .gz file, failing the test if the file is not a
// valid gzip stream.
func gunzip(t *testing.T, path string) []byte {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	zr, err := gzip.NewReader(f)
	require.NoError(t, err, "%s is not valid gzip", path)
	defer zr.Close()

	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return data
}
