// Copyright ClusterHQ Inc.  See LICENSE file for details.

package service

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// fakeRunner scripts command output per argv line so listing parsers can
// be tested without a real init system.
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
