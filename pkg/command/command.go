// Copyright ClusterHQ Inc.  See LICENSE file for details.

// Package command runs the external tools diagnostics collection depends
// on: systemctl, initctl, journalctl and docker. Everything goes through
// the Runner interface so tests can script command output without a real
// init system on the test host.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Stderr kept on a failed command is capped so a chatty tool cannot bloat
// error messages.
const maxStderr = 4 << 10

// Runner executes an external command to completion.
//
// Output captures stdout, Run streams stdout to a writer. Both treat a
// non-zero exit status as an error. No timeout is imposed; the context is
// for cancellation only.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	Run(ctx context.Context, stdout io.Writer, name string, args ...string) error
}

// Error describes a command that could not be run or exited non-zero.
type Error struct {
	Name     string
	Args     []string
	ExitCode int // -1 when the command never ran
	Stderr   string
	Err      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %v", strings.Join(append([]string{e.Name}, e.Args...), " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// ExecRunner is the Runner used outside of tests. It resolves the command
// on PATH and executes it with os/exec.
type ExecRunner struct{}

func (r ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout bytes.Buffer
	if err := r.Run(ctx, &stdout, name, args...); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}

func (ExecRunner) Run(ctx context.Context, stdout io.Writer, name string, args ...string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return &Error{Name: name, Args: args, ExitCode: -1, Err: err}
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return newError(name, args, stderr.Bytes(), err)
	}
	return nil
}

func newError(name string, args []string, stderr []byte, err error) *Error {
	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	if len(stderr) > maxStderr {
		stderr = stderr[:maxStderr]
	}
	return &Error{
		Name:     name,
		Args:     args,
		ExitCode: code,
		Stderr:   string(bytes.TrimSpace(stderr)),
		Err:      err,
	}
}
