// Copyright ClusterHQ Inc.  See LICENSE file for details.

package logexport

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ClusterHQ/flocker-diagnostics/pkg/command"
)

// gzipFile compresses the file at source into target. A source that does
// not exist, or is not a regular file, still produces a valid empty gzip
// stream rather than an error: a service that never wrote its log file is
// an answer worth shipping, not a failure.
func gzipFile(source, target string) (err error) {
	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", target, cerr)
		}
	}()

	compressed := gzip.NewWriter(out)
	if info, statErr := os.Stat(source); statErr == nil && info.Mode().IsRegular() {
		in, openErr := os.Open(source)
		if openErr != nil {
			return fmt.Errorf("open %s: %w", source, openErr)
		}
		defer in.Close()
		if _, copyErr := io.Copy(compressed, in); copyErr != nil {
			return fmt.Errorf("compress %s: %w", source, copyErr)
		}
	}
	if cerr := compressed.Close(); cerr != nil {
		return fmt.Errorf("flush %s: %w", target, cerr)
	}
	return nil
}

// writeEmptyGzip writes a valid gzip stream that decompresses to nothing.
func writeEmptyGzip(target string) (err error) {
	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", target, cerr)
		}
	}()
	return gzip.NewWriter(out).Close()
}

// compressCommand runs a command and gzip-compresses its stdout into
// target. The command's exit status decides success; a partial target left
// behind by a failed command is the caller's staging directory to discard.
func compressCommand(ctx context.Context, runner command.Runner, target, name string, args ...string) (err error) {
	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", target, cerr)
		}
	}()

	compressed := gzip.NewWriter(out)
	if runErr := runner.Run(ctx, compressed, name, args...); runErr != nil {
		return runErr
	}
	if cerr := compressed.Close(); cerr != nil {
		return fmt.Errorf("flush %s: %w", target, cerr)
	}
	return nil
}
