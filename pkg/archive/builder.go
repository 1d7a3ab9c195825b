// Copyright ClusterHQ Inc.  See LICENSE file for details.

package archive

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ClusterHQ/flocker-diagnostics/pkg/command"
	"github.com/ClusterHQ/flocker-diagnostics/pkg/logexport"
	"github.com/ClusterHQ/flocker-diagnostics/pkg/service"
	"github.com/ClusterHQ/flocker-diagnostics/pkg/version"
)

// namePrefix starts every archive name this tool produces. Support tooling
// keys off it, so it is not configurable.
const namePrefix = "clusterhq_flocker_logs_"

const osReleasePath = "/etc/os-release"

// Builder stages host diagnostics into a directory and packages the
// result as a single uncompressed tar archive. The archive name is fixed
// at construction time from the hostname and the current epoch seconds;
// two builders constructed in the same second on the same host would
// collide, which Create surfaces as a staging directory error.
type Builder struct {
	services  service.Manager
	logs      logexport.Exporter
	runner    command.Runner
	log       *slog.Logger
	version   string
	targetDir string
	osRelease string
	uname     func() (string, error)
	suffix    string
}

// Option adjusts a Builder at construction.
type Option func(*Builder)

// WithRunner substitutes the runner used for docker collection.
func WithRunner(runner command.Runner) Option {
	return func(b *Builder) { b.runner = runner }
}

// WithTargetDir places the staging directory and the final archive under
// dir instead of the current directory.
func WithTargetDir(dir string) Option {
	return func(b *Builder) { b.targetDir = dir }
}

// WithVersion overrides the Flocker version recorded in the archive.
func WithVersion(v string) Option {
	return func(b *Builder) { b.version = v }
}

// WithLogger attaches a logger carrying caller context such as a run id.
func WithLogger(log *slog.Logger) Option {
	return func(b *Builder) { b.log = log }
}

// WithOSReleasePath reads the OS identity from an alternate file.
func WithOSReleasePath(path string) Option {
	return func(b *Builder) { b.osRelease = path }
}

// NewBuilder returns a builder collecting through the given service
// manager and log exporter. The archive name, including its timestamp, is
// decided here rather than in Create.
func NewBuilder(services service.Manager, logs logexport.Exporter, opts ...Option) (*Builder, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("resolve hostname: %w", err)
	}

	b := &Builder{
		services:  services,
		logs:      logs,
		runner:    command.ExecRunner{},
		log:       slog.Default(),
		version:   version.Version,
		targetDir: ".",
		osRelease: osReleasePath,
		uname:     unameLine,
		suffix:    fmt.Sprintf("%s_%d", hostname, time.Now().Unix()),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Suffix returns the hostname_timestamp part of the archive name.
func (b *Builder) Suffix() string { return b.suffix }

// ArchiveName returns the name of the archive Create will produce, without
// the .tar extension. It is also the name of the staging directory and of
// the single top-level directory inside the archive.
func (b *Builder) ArchiveName() string { return namePrefix + b.suffix }

// Create collects diagnostics into a staging directory, packages them as
// <target>/<archive-name>.tar and returns the archive's absolute path.
//
// The staging directory is removed whether or not collection succeeds. A
// collection failure wins over a cleanup failure, which is then only
// logged; a cleanup failure after successful collection is itself fatal,
// because it leaves uncompressed logs on a host that may be short on disk.
func (b *Builder) Create(ctx context.Context) (string, error) {
	staging := filepath.Join(b.targetDir, b.ArchiveName())
	if err := os.Mkdir(staging, 0o755); err != nil {
		return "", fmt.Errorf("create staging directory: %w", err)
	}

	archivePath, err := b.collect(ctx, staging)
	if rmErr := os.RemoveAll(staging); rmErr != nil {
		if err == nil {
			return "", fmt.Errorf("remove staging directory: %w", rmErr)
		}
		b.log.Warn("staging directory not removed",
			slog.String("dir", staging),
			slog.String("error", rmErr.Error()))
	}
	if err != nil {
		return "", err
	}
	return archivePath, nil
}

// collect runs every collection step in order, failing fast, then packs
// the staging directory. Collection is deliberately sequential: the tool
// runs on hosts that are already in trouble, and an ordered, bounded
// sequence of commands is easier to reason about from the outside.
func (b *Builder) collect(ctx context.Context, staging string) (string, error) {
	start := time.Now()

	if err := b.writeVersion(staging); err != nil {
		return "", err
	}

	flocker, err := b.services.Flocker(ctx)
	if err != nil {
		return "", fmt.Errorf("list flocker services: %w", err)
	}
	for _, svc := range flocker {
		b.log.Debug("exporting service logs", slog.String("service", svc.Name))
		if err := b.logs.ExportService(ctx, svc.Name, staging); err != nil {
			return "", fmt.Errorf("export %s logs: %w", svc.Name, err)
		}
	}
	if err := b.logs.ExportSystem(ctx, staging); err != nil {
		return "", fmt.Errorf("export system log: %w", err)
	}

	if err := b.writeServiceStatus(ctx, staging); err != nil {
		return "", err
	}
	if err := b.commandToFile(ctx, staging, "docker-version", "docker", "version"); err != nil {
		return "", err
	}
	if err := b.commandToFile(ctx, staging, "docker-info", "docker", "info"); err != nil {
		return "", err
	}
	if err := b.writeUname(staging); err != nil {
		return "", err
	}
	if err := b.writeOSRelease(staging); err != nil {
		return "", err
	}

	archivePath, err := b.pack(staging)
	if err != nil {
		return "", err
	}
	b.log.Info("archive created",
		slog.String("path", archivePath),
		slog.Int("services", len(flocker)),
		slog.Duration("elapsed", time.Since(start)))
	return archivePath, nil
}

// writeVersion records the Flocker version as a single line.
func (b *Builder) writeVersion(staging string) error {
	path := filepath.Join(staging, "flocker-version")
	if err := os.WriteFile(path, []byte(b.version+"\n"), 0o644); err != nil {
		return fmt.Errorf("write flocker-version: %w", err)
	}
	return nil
}

// writeServiceStatus records every service the init system knows about,
// one "name status" line per service, not just the Flocker ones. Support
// regularly needs to see what else runs on the host.
func (b *Builder) writeServiceStatus(ctx context.Context, staging string) (err error) {
	all, err := b.services.Services(ctx)
	if err != nil {
		return fmt.Errorf("list services: %w", err)
	}

	f, err := os.Create(filepath.Join(staging, "service-status"))
	if err != nil {
		return fmt.Errorf("write service-status: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("write service-status: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, record := range all {
		fmt.Fprintf(w, "%s %s\n", record.Name, record.Status)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write service-status: %w", err)
	}
	return nil
}

// commandToFile streams a command's stdout into a staging file.
func (b *Builder) commandToFile(ctx context.Context, staging, name, cmd string, args ...string) (err error) {
	f, err := os.Create(filepath.Join(staging, name))
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("write %s: %w", name, cerr)
		}
	}()

	if err := b.runner.Run(ctx, f, cmd, args...); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// writeUname records the kernel identity as a single space-joined line,
// with no trailing newline.
func (b *Builder) writeUname(staging string) error {
	line, err := b.uname()
	if err != nil {
		return fmt.Errorf("uname: %w", err)
	}
	if err := os.WriteFile(filepath.Join(staging, "uname"), []byte(line), 0o644); err != nil {
		return fmt.Errorf("write uname: %w", err)
	}
	return nil
}

// writeOSRelease copies the os-release file byte for byte. Unlike log
// sources, a missing os-release is fatal: every supported distribution
// ships one, so its absence means the probe and the host disagree.
func (b *Builder) writeOSRelease(staging string) error {
	data, err := os.ReadFile(b.osRelease)
	if err != nil {
		return fmt.Errorf("read os-release: %w", err)
	}
	if err := os.WriteFile(filepath.Join(staging, "os-release"), data, 0o644); err != nil {
		return fmt.Errorf("write os-release: %w", err)
	}
	return nil
}

// pack writes the staging directory into <target>/<archive-name>.tar and
// returns the archive's absolute path.
func (b *Builder) pack(staging string) (string, error) {
	archivePath := staging + ".tar"
	if err := writeTar(staging, archivePath); err != nil {
		return "", err
	}
	abs, err := filepath.Abs(archivePath)
	if err != nil {
		return "", fmt.Errorf("resolve archive path: %w", err)
	}
	return abs, nil
}
