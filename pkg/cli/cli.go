// Copyright ClusterHQ Inc.  See LICENSE file for details.

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/util"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/ClusterHQ/flocker-diagnostics/pkg/archive"
	"github.com/ClusterHQ/flocker-diagnostics/pkg/command"
	"github.com/ClusterHQ/flocker-diagnostics/pkg/logging"
	"github.com/ClusterHQ/flocker-diagnostics/pkg/platform"
	"github.com/ClusterHQ/flocker-diagnostics/pkg/serializer"
	"github.com/ClusterHQ/flocker-diagnostics/pkg/version"
)

const name = "flocker-diagnostics"

// New builds the root command. Collection is the root action rather than
// a subcommand; this tool does exactly one thing.
func New() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Collect Flocker diagnostics from this machine into a tar archive",
		Version:               version.String(),
		EnableShellCompletion: true,
		Description: `Gather the logs and host state Flocker support asks for and package
them as a single uncompressed tar archive in the output directory:

  - startup and application logs of every Flocker service
  - the full system log
  - status of every service known to the init system
  - docker version and info
  - Flocker version, uname and os-release

Run as root on the affected node. On success the archive path is printed
on stdout; all diagnostics of the run itself go to stderr.

# Examples

Collect into the current directory:

  flocker-diagnostics

Collect into /tmp and emit a JSON report:

  flocker-diagnostics --output-dir /tmp --format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"o"},
				Usage:   "Directory that receives the archive",
				Sources: cli.EnvVars("FLOCKER_DIAGNOSTICS_OUTPUT_DIR"),
				Value:   ".",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Result format: text, json or yaml",
				Sources: cli.EnvVars("FLOCKER_DIAGNOSTICS_FORMAT"),
				Value:   string(serializer.FormatText),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.LevelEnvVar),
				Value:   "info",
			},
		},
		Action: collect,
	}
}

func collect(ctx context.Context, cmd *cli.Command) error {
	// Validate output format before touching the system
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return fmt.Errorf("unknown output format: %q (supported: %v)", outFormat, serializer.SupportedFormats())
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version.Version, cmd.String("log-level"))
	log := slog.With(slog.String("run_id", uuid.New().String()))

	dist, err := platform.CurrentDistribution(ctx)
	if err != nil {
		return err
	}
	log.Info("detected distribution",
		slog.String("distribution", dist.Label()),
		slog.String("init", dist.Init.String()),
		slog.String("logs", dist.Logs.String()))
	if dist.Init == platform.InitSystemd && !util.IsRunningSystemd() {
		log.Warn("systemd does not appear to be running; collection will likely fail")
	}

	runner := command.ExecRunner{}
	builder, err := archive.NewBuilder(
		dist.ServiceManager(runner),
		dist.LogExporter(runner),
		archive.WithRunner(runner),
		archive.WithTargetDir(cmd.String("output-dir")),
		archive.WithLogger(log),
	)
	if err != nil {
		return err
	}

	start := time.Now()
	path, err := builder.Create(ctx)
	if err != nil {
		return err
	}

	report, err := newReport(path, dist, time.Since(start))
	if err != nil {
		return err
	}
	return serializer.NewWriter(outFormat, os.Stdout).Serialize(report)
}

// Execute runs the CLI. This is called by main.main(); any error has
// already been reported on stderr when the process exits non-zero.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM so a half-finished staging directory still
	// gets cleaned up
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, stopping collection...")
		cancel()
	}()

	if err := New().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
