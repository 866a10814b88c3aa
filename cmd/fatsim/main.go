// Package main provides the CLI entry point for fatsim.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/user/fatsim/pkg/adapters/ggrenderer"
	"github.com/user/fatsim/pkg/adapters/logger"
	"github.com/user/fatsim/pkg/adapters/osstorage"
	"github.com/user/fatsim/pkg/clustermap"
	"github.com/user/fatsim/pkg/config"
	"github.com/user/fatsim/pkg/fat"
	"github.com/user/fatsim/pkg/ports"
	"github.com/user/fatsim/pkg/report"
	"github.com/user/fatsim/pkg/session"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, l10n.F("Error: %s", err))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	storage := osstorage.New()

	return &cli.App{
		Name:  "fatsim",
		Usage: l10n.T("Simulate cluster allocation on a FAT-style filesystem"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    l10n.T("YAML configuration file"),
				Category: l10n.T("Configuration"),
			},
			&cli.IntFlag{
				Name:     "max-files",
				Usage:    l10n.T("Number of directory slots"),
				Category: l10n.T("Geometry"),
			},
			&cli.IntFlag{
				Name:     "clusters",
				Usage:    l10n.T("Number of clusters in the table"),
				Category: l10n.T("Geometry"),
			},
			&cli.IntFlag{
				Name:     "cluster-size",
				Usage:    l10n.T("Bytes per cluster"),
				Category: l10n.T("Geometry"),
			},
			&cli.StringFlag{
				Name:     "format",
				Aliases:  []string{"f"},
				Value:    "text",
				Usage:    l10n.T("Output format (text or yaml)"),
				Category: l10n.T("Output"),
			},
			&cli.StringFlag{
				Name:     "log-level",
				Aliases:  []string{"l"},
				Usage:    l10n.T("Log level (debug, info, warn, error)"),
				Category: l10n.T("Logging"),
			},
			&cli.BoolFlag{
				Name:     "quiet",
				Aliases:  []string{"Q"},
				Usage:    l10n.T("Suppress all log output"),
				Category: l10n.T("Logging"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "demo",
				Usage:  l10n.T("Run the four-phase allocation walkthrough"),
				Flags:  []cli.Flag{exportFlag()},
				Action: withEnv(storage, runDemo),
			},
			{
				Name:      "run",
				Usage:     l10n.T("Run the script of a YAML file"),
				ArgsUsage: "[script.yaml]",
				Flags:     []cli.Flag{exportFlag()},
				Action:    withEnv(storage, runScript),
			},
			{
				Name:   "shell",
				Usage:  l10n.T("Start the interactive menu"),
				Action: withEnv(storage, runShell),
			},
			{
				Name:  "render",
				Usage: l10n.T("Draw the cluster table as a PNG image"),
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Required: true,
						Usage:    l10n.T("Output PNG file path"),
					},
				},
				Action: withEnv(storage, runRender),
			},
			{
				Name:  "version",
				Usage: l10n.T("Show version information"),
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, l10n.F("fatsim version %s", version))
					return nil
				},
			},
		},
	}
}

func exportFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "export",
		Usage: l10n.T("Write the final state as YAML to this path"),
	}
}

// env holds everything a command needs, built from config and flags.
type env struct {
	cfg       config.Config
	log       ports.Logger
	storage   ports.Storage
	fs        *fat.FileSystem
	formatter report.Formatter
}

// withEnv builds the env before running action. The run command takes
// its configuration from the script argument when one is given.
func withEnv(storage ports.Storage, action func(*cli.Context, *env) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		path := c.String("config")
		if c.Command.Name == "run" && c.Args().Present() {
			path = c.Args().First()
		}

		e, err := setup(c, storage, path)
		if err != nil {
			return err
		}
		return action(c, e)
	}
}

func setup(c *cli.Context, storage ports.Storage, configPath string) (*env, error) {
	cfg := config.Defaults()
	if configPath != "" {
		exists, err := storage.Exists(configPath)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%s: %s", configPath, l10n.T("file not found"))
		}

		loaded, err := config.Load(storage, configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if c.IsSet("max-files") {
		cfg.MaxFiles = c.Int("max-files")
	}
	if c.IsSet("clusters") {
		cfg.NumClusters = c.Int("clusters")
	}
	if c.IsSet("cluster-size") {
		cfg.ClusterSize = c.Int("cluster-size")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	formatter, err := report.ForName(c.String("format"))
	if err != nil {
		return nil, err
	}

	fs, err := fat.New(cfg.Geometry(), fat.WithLogger(log))
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, log: log, storage: storage, fs: fs, formatter: formatter}, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func (e *env) run(steps []session.Step, out io.Writer, exportPath string) error {
	ctx, cancel := signalContext()
	defer cancel()

	s := session.New(e.fs, e.formatter, out, e.log)
	result, err := s.Run(ctx, steps)
	if err != nil {
		return err
	}
	if n := len(result.Failures); n > 0 {
		e.log.Info("%d of %d steps were rejected", n, result.Steps)
	}

	if exportPath != "" {
		w := report.NewWriter(report.NewYAMLFormatter(), e.storage)
		if err := w.Write(exportPath, e.fs.Snapshot(), report.ViewAll); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		e.log.Info("State exported to %s", exportPath)
	}
	return nil
}

func runDemo(c *cli.Context, e *env) error {
	return e.run(session.DemoScript(), c.App.Writer, c.String("export"))
}

func runScript(c *cli.Context, e *env) error {
	if len(e.cfg.Script) == 0 {
		return cli.Exit(l10n.T("the script is empty"), 2)
	}

	steps, err := e.cfg.Steps()
	if err != nil {
		return err
	}
	return e.run(steps, c.App.Writer, c.String("export"))
}

func runShell(c *cli.Context, e *env) error {
	s := session.New(e.fs, e.formatter, c.App.Writer, e.log)

	prompt := false
	if f, ok := c.App.Reader.(*os.File); ok {
		prompt = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return session.NewShell(s, c.App.Reader, c.App.Writer, prompt).Run()
}

func runRender(c *cli.Context, e *env) error {
	steps, err := e.cfg.Steps()
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		steps = session.DemoFill()
	}
	if err := e.run(steps, io.Discard, ""); err != nil {
		return err
	}

	painter := clustermap.New(ggrenderer.New(), e.log, e.cfg.Render.ToStyle())
	data, err := painter.RenderPNG(e.fs.Snapshot())
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	output := c.String("output")
	if err := e.storage.WriteFile(output, data); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	e.log.Info("Cluster map saved to %s", output)
	return nil
}
