package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/history"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/render"
)

// app is the state shared by every command of one invocation.
type app struct {
	// global flags
	cfgPath     string
	logLevel    string
	noColor     bool
	metricsFile string

	cfg     config.Config
	log     *slog.Logger
	metrics *metrics.Metrics

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(in io.Reader, out, errOut io.Writer) (*cobra.Command, *app) {
	a := &app{in: in, out: out, errOut: errOut, metrics: metrics.New()}

	root := &cobra.Command{
		Use:           "gridpath",
		Short:         "Find paths on a grid with BFS, DFS, Dijkstra or A*",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", config.DefaultPath(), "path to the TOML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn (or warning) or error")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile on exit")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newRaceCmd(a))
	root.AddCommand(newHistoryCmd(a))
	root.AddCommand(newConfigCmd(a))

	return root, a
}

// flushMetrics writes the metrics textfile if one was requested. It runs
// after the command so failed searches are counted too.
func (a *app) flushMetrics() error {
	if a.metricsFile == "" || a.log == nil {
		return nil
	}
	if err := a.metrics.WriteTextfile(a.metricsFile); err != nil {
		return err
	}
	a.log.Debug("metrics written", "path", a.metricsFile)

	return nil
}

// setup loads the configuration, applies the global flags and builds the
// logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = config.NormalizeLevel(a.logLevel)
	}
	if a.noColor {
		cfg.NoColor = true
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	a.log.Debug("config loaded", "path", a.cfgPath, "rows", cfg.Rows, "cols", cfg.Cols, "algorithm", cfg.Algorithm)

	return nil
}

// renderer picks plain output when color is off or stdout is not a terminal.
func (a *app) renderer() render.Renderer {
	plain := a.cfg.NoColor
	if f, ok := a.out.(*os.File); ok {
		plain = plain || render.AutoPlain(f)
	} else {
		plain = true
	}

	return render.Renderer{Plain: plain}
}

// openHistory opens the run store. BadgerDB's own logs are forwarded only
// at debug level.
func (a *app) openHistory() (*history.BadgerStore, error) {
	hc := history.DefaultConfig(a.cfg.HistoryPath)
	if a.cfg.SlogLevel() <= slog.LevelDebug {
		hc.Logger = a.log
	}
	st, err := history.Open(hc)
	if err != nil {
		return nil, fmt.Errorf("open history at %s: %w", a.cfg.HistoryPath, err)
	}

	return st, nil
}
