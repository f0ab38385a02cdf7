package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/maisem/pulsenet"
	"github.com/maisem/pulsenet/internal/config"
	"github.com/maisem/pulsenet/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:           "pulsenet",
	Short:         "pulsenet simulates networks of flip-flop and conjunction modules",
	Long:          `pulsenet reads a module network, presses its button and reports pulse totals and the press that first sends a low pulse to the sink.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagConfig   string
	flagSet      map[string]string
	flagLogLevel string
	flagMetrics  string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringToStringVar(&flagSet, "set", nil, "override a config key (key=value)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagMetrics, "metrics-file", "", "write prometheus metrics to this file")
}

// app is the per-invocation state shared by commands.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	out    *termenv.Output
}

func newApp(cmd *cobra.Command) (*app, error) {
	overrides := map[string]string{}
	for k, v := range flagSet {
		overrides[k] = v
	}
	if flagLogLevel != "" {
		overrides["log_level"] = flagLogLevel
	}
	if flagMetrics != "" {
		overrides["metrics_file"] = flagMetrics
	}
	cfg, err := config.Load(flagConfig, overrides)
	if err != nil {
		return nil, err
	}
	level, _ := logging.ParseLevel(cfg.LogLevel) // validated by Load

	w := cmd.OutOrStdout()
	var opts []termenv.OutputOption
	if !cfg.Color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &app{
		cfg:    cfg,
		logger: logging.NewWriter(cmd.ErrOrStderr(), level),
		out:    termenv.NewOutput(w, opts...),
	}, nil
}

// parse reads and builds the network in the named file.
func (a *app) parse(path string, extra ...pulsenet.Option) (*pulsenet.Network, error) {
	lines, err := pulsenet.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return a.build(path, lines, extra...)
}

func (a *app) build(name string, lines []string, extra ...pulsenet.Option) (*pulsenet.Network, error) {
	opts := append(a.cfg.Options(), pulsenet.WithLogger(a.logger))
	if a.logger.Enabled(context.Background(), slog.LevelDebug) {
		opts = append(opts, pulsenet.WithHooks(a.traceHooks()))
	}
	n, err := pulsenet.Parse(lines, append(opts, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

// traceHooks logs every pulse at debug level.
func (a *app) traceHooks() pulsenet.Hooks {
	return pulsenet.Hooks{
		OnPulse: func(e pulsenet.Event) {
			a.logger.Debug("pulse", "press", e.Press, "from", e.From, "to", e.To, "pulse", e.Pulse)
		},
	}
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *app) ok(s string) termenv.Style {
	return a.out.String(s).Foreground(a.out.Color("2"))
}

func (a *app) bad(s string) termenv.Style {
	return a.out.String(s).Foreground(a.out.Color("1"))
}

func (a *app) bold(s string) termenv.Style {
	return a.out.String(s).Bold()
}
