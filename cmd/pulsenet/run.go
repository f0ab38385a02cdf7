package main

import (
	"github.com/spf13/cobra"

	"github.com/maisem/pulsenet"
	"github.com/maisem/pulsenet/internal/metrics"
)

var runCmd = &cobra.Command{
	Use:   "run <input>",
	Short: "Print the pulse product and the convergence press for a network",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		var extra []pulsenet.Option
		var mc *metrics.Collector
		if a.cfg.MetricsFile != "" {
			mc = metrics.New()
			extra = append(extra, pulsenet.WithHooks(mc.Hooks()))
		}
		n, err := a.parse(args[0], extra...)
		if err != nil {
			return err
		}

		a.printf("%s %d\n", a.bold("part 1:"), n.PulseProduct(a.cfg.Presses))
		if press, ok := n.Converge(a.cfg.Limit); ok {
			a.printf("%s %d\n", a.bold("part 2:"), press)
		} else {
			a.printf("%s %s\n", a.bold("part 2:"), a.bad("not found"))
		}

		if mc != nil {
			if err := mc.WriteFile(a.cfg.MetricsFile); err != nil {
				return err
			}
			a.logger.Info("wrote metrics", "path", a.cfg.MetricsFile)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
