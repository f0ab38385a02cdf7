package main

import (
	"github.com/spf13/cobra"
)

var periodCmd = &cobra.Command{
	Use:   "period <input>",
	Short: "Find when the whole network state first repeats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		n, err := a.parse(args[0])
		if err != nil {
			return err
		}
		c, ok := n.FindCycle(a.cfg.Limit)
		if !ok {
			a.printf("%s %s\n", a.bold("cycle:"), a.bad("not found"))
			return nil
		}
		a.printf("%s start %d, period %d\n", a.bold("cycle:"), c.Start, c.Period)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(periodCmd)
}
