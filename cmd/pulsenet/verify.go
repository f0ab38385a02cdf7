package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/maisem/pulsenet"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <sample>...",
	Short: "Check the pulse product of sample files against their want= line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		failed := 0
		for _, path := range args {
			ok, err := a.verify(path)
			if err != nil {
				return err
			}
			if !ok {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d samples failed", failed, len(args))
		}
		return nil
	},
}

func (a *app) verify(path string) (bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	s, ok := pulsenet.ParseSample(string(b))
	if !ok {
		return false, fmt.Errorf("%s: no want= line", path)
	}
	want, err := strconv.Atoi(s.Want)
	if err != nil {
		return false, fmt.Errorf("%s: bad want %q: %w", path, s.Want, err)
	}
	n, err := a.build(path, s.Lines())
	if err != nil {
		return false, err
	}
	got := n.PulseProduct(a.cfg.Presses)
	if got != want {
		a.printf("%s: %d %s; want %d\n", path, got, a.bad("❌"), want)
		return false, nil
	}
	a.printf("%s: %d %s\n", path, got, a.ok("✅"))
	return true, nil
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
