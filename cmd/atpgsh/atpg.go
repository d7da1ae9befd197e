package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SrikanthGadde/ee658/netlist"
)

var atpgCmd = &cobra.Command{
	Use:   "atpg",
	Short: "hybrid ATPG: random batches until coverage gain stalls, then PODEM fallback",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		patterns, reports, rep, err := e.Atpg()
		if err != nil {
			return err
		}

		base := fmt.Sprintf("%s_ATPG", e.CircuitName())
		pf, err := os.Create(base + "_patterns.txt")
		if err != nil {
			return err
		}
		defer pf.Close()
		if err := e.WritePatterns(pf, patterns); err != nil {
			return err
		}

		rf, err := os.Create(base + "_report.txt")
		if err != nil {
			return err
		}
		defer rf.Close()
		if err := netlist.WriteCoverageReport(rf, rep); err != nil {
			return err
		}

		for _, r := range reports {
			fmt.Fprintf(os.Stdout, "%d %.2f\n", r.PatternsSoFar, r.Coverage)
		}
		return nil
	},
}
