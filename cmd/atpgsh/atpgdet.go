package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SrikanthGadde/ee658/netlist"
)

var atpgDetCmd = &cobra.Command{
	Use:   "atpg-det <PODEM|DALG>",
	Short: "deterministic ATPG: run one algorithm against every checkpoint fault",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		patterns, rep, err := e.AtpgDet(args[0])
		if err != nil {
			return err
		}

		base := fmt.Sprintf("%s_%s_ATPG", e.CircuitName(), strings.ToUpper(args[0]))
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
		return netlist.WriteCoverageReport(rf, rep)
	},
}
