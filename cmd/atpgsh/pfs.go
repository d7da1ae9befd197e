package main

import (
	"os"

	"github.com/spf13/cobra"
)

var pfsCmd = &cobra.Command{
	Use:   "pfs <patterns-file> <faults-file> [out-file]",
	Short: "parallel fault simulation: report faults detected by a pattern set",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		pf, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer pf.Close()
		ff, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer ff.Close()

		w, closeFn, err := outputWriter(args[2:])
		if err != nil {
			return err
		}
		defer closeFn()
		return e.Pfs(pf, ff, w)
	},
}
