package main

import (
	"os"

	"github.com/spf13/cobra"
)

var dfsCmd = &cobra.Command{
	Use:   "dfs <patterns-file> [out-file]",
	Short: "deductive fault simulation over a pattern set",
	Args:  cobra.RangeArgs(1, 2),
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

		w, closeFn, err := outputWriter(args[1:])
		if err != nil {
			return err
		}
		defer closeFn()
		return e.Dfs(pf, w)
	},
}
