package main

import (
	"os"

	"github.com/spf13/cobra"
)

var logicsimCmd = &cobra.Command{
	Use:   "logicsim <patterns-file> [out-file]",
	Short: "replay a pattern file through the event-driven simulator",
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
		return e.Logicsim(pf, w)
	},
}
