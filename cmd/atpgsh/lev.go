package main

import (
	"github.com/spf13/cobra"
)

var levCmd = &cobra.Command{
	Use:   "lev [out-file]",
	Short: "levelize the circuit and print a per-node level summary",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		w, closeFn, err := outputWriter(args)
		if err != nil {
			return err
		}
		defer closeFn()
		return e.Lev(w)
	},
}
