package main

import (
	"github.com/spf13/cobra"
)

var rflCmd = &cobra.Command{
	Use:   "rfl [out-file]",
	Short: "synthesize the checkpoint-theorem fault list",
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
		return e.Rfl(w)
	},
}
