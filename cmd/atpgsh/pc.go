package main

import (
	"os"

	"github.com/spf13/cobra"
)

var pcCmd = &cobra.Command{
	Use:   "pc",
	Short: "print circuit structure (id, kind, fanin, fanout, level)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		return e.PrintCircuit(os.Stdout)
	},
}
