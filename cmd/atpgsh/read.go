package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "load a netlist and report its PI/PO/node counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "circuit %q loaded\n", e.CircuitName())
		return nil
	},
}
