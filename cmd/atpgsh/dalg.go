package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var dalgCmd = &cobra.Command{
	Use:   "dalg <node> <stuck>",
	Short: "generate a test for one stuck-at fault via the D-algorithm",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		node, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		stuck, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}

		res, err := e.Dalg(node, stuck)
		if err != nil {
			return err
		}
		printAssignment(os.Stdout, e, res.PIs)
		return nil
	},
}
