package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var rtgCmd = &cobra.Command{
	Use:   "rtg <ntot> <per-batch> <patterns-out> <fc-out>",
	Short: "plain random test generation in batches, with a per-batch coverage trail",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		ntot, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		perBatch, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}

		pOut, err := os.Create(args[2])
		if err != nil {
			return err
		}
		defer pOut.Close()
		fOut, err := os.Create(args[3])
		if err != nil {
			return err
		}
		defer fOut.Close()

		return e.Rtg(ntot, perBatch, pOut, fOut)
	},
}
