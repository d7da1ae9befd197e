// Command atpgsh is a non-interactive CLI over the engine package: one
// subcommand per spec §6 verb, each a thin wrapper that loads the
// circuit named by --netlist and calls the matching engine.Engine
// method. The original's interactive REPL chrome (banner, HELP text,
// shell delegation) is intentionally not reproduced here.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	netlistPath string
	configPath  string
)

var rootCmd = &cobra.Command{
	Use:   "atpgsh",
	Short: "ATPG and fault-simulation engine for combinational gate-level netlists",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&netlistPath, "netlist", "n", "", "path to a netlist file in the ISCAS self format (required)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML engine config file (optional)")

	rootCmd.AddCommand(
		readCmd,
		pcCmd,
		levCmd,
		logicsimCmd,
		rflCmd,
		pfsCmd,
		dfsCmd,
		rtgCmd,
		podemCmd,
		dalgCmd,
		atpgDetCmd,
		atpgCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
