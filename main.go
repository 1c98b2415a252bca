package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tocin-lang/tocin/cmd"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "tocin [subcommand]",
	Short:        "tocin — the type-checking core of the tocin compiler front end",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.CheckCmd)
}
