package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fxsignal version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("fxsignal", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
