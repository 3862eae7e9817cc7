package cmd

import (
	"fmt"

	"eser/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints version information.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.UserAgent)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
