package cmd

import (
	"fmt"
	"os"

	"eser/cli"
	"eser/log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "eser-cli",
	Short: "Command-line interface for the eser binary codec.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.CalledAs() == "init" {
			return nil
		}
		cfg := cli.GetConfig(cmd)
		level, err := log.NewLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// outputFormat resolves the output format, letting the flag override the
// configured default.
func outputFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString(cli.FlagFormat)
	if format != "" {
		return format
	}
	return cli.GetConfig(cmd).Encode.Format
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, "~/.eser-cli", "Home directory for the CLI's configuration.")
	rootCmd.PersistentFlags().String(cli.FlagFormat, "", "Output format (hex or raw). Overrides the configured default.")
}
