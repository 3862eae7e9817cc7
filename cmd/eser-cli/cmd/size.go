package cmd

import (
	"os"
	"strconv"

	"eser/binser"
	"eser/cli"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var sizeCmd = &cobra.Command{
	Use:   "size <types>",
	Short: "Reports the encoded size of a type list without encoding anything.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		types, err := cli.ParseTypeList(args[0])
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Type", "Size"})
		var total int
		for _, typ := range types {
			size, err := binser.SizeOfType(typ)
			if err != nil {
				return err
			}
			total += size
			table.Append([]string{typ.String(), strconv.Itoa(size)})
		}
		table.SetFooter([]string{"total", strconv.Itoa(total)})
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sizeCmd)
}
