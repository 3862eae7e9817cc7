package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"eser/binser"
	"eser/cli"
	"eser/log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <type:value>...",
	Short: "Encodes values into the compact little-endian wire format.",
	Long: `Encodes values into the compact little-endian wire format.

Values are given as type:value arguments and encoded in argument order,
for example:

  eser-cli encode uint16:1234 int8:-5 float32:3.5 [4]int32:1,2,3,4 cstring:hi`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.WithModule("encode")
		vals := make([]interface{}, 0, len(args))
		for _, arg := range args {
			val, err := cli.ParseValue(arg)
			if err != nil {
				return err
			}
			vals = append(vals, val)
		}

		s := binser.Serialize(vals...)
		size, err := s.Size()
		if err != nil {
			return err
		}
		buf := make([]byte, size)
		n, err := s.To(buf)
		if err != nil {
			return err
		}
		logger.Debug("encoded sequence", "values", len(vals), "bytes", n)

		switch format := outputFormat(cmd); format {
		case "raw":
			_, err = os.Stdout.Write(buf[:n])
			return err
		case "hex":
			fmt.Println(hex.EncodeToString(buf[:n]))
			return nil
		default:
			return errors.Errorf("unknown output format %s", format)
		}
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
