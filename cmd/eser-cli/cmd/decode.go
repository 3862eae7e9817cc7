package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"

	"eser/binser"
	"eser/cli"
	"eser/log"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <types> [hex]",
	Short: "Decodes a byte sequence against a type list.",
	Long: `Decodes a byte sequence against a comma-separated type list, for example:

  eser-cli decode uint16,int8,float32 d204fb00006040

When the hex argument is omitted, raw bytes are read from stdin:

  eser-cli encode uint16:1234 --format raw | eser-cli decode uint16`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.WithModule("decode")
		cfg := cli.GetConfig(cmd)

		types, err := cli.ParseTypeList(args[0])
		if err != nil {
			return err
		}

		var data []byte
		if len(args) == 2 {
			data, err = hex.DecodeString(args[1])
			if err != nil {
				return errors.Wrap(err, "error decoding hex input")
			}
		} else {
			if isatty.IsTerminal(os.Stdin.Fd()) {
				return errors.New("no input: pass a hex argument or pipe raw bytes to stdin")
			}
			data, err = ioutil.ReadAll(io.LimitReader(os.Stdin, int64(cfg.Decode.MaxInputBytes)))
			if err != nil {
				return errors.Wrap(err, "error reading stdin")
			}
		}

		strict, _ := cmd.Flags().GetBool(cli.FlagStrict)
		strict = strict || cfg.Decode.Strict
		var d *binser.Deserializer
		if strict {
			d, err = binser.DeserializeStrict(data)
		} else {
			d, err = binser.Deserialize(data)
		}
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Index", "Type", "Size", "Value"})
		for i, typ := range types {
			size, err := binser.SizeOfType(typ)
			if err != nil {
				return err
			}
			target := newTarget(typ)
			if err := d.To(target); err != nil {
				return err
			}
			table.Append([]string{
				strconv.Itoa(i),
				typ.String(),
				strconv.Itoa(size),
				fmt.Sprintf("%v", targetValue(target)),
			})
		}
		table.Render()

		if remaining := d.Remaining(); remaining > 0 {
			logger.Warn("trailing bytes left undecoded", "bytes", remaining)
		}
		return nil
	},
}

func init() {
	decodeCmd.Flags().Bool(cli.FlagStrict, false, "Fail on truncated input instead of decoding zero values.")
	rootCmd.AddCommand(decodeCmd)
}
