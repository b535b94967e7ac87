package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/bignum/numeral"
)

func newConvertCmd(a *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "convert <number> [--from BASE] [--to BASE]",
		Short: "Converts an integer between numeral systems.",
		Long: `Converts an integer between numeral systems.

A base is either a radix from 2 to 62 or the name of an alphabet listed by the
systems command. Radixes up to 36 read digits in either case.`,
		Example:               "bignum convert 255 --to 16\nbignum convert 7fffffffffffffff --from 16 --to 62",
		DisableFlagsInUseLine: true,
		Args:                  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.conv.Convert(args[0], numeral.Base(from), numeral.Base(to))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "10", "source numeral system")
	cmd.Flags().StringVar(&to, "to", "16", "target numeral system")

	return cmd
}
