package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newIntCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "int <add|sub> <x> <y> [--strategy NAME]",
		Short: "Adds or subtracts integers with the selected backend.",
		Long: `Adds or subtracts base 10 integers of any length.

The backend is chosen with --strategy: decimal (shopspring/decimal), bigint
(math/big) or pure (byte arithmetic on binary blocks). auto picks decimal.`,
		Example:               "bignum int add 18446744073709551615 1 --strategy pure",
		DisableFlagsInUseLine: true,
		Args:                  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var out string

			switch args[0] {
			case "add":
				out, err = a.math.Add(args[1], args[2])
			case "sub":
				out, err = a.math.Subtract(args[1], args[2])
			default:
				return Error.New("unknown operation %q", args[0])
			}

			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}

	return cmd
}
