package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebcase/bignum/decimal"
	"github.com/calebcase/bignum/numeral"
)

// operation runs one calc operation on n. Operands after the first are in
// args.
type operation struct {
	args int
	run  func(n *decimal.Number, args []string) (string, error)
}

func binary(f func(n *decimal.Number, o decimal.Operand) (*decimal.Number, error)) operation {
	return operation{
		args: 1,
		run: func(n *decimal.Number, args []string) (string, error) {
			n, err := f(n, decimal.String(args[0]))
			if err != nil {
				return "", err
			}

			return n.String(), nil
		},
	}
}

func unary(f func(n *decimal.Number) (*decimal.Number, error)) operation {
	return operation{
		run: func(n *decimal.Number, _ []string) (string, error) {
			n, err := f(n)
			if err != nil {
				return "", err
			}

			return n.String(), nil
		},
	}
}

func shift(f func(n *decimal.Number, bits int) *decimal.Number) operation {
	return operation{
		args: 1,
		run: func(n *decimal.Number, args []string) (string, error) {
			bits, err := strconv.Atoi(args[0])
			if err != nil {
				return "", Error.New("invalid bit count %q", args[0])
			}

			return f(n, bits).String(), nil
		},
	}
}

func infallible(f func(n *decimal.Number) *decimal.Number) func(n *decimal.Number) (*decimal.Number, error) {
	return func(n *decimal.Number) (*decimal.Number, error) {
		return f(n), nil
	}
}

func infallibleBinary(f func(n *decimal.Number, o decimal.Operand) *decimal.Number) func(n *decimal.Number, o decimal.Operand) (*decimal.Number, error) {
	return func(n *decimal.Number, o decimal.Operand) (*decimal.Number, error) {
		return f(n, o), nil
	}
}

func roundOperation(mode *string) operation {
	return operation{
		args: 1,
		run: func(n *decimal.Number, args []string) (string, error) {
			precision, err := strconv.Atoi(args[0])
			if err != nil {
				return "", Error.New("invalid precision %q", args[0])
			}

			m, err := parseRoundMode(*mode)
			if err != nil {
				return "", err
			}

			return n.Round(precision, m).String(), nil
		},
	}
}

func parseRoundMode(s string) (decimal.RoundMode, error) {
	for _, m := range []decimal.RoundMode{decimal.RoundHalfUp, decimal.RoundHalfDown, decimal.RoundCut} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}

	return 0, Error.New("unknown round mode %q", s)
}

func operations(mode *string) map[string]operation {
	return map[string]operation{
		"add": binary(infallibleBinary((*decimal.Number).Add)),
		"sub": binary(infallibleBinary((*decimal.Number).Sub)),
		"mul": binary(infallibleBinary((*decimal.Number).Mul)),
		"div": binary((*decimal.Number).Div),
		"mod": binary((*decimal.Number).Mod),
		"pow": binary((*decimal.Number).Pow),
		"powmod": {
			args: 2,
			run: func(n *decimal.Number, args []string) (string, error) {
				n, err := n.PowMod(decimal.String(args[0]), decimal.String(args[1]))
				if err != nil {
					return "", err
				}

				return n.String(), nil
			},
		},
		"sqrt":  unary((*decimal.Number).Sqrt),
		"floor": unary(infallible((*decimal.Number).Floor)),
		"ceil":  unary(infallible((*decimal.Number).Ceil)),
		"abs":   unary(infallible((*decimal.Number).Abs)),
		"neg":   unary(infallible((*decimal.Number).Neg)),
		"round": roundOperation(mode),
		"cmp": {
			args: 1,
			run: func(n *decimal.Number, args []string) (string, error) {
				return strconv.Itoa(n.Cmp(decimal.String(args[0]))), nil
			},
		},
		"shl": shift((*decimal.Number).ShiftLeft),
		"shr": shift((*decimal.Number).ShiftRight),
		"base": {
			args: 1,
			run: func(n *decimal.Number, args []string) (string, error) {
				return n.ConvertToBase(numeral.Base(args[0]))
			},
		},
	}
}

func newCalcCmd(a *app) *cobra.Command {
	var mode string

	ops := operations(&mode)

	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}

	sort.Strings(names)

	cmd := &cobra.Command{
		Use:   "calc <op> <x> [y] [z] [--scale N] [--mode MODE]",
		Short: "Runs a decimal operation.",
		Long: fmt.Sprintf(`Runs a decimal operation and prints the result.

Operations: %s.

Results are truncated to the scale. round takes the precision as y and the
rounding mode from --mode (half_up, half_down or cut). shl and shr take a bit
count, base takes a numeral system and cmp prints -1, 0 or 1.`, strings.Join(names, ", ")),
		Example:               "bignum calc div 1 3 --scale 5\nbignum calc round 2.345 2 --mode half_down",
		DisableFlagsInUseLine: true,
		Args:                  cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := ops[args[0]]
			if !ok {
				return Error.New("unknown operation %q", args[0])
			}

			rest := args[2:]
			if len(rest) != op.args {
				return Error.New("%s takes %d operands, got %d", args[0], op.args+1, len(rest)+1)
			}

			n := a.ctx.New(decimal.String(args[1]))

			out, err := op.run(n, rest)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}

	cmd.Flags().StringVar(&mode, "mode", decimal.RoundHalfUp.String(), "rounding mode for round")

	return cmd
}
