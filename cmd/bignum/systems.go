package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/calebcase/bignum/numeral"
)

func newSystemsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "systems",
		Short: "Lists the named numeral systems.",
		Long: fmt.Sprintf(`Lists the named numeral systems and their digits. Radixes %d to %d are always available.

Names under numeral.systems in the config file are lower cased when loaded.
List a system under numeral.named to keep its name as written.`, numeral.MinRadix, numeral.MaxRadix),
		DisableFlagsInUseLine: true,
		Args:                  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := a.conv.Registry()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)

			for _, name := range registry.Systems() {
				alphabet, err := registry.Lookup(name)
				if err != nil {
					return err
				}

				fmt.Fprintf(tw, "%s\t%d\t%s\n", name, alphabet.Len(), printable(alphabet.Chars()))
			}

			return tw.Flush()
		},
	}

	return cmd
}

// printable quotes chars when it holds spaces or control characters.
func printable(chars string) string {
	if strings.IndexFunc(chars, func(r rune) bool { return r <= ' ' || r >= 0x7f }) >= 0 {
		return strconv.Quote(chars)
	}

	return chars
}
