// Command bignum converts numbers between numeral systems and runs arbitrary
// precision decimal arithmetic from the command line.
package main

import (
	"os"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
