// Command pulsesim runs pulse propagation simulations.
//
// Usage:
//
//	pulsesim count input.txt
//	pulsesim cycle --watch ln,dr,zx,vn input.txt
//	pulsesim trace --presses 4 input.txt
//	pulsesim inspect input.txt
//
package main

import (
	"os"

	"github.com/db47h/pulsesim/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:], os.Stdout, os.Stderr))
}
