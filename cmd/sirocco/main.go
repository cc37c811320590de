// Command sirocco unrolls a cyclic, parameterized workflow description into
// a concrete dependency graph and reports on it.
package main

import (
	"fmt"
	"os"

	"github.com/agoscinski/Sirocco/app"
)

func main() {
	if err := app.New().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "sirocco: %v\n", err)
		os.Exit(1)
	}
}
