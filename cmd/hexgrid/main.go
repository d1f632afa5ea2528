// hexgrid is a command line tool for hexagonal grid coordinates and meshes.
package main

import (
	"os"

	"github.com/Faultbox/hexgrid/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
