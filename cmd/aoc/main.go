// Command aoc runs Advent of Code solutions against their samples and
// puzzle inputs, lists the registered days, and scaffolds new ones.
package main

import (
	"fmt"
	"os"
)

func main() {
	a := newApp()
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "aoc:", err)
		os.Exit(1)
	}
}
