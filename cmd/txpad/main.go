// txpad pads messages with a random prefix and a zero tail so their
// length becomes a multiple of a block size, and reverses the transform
// exactly. See the txpad package for the scheme itself.
package main

import (
	"fmt"
	"os"

	"txpad/internal/cli"
)

// version is reported by --version.
const version = "v1.0.0"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, "txpad:", err)
		os.Exit(1)
	}
}
