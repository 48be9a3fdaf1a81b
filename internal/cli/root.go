// Package cli implements the txpad command line interface: a pad command
// that applies the random-prefix / zero-tail transform to a file or
// stream, and an unpad command that reverses it.
package cli

import (
	"github.com/spf13/cobra"
)

// Version is set by main.go
var Version = "dev"

// rootCmd is the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "txpad",
	Short: "Reversible random-prefix message padding",
	Long: `txpad pads a message to a multiple of a block size by prepending random
bytes and appending a run of zeros, and reverses the transform exactly.
The first padded byte encodes the pad length, so the padded bytes alone
are enough to recover the message.

The random prefix keeps block-aligned ciphertexts and frames from starting
with a fixed pattern. Padding requires the whole message up front; there
is no streaming mode.`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the CLI application.
func Execute(version string) error {
	Version = version
	rootCmd.Version = version
	return rootCmd.Execute()
}
