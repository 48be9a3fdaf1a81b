package cli

import (
	"errors"
	"fmt"

	"txpad/internal/ecc"
	"txpad/internal/log"

	"github.com/spf13/cobra"
)

var unpadCmd = &cobra.Command{
	Use:   "unpad",
	Short: "Recover the original message from padded data",
	Long: `Recover the original message from data produced by txpad pad. The block
size must match the one used when padding; it is not stored in the
output.

Examples:
  # Reverse of: txpad pad -i message.bin -o padded.bin -b 16
  txpad unpad -i padded.bin -o message.bin -b 16

  # Input that was written with --reed-solomon
  txpad unpad -i padded.bin -o message.bin -b 16 --reed-solomon`,
	RunE: runUnpad,
}

// Unpad flags
var (
	unpadInput       string
	unpadOutput      string
	unpadBlockSize   int
	unpadReedSolomon bool
	unpadForce       bool
	unpadVerbose     bool
)

func init() {
	rootCmd.AddCommand(unpadCmd)
	unpadCmd.SilenceErrors = true
	unpadCmd.SilenceUsage = true

	unpadCmd.Flags().StringVarP(&unpadInput, "input", "i", "", "Input file path, or - for stdin")
	unpadCmd.Flags().StringVarP(&unpadOutput, "output", "o", "", "Output file path, or - for stdout")
	unpadCmd.Flags().IntVarP(&unpadBlockSize, "block-size", "b", 16, "Block size used when padding")
	unpadCmd.Flags().BoolVar(&unpadReedSolomon, "reed-solomon", false, "Input carries Reed-Solomon error correction")
	unpadCmd.Flags().BoolVar(&unpadForce, "force", false, "Write binary output even to a terminal")
	unpadCmd.Flags().BoolVarP(&unpadVerbose, "verbose", "v", false, "Log progress to stderr")
}

func runUnpad(cmd *cobra.Command, args []string) error {
	setupLogging(unpadVerbose)

	if unpadInput == "" {
		return errors.New("no input specified (use -i)")
	}
	if unpadOutput == "" {
		return errors.New("no output specified (use -o)")
	}

	scheme, err := newScheme(unpadBlockSize, "")
	if err != nil {
		return err
	}

	data, err := readInput(unpadInput)
	if err != nil {
		return err
	}

	if unpadReedSolomon {
		codec, err := ecc.NewCodec()
		if err != nil {
			return err
		}
		recovered, err := codec.Recover(data)
		if err != nil {
			return fmt.Errorf("error correction failed: %w", err)
		}
		log.Debug("recovered protected data",
			log.Int("encoded_bytes", len(data)),
			log.Int("recovered_bytes", len(recovered)))
		data = recovered
	}

	msg, err := scheme.Unpad(data)
	if err != nil {
		return fmt.Errorf("unpadding %d bytes with block size %d: %w", len(data), unpadBlockSize, err)
	}
	log.Debug("unpadded message",
		log.Int("padded_bytes", len(data)),
		log.Int("message_bytes", len(msg)),
		log.Int("block_size", unpadBlockSize))

	return writeOutput(unpadOutput, msg, unpadForce)
}
