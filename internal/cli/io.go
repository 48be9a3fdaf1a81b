package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"txpad"
	"txpad/internal/log"

	"golang.org/x/term"
)

// setupLogging enables debug output on stderr for verbose runs. The
// default stays the null logger.
func setupLogging(verbose bool) {
	if verbose {
		log.SetLogger(log.NewSimpleLogger(os.Stderr, log.LevelDebug))
	}
}

// newScheme builds the padding scheme for a command invocation. An empty
// seed selects crypto/rand; otherwise the hex-decoded seed drives a
// deterministic source, which makes the output reproducible but
// predictable.
func newScheme(blockSize int, seed string) (*txpad.Scheme, error) {
	if seed == "" {
		return txpad.New(blockSize)
	}
	raw, err := hex.DecodeString(seed)
	if err != nil {
		return nil, fmt.Errorf("invalid --seed: %w", err)
	}
	log.Warn("deterministic seed in use; padding is reproducible, not unlinkable")
	return txpad.NewWithRandom(blockSize, txpad.NewDeterministicReader(raw))
}

// readInput reads the whole input; "-" means stdin.
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

// writeOutput writes data; "-" means stdout. Padded output is binary, so
// raw bytes are refused when stdout is a terminal unless force is set.
func writeOutput(path string, data []byte, force bool) error {
	if path == "-" {
		if !force && term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write binary data to a terminal (redirect the output or pass --force)")
		}
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
