// Package ksum is the file-hashing runner behind the kangaroo-sum command.
package ksum

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gordian-engine/kangaroo"
)

// Config controls a single hashing run.
type Config struct {
	// Files to hash, in order.
	// When empty, Stdin is hashed instead.
	Files []string

	// OutputLength is the number of digest bytes per input.
	// Zero is legal and produces empty digests;
	// negative values are rejected.
	OutputLength int

	// Customization is the optional KangarooTwelve customization string,
	// shared by every input in the run.
	Customization []byte

	// Stdin is the input source when Files is empty.
	Stdin io.Reader
}

// Run hashes every configured input and writes one "name: hex" line
// per input to out.
//
// An unreadable file is logged and reported inline,
// and the run continues with the remaining files;
// Run returns an error afterward if any input failed.
func Run(log *slog.Logger, cfg Config, out io.Writer) error {
	if cfg.OutputLength < 0 {
		return fmt.Errorf("output length must be non-negative (got %d)", cfg.OutputLength)
	}

	// One hasher for the whole run:
	// FinalizeReset keeps the customization across inputs.
	h := kangaroo.NewWithCustomization(cfg.Customization)

	if len(cfg.Files) == 0 {
		sum, err := hashReader(h, cfg.Stdin, cfg.OutputLength)
		if err != nil {
			return fmt.Errorf("failed to hash standard input: %w", err)
		}
		fmt.Fprintf(out, "-: %s\n", sum)
		return nil
	}

	failed := 0
	for _, name := range cfg.Files {
		sum, err := hashFile(h, name, cfg.OutputLength)
		if err != nil {
			log.Warn(
				"Failed to hash file",
				"file", name,
				"err", err,
			)
			fmt.Fprintf(out, "%s: %v\n", name, err)
			failed++
			continue
		}

		log.Debug("Hashed file", "file", name)
		fmt.Fprintf(out, "%s: %s\n", name, sum)
	}

	if failed > 0 {
		return fmt.Errorf("failed to hash %d of %d files", failed, len(cfg.Files))
	}
	return nil
}

func hashFile(h *kangaroo.Hasher, name string, outLen int) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return hashReader(h, f, outLen)
}

func hashReader(h *kangaroo.Hasher, in io.Reader, outLen int) (string, error) {
	// A prior input may have failed partway through a copy,
	// so clear any leftover absorbed bytes first.
	h.Reset()

	if _, err := io.Copy(h, in); err != nil {
		return "", err
	}

	out := make([]byte, outLen)
	_, _ = h.FinalizeReset().Read(out)

	return hex.EncodeToString(out), nil
}
