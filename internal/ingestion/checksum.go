package ingestion

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// ChecksumFile computes the xxhash64 digest of an inventory file, letting
// callers detect a re-submitted spreadsheet without re-evaluating it.
func ChecksumFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file for checksum: %w", err)
	}
	defer func() { _ = f.Close() }()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
