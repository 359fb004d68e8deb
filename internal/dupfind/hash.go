package dupfind

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// hashBufferSize is the chunk size used when streaming file contents
// into the digest.
const hashBufferSize = 8192

// HashFile computes the SHA-256 digest of the file at path, reading it
// in fixed-size chunks, and returns it as a lowercase hex string
// (64 characters).
//
// Any open or read failure is returned as an error; callers exclude
// such files from duplicate grouping rather than treating the digest
// as empty.
func HashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening file %q: %w", path, err)
	}
	defer file.Close()

	hasher := sha256.New()
	buffer := make([]byte, hashBufferSize)

	for {
		n, err := file.Read(buffer)
		if n > 0 {
			// A short final read is folded in exactly once.
			hasher.Write(buffer[:n])
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return "", fmt.Errorf("reading file %q: %w", path, err)
		}
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
