package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// ContentHash returns the hex-encoded SHA-256 digest of data.
//
// It is the content address of a snapshot file and doubles as its ETag:
// two snapshots with identical bytes always share a hash.
//
// Example usage:
//
//	etag := utils.ContentHash(snapshotBytes)
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FileContentHash streams the file at path through SHA-256 and returns the
// hex digest, matching [ContentHash] of the file bytes.
func FileContentHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err = io.Copy(h, f); err != nil {
		return "", fmt.Errorf("error hashing file %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
