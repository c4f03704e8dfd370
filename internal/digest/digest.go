// Package digest computes transfer fingerprints so a receiver can check
// that a decode reproduced the sender's exact bytes.
package digest

import (
	"encoding/hex"
	"io"

	"golang.org/x/crypto/blake2b"
)

// Size is the fingerprint length in bytes (BLAKE2b-256).
const Size = 32

// Sum returns the hex fingerprint of everything readable from r.
func Sum(r io.Reader) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SumBytes returns the hex fingerprint of b.
func SumBytes(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}
