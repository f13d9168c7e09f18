package crypto

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHex is returned when a hex-encoded hash input cannot be decoded.
var ErrInvalidHex = errors.New("invalid hex input")

// Sha512Half returns the first 32 bytes of a sha512 hash of the concatenated parts
func Sha512Half(parts ...[]byte) [32]byte {
	h := sha512.New()
	for _, p := range parts {
		h.Write(p)
	}
	var result [32]byte
	copy(result[:], h.Sum(nil)[:32])
	return result
}

// Sha512HalfHex hashes a hex-encoded message and returns the digest as
// upper-case hex, the form used in every XRPL JSON API.
func Sha512HalfHex(msg string) (string, error) {
	b, err := hex.DecodeString(msg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return HashToHex(Sha512Half(b)), nil
}

// HashToHex renders a 256-bit hash as 64 upper-case hex characters.
func HashToHex(h [32]byte) string {
	return strings.ToUpper(hex.EncodeToString(h[:]))
}

// HexToHash parses exactly 64 hex characters (either case) into a 256-bit hash.
func HexToHash(s string) ([32]byte, error) {
	var out [32]byte
	if len(s) != 64 {
		return out, fmt.Errorf("%w: expected 64 characters, got %d", ErrInvalidHex, len(s))
	}
	if _, err := hex.Decode(out[:], []byte(s)); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return out, nil
}
