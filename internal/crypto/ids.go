package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/decred/dcrd/crypto/ripemd160"
)

// AccountIDSize is the size of an XRPL account ID in bytes.
const AccountIDSize = 20

// PublicKeySize is the size of a serialized secp256k1 or Ed25519 signing key.
const PublicKeySize = 33

// ErrInvalidPublicKey is returned for keys that are not 33 bytes with a known type prefix.
var ErrInvalidPublicKey = errors.New("invalid public key")

// KeyType is the signing algorithm a public key belongs to.
type KeyType int

const (
	KeyTypeUnknown KeyType = iota
	KeyTypeSecp256k1
	KeyTypeEd25519
)

func (kt KeyType) String() string {
	switch kt {
	case KeyTypeSecp256k1:
		return "secp256k1"
	case KeyTypeEd25519:
		return "ed25519"
	default:
		return "unknown"
	}
}

// PublicKeyType reads the key type from the first byte of a 33 byte key:
// 0xED for Ed25519, 0x02 or 0x03 for a compressed secp256k1 point.
func PublicKeyType(pub []byte) KeyType {
	if len(pub) != PublicKeySize {
		return KeyTypeUnknown
	}
	switch pub[0] {
	case 0xED:
		return KeyTypeEd25519
	case 0x02, 0x03:
		return KeyTypeSecp256k1
	default:
		return KeyTypeUnknown
	}
}

// CalcAccountID computes the account ID from a public key.
// The account ID is a 160-bit identifier computed as RIPEMD160(SHA256(publicKey)).
// The entire key, including the 0xED or 0x02/0x03 type prefix, is hashed.
func CalcAccountID(publicKey []byte) [AccountIDSize]byte {
	sha256Hash := sha256.Sum256(publicKey)

	ripemd160Hasher := ripemd160.New()
	ripemd160Hasher.Write(sha256Hash[:])
	ripemd160Hash := ripemd160Hasher.Sum(nil)

	var result [AccountIDSize]byte
	copy(result[:], ripemd160Hash)
	return result
}

// ParsePublicKey decodes a hex signing key and checks its length and type prefix.
func ParsePublicKey(publicKeyHex string) ([]byte, error) {
	pub, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	if len(pub) != PublicKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPublicKey, PublicKeySize, len(pub))
	}
	if PublicKeyType(pub) == KeyTypeUnknown {
		return nil, fmt.Errorf("%w: unknown key type prefix 0x%02X", ErrInvalidPublicKey, pub[0])
	}
	return pub, nil
}
