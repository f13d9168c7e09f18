// Package hashes computes transaction IDs and the transaction, state and
// ledger hashes built from them.
package hashes

import (
	"encoding/hex"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/LeJamon/goXRPLhash/internal/codec"
	crypto "github.com/LeJamon/goXRPLhash/internal/crypto/common"
	"github.com/LeJamon/goXRPLhash/internal/log"
	"github.com/LeJamon/goXRPLhash/internal/protocol"
)

// signatureFields mark a transaction as signed. Presence is enough: pseudo
// transactions and batch inner transactions carry an empty SigningPubKey.
var signatureFields = []string{"TxnSignature", "Signers", "SigningPubKey"}

// Hasher computes hashes of JSON-shaped transactions and ledger entries,
// using a Codec for canonical serialization. A Hasher holds no mutable
// state and may be shared between goroutines.
type Hasher struct {
	codec  codec.Codec
	logger logrus.FieldLogger
}

// NewHasher returns a Hasher. A nil logger uses the process-wide logger.
func NewHasher(c codec.Codec, logger logrus.FieldLogger) *Hasher {
	if logger == nil {
		logger = log.Logger()
	}
	return &Hasher{codec: c, logger: logger}
}

var defaultHasher = NewHasher(codec.Default(), nil)

// Default returns the Hasher backed by the xrpl-go binary codec.
func Default() *Hasher {
	return defaultHasher
}

func isSigned(tx map[string]any) bool {
	for _, f := range signatureFields {
		if v, ok := tx[f]; ok && v != nil {
			return true
		}
	}
	return false
}

// prefixedHash hashes the binary form of blobHex behind prefix.
func prefixedHash(prefix protocol.HashPrefix, blobHex string) (string, error) {
	blob, err := hex.DecodeString(blobHex)
	if err != nil {
		return "", fmt.Errorf("%w: transaction blob is not hex: %v", ErrInvalidInput, err)
	}
	return crypto.HashToHex(crypto.Sha512Half(prefix[:], blob)), nil
}

// HashSignedTx returns the transaction ID of a signed transaction given as
// a JSON object.
func (h *Hasher) HashSignedTx(tx map[string]any) (string, error) {
	if !isSigned(tx) {
		return "", ErrUnsignedTransaction
	}
	blob, err := h.codec.Encode(txObject(tx))
	if err != nil {
		return "", err
	}
	return prefixedHash(protocol.HashPrefixTransactionID, blob)
}

// HashSignedTxBlob returns the transaction ID of a signed transaction given
// as a hex blob. The blob is decoded to check that it is signed.
func (h *Hasher) HashSignedTxBlob(blob string) (string, error) {
	tx, err := h.codec.Decode(blob)
	if err != nil {
		return "", err
	}
	if !isSigned(tx) {
		return "", ErrUnsignedTransaction
	}
	return prefixedHash(protocol.HashPrefixTransactionID, blob)
}

// HashTx returns the signing hash of a serialized transaction, the value a
// single signer signs.
func HashTx(blob string) (string, error) {
	return prefixedHash(protocol.HashPrefixTxSign, blob)
}

// HashSignedTx is Default().HashSignedTx.
func HashSignedTx(tx map[string]any) (string, error) {
	return defaultHasher.HashSignedTx(tx)
}

// HashSignedTxBlob is Default().HashSignedTxBlob.
func HashSignedTxBlob(blob string) (string, error) {
	return defaultHasher.HashSignedTxBlob(blob)
}
