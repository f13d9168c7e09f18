// Package codec is the boundary to the XRPL binary and address codecs.
// Hashing code never serializes objects itself; it asks a Codec for the
// canonical blob.
package codec

import (
	"errors"
	"fmt"

	addresscodec "github.com/Peersyst/xrpl-go/address-codec"
	binarycodec "github.com/Peersyst/xrpl-go/binary-codec"
)

//go:generate mockgen -destination=mock/codec.go -package=mock github.com/LeJamon/goXRPLhash/internal/codec Codec

var (
	ErrInvalidAddress = errors.New("invalid classic address")
	ErrEncode         = errors.New("binary encode failed")
	ErrDecode         = errors.New("binary decode failed")
)

// Codec converts between JSON-shaped objects and their canonical
// hex-encoded binary form.
type Codec interface {
	Encode(obj map[string]any) (string, error)
	Decode(blob string) (map[string]any, error)
}

// binaryCodec is the Codec backed by xrpl-go.
type binaryCodec struct{}

// Default returns the xrpl-go backed codec.
func Default() Codec {
	return binaryCodec{}
}

// Encode serializes a copy of obj. obj itself is never modified, and a
// value xrpl-go cannot handle is reported as ErrEncode rather than a panic.
func (binaryCodec) Encode(obj map[string]any) (blob string, err error) {
	defer func() {
		if r := recover(); r != nil {
			blob, err = "", fmt.Errorf("%w: %v", ErrEncode, r)
		}
	}()
	norm, err := normalize(obj)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}
	blob, err = binarycodec.Encode(norm)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return blob, nil
}

func (binaryCodec) Decode(blob string) (obj map[string]any, err error) {
	defer func() {
		if r := recover(); r != nil {
			obj, err = nil, fmt.Errorf("%w: %v", ErrDecode, r)
		}
	}()
	obj, err = binarycodec.Decode(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return obj, nil
}

// DecodeAccountID decodes a classic address (r...) into its 20-byte account
// ID. The base58 checksum and the account type prefix are both checked.
func DecodeAccountID(address string) ([20]byte, error) {
	var id [20]byte
	if address == "" {
		return id, fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}
	payload, err := addresscodec.Base58CheckDecode(address)
	if err != nil {
		return id, fmt.Errorf("%w %q: %v", ErrInvalidAddress, address, err)
	}
	if len(payload) != 1+addresscodec.AccountAddressLength || payload[0] != addresscodec.AccountAddressPrefix {
		return id, fmt.Errorf("%w %q: not an account address", ErrInvalidAddress, address)
	}
	copy(id[:], payload[1:])
	return id, nil
}

// EncodeAccountID renders a 20-byte account ID as a classic address.
func EncodeAccountID(id [20]byte) (string, error) {
	addr, err := addresscodec.EncodeAccountIDToClassicAddress(id[:])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return addr, nil
}
