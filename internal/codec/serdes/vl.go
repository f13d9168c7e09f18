package serdes

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Length boundaries of the variable-length (VL) prefix.
const (
	MaxSingleByteLength = 192
	MaxDoubleByteLength = 12480
	MaxTripleByteLength = 918744
)

var (
	ErrVariableIntegerOverflow = errors.New("variable integer overflow")
	ErrInvalidHex              = errors.New("invalid hex blob")
	ErrTruncatedPrefix         = errors.New("truncated length prefix")
	ErrTruncatedPayload        = errors.New("length prefix exceeds remaining data")
)

// EncodeVariableLength returns the 1 to 3 byte VL prefix for a payload of n bytes.
//   - 0-192: 1 byte
//   - 193-12480: 2 bytes
//   - 12481-918744: 3 bytes
func EncodeVariableLength(n int) ([]byte, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("negative length %d", n)
	case n <= MaxSingleByteLength:
		return []byte{byte(n)}, nil
	case n <= MaxDoubleByteLength:
		p := n - (MaxSingleByteLength + 1)
		return []byte{byte(193 + (p >> 8)), byte(p & 0xFF)}, nil
	case n <= MaxTripleByteLength:
		p := n - (MaxDoubleByteLength + 1)
		return []byte{byte(241 + (p >> 16)), byte((p >> 8) & 0xFF), byte(p & 0xFF)}, nil
	default:
		return nil, fmt.Errorf("%w: length %d exceeds %d", ErrVariableIntegerOverflow, n, MaxTripleByteLength)
	}
}

// DecodeVariableLength reads a VL prefix from b and returns the payload length
// and how many prefix bytes were consumed.
func DecodeVariableLength(b []byte) (length int, consumed int, err error) {
	if len(b) == 0 {
		return 0, 0, ErrTruncatedPrefix
	}
	b1 := int(b[0])
	switch {
	case b1 <= 192:
		return b1, 1, nil
	case b1 <= 240:
		if len(b) < 2 {
			return 0, 0, ErrTruncatedPrefix
		}
		return 193 + (b1-193)*256 + int(b[1]), 2, nil
	case b1 <= 254:
		if len(b) < 3 {
			return 0, 0, ErrTruncatedPrefix
		}
		return 12481 + (b1-241)*65536 + int(b[1])*256 + int(b[2]), 3, nil
	default:
		return 0, 0, fmt.Errorf("%w: invalid first prefix byte 0x%02X", ErrVariableIntegerOverflow, b1)
	}
}

// AddLengthPrefix prepends the VL prefix for the decoded length of hexBlob.
// The result is upper-case hex.
func AddLengthPrefix(hexBlob string) (string, error) {
	if len(hexBlob)%2 != 0 {
		return "", fmt.Errorf("%w: odd length %d", ErrInvalidHex, len(hexBlob))
	}
	if _, err := hex.DecodeString(hexBlob); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	prefix, err := EncodeVariableLength(len(hexBlob) / 2)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(prefix) + hexBlob), nil
}

// SplitLengthPrefixed splits a concatenation of VL-prefixed hex fields back
// into its fields, e.g. the tx and metadata halves of a transaction leaf.
func SplitLengthPrefixed(hexData string) ([]string, error) {
	data, err := hex.DecodeString(hexData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	var fields []string
	for len(data) > 0 {
		n, used, err := DecodeVariableLength(data)
		if err != nil {
			return nil, err
		}
		data = data[used:]
		if n > len(data) {
			return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedPayload, n, len(data))
		}
		fields = append(fields, strings.ToUpper(hex.EncodeToString(data[:n])))
		data = data[n:]
	}
	return fields, nil
}
