package header

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	crypto "github.com/LeJamon/goXRPLhash/internal/crypto/common"
	"github.com/LeJamon/goXRPLhash/internal/protocol"
)

// SerializedSize is the length of a serialized header without its hash prefix.
const SerializedSize = 4 + 8 + 32 + 32 + 32 + 4 + 4 + 1 + 1

var (
	ErrInvalidHash   = errors.New("invalid ledger header hash field")
	ErrInvalidNumber = errors.New("invalid ledger header number field")
	ErrShortHeader   = errors.New("serialized ledger header too short")
	ErrBadPrefix     = errors.New("serialized ledger header has wrong hash prefix")
)

// LedgerHeader is the part of a ledger that its hash commits to, in the JSON
// shape returned by the ledger API. Hash fields hold 64 hex characters.
type LedgerHeader struct {
	LedgerIndex         uint32 `json:"ledger_index"`
	TotalCoins          uint64 `json:"total_coins,string"`
	ParentHash          string `json:"parent_hash"`
	TransactionHash     string `json:"transaction_hash"`
	AccountHash         string `json:"account_hash"`
	ParentCloseTime     uint32 `json:"parent_close_time"`
	CloseTime           uint32 `json:"close_time"`
	CloseTimeResolution uint8  `json:"close_time_resolution"`
	CloseFlags          uint8  `json:"close_flags"`

	// LedgerHash is the hash the server reported, if any. It is not part
	// of the hashed data.
	LedgerHash string `json:"ledger_hash,omitempty"`
}

// UnmarshalJSON accepts ledger_index and total_coins as either JSON numbers
// or decimal strings, since API versions disagree on which one they send.
func (h *LedgerHeader) UnmarshalJSON(data []byte) error {
	var raw struct {
		LedgerIndex         json.RawMessage `json:"ledger_index"`
		TotalCoins          json.RawMessage `json:"total_coins"`
		ParentHash          string          `json:"parent_hash"`
		TransactionHash     string          `json:"transaction_hash"`
		AccountHash         string          `json:"account_hash"`
		ParentCloseTime     uint32          `json:"parent_close_time"`
		CloseTime           uint32          `json:"close_time"`
		CloseTimeResolution uint8           `json:"close_time_resolution"`
		CloseFlags          uint8           `json:"close_flags"`
		LedgerHash          string          `json:"ledger_hash"`
		Hash                string          `json:"hash"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	index, err := parseUint(raw.LedgerIndex, 32)
	if err != nil {
		return fmt.Errorf("ledger_index: %w", err)
	}
	coins, err := parseUint(raw.TotalCoins, 64)
	if err != nil {
		return fmt.Errorf("total_coins: %w", err)
	}

	*h = LedgerHeader{
		LedgerIndex:         uint32(index),
		TotalCoins:          coins,
		ParentHash:          raw.ParentHash,
		TransactionHash:     raw.TransactionHash,
		AccountHash:         raw.AccountHash,
		ParentCloseTime:     raw.ParentCloseTime,
		CloseTime:           raw.CloseTime,
		CloseTimeResolution: raw.CloseTimeResolution,
		CloseFlags:          raw.CloseFlags,
		LedgerHash:          raw.LedgerHash,
	}
	if h.LedgerHash == "" {
		h.LedgerHash = raw.Hash
	}
	return nil
}

func parseUint(raw json.RawMessage, bitSize int) (uint64, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseUint(s, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return v, nil
}

// decodeHash parses one of the 64-hex hash fields.
func decodeHash(field, value string) ([32]byte, error) {
	b, err := crypto.HexToHash(value)
	if err != nil {
		return [32]byte{}, fmt.Errorf("%w %s: %v", ErrInvalidHash, field, err)
	}
	return b, nil
}

// Serialize returns the bytes the ledger hash is computed over, without the
// hash prefix.
func (h *LedgerHeader) Serialize() ([]byte, error) {
	parent, err := decodeHash("parent_hash", h.ParentHash)
	if err != nil {
		return nil, err
	}
	txHash, err := decodeHash("transaction_hash", h.TransactionHash)
	if err != nil {
		return nil, err
	}
	accountHash, err := decodeHash("account_hash", h.AccountHash)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, SerializedSize)
	buf = binary.BigEndian.AppendUint32(buf, h.LedgerIndex)
	buf = binary.BigEndian.AppendUint64(buf, h.TotalCoins)
	buf = append(buf, parent[:]...)
	buf = append(buf, txHash[:]...)
	buf = append(buf, accountHash[:]...)
	buf = binary.BigEndian.AppendUint32(buf, h.ParentCloseTime)
	buf = binary.BigEndian.AppendUint32(buf, h.CloseTime)
	buf = append(buf, h.CloseTimeResolution, h.CloseFlags)
	return buf, nil
}

// Hash computes the ledger hash as 64 upper-case hex characters.
func (h *LedgerHeader) Hash() (string, error) {
	data, err := h.Serialize()
	if err != nil {
		return "", err
	}
	return crypto.HashToHex(crypto.Sha512Half(protocol.HashPrefixLedgerMaster[:], data)), nil
}

// DeserializeHeader decodes a header produced by Serialize.
func DeserializeHeader(data []byte) (*LedgerHeader, error) {
	if len(data) < SerializedSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortHeader, len(data))
	}
	h := &LedgerHeader{}
	h.LedgerIndex = binary.BigEndian.Uint32(data[0:4])
	h.TotalCoins = binary.BigEndian.Uint64(data[4:12])
	h.ParentHash = strings.ToUpper(hex.EncodeToString(data[12:44]))
	h.TransactionHash = strings.ToUpper(hex.EncodeToString(data[44:76]))
	h.AccountHash = strings.ToUpper(hex.EncodeToString(data[76:108]))
	h.ParentCloseTime = binary.BigEndian.Uint32(data[108:112])
	h.CloseTime = binary.BigEndian.Uint32(data[112:116])
	h.CloseTimeResolution = data[116]
	h.CloseFlags = data[117]
	return h, nil
}

// DeserializePrefixedHeader decodes a header that still carries the 4-byte
// ledger hash prefix.
func DeserializePrefixedHeader(data []byte) (*LedgerHeader, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortHeader, len(data))
	}
	if !bytes.Equal(data[:4], protocol.HashPrefixLedgerMaster[:]) {
		return nil, fmt.Errorf("%w: %X", ErrBadPrefix, data[:4])
	}
	return DeserializeHeader(data[4:])
}
