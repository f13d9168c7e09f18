package hashes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/LeJamon/goXRPLhash/internal/core/ledger/header"
)

// Options controls HashLedger.
type Options struct {
	// ComputeTreeHashes recomputes the transaction and state tree hashes
	// from the ledger contents and checks them against the header instead
	// of trusting the header.
	ComputeTreeHashes bool
}

// Ledger is a ledger as returned by the ledger API with transactions and
// state expanded.
type Ledger struct {
	header.LedgerHeader

	// Transactions is nil when the ledger carries no transaction list.
	Transactions []map[string]any
	// TransactionIDs holds the list when the server sent hashes only.
	TransactionIDs []string
	// AccountState is nil when the ledger carries no state.
	AccountState []map[string]any
}

// UnmarshalJSON decodes the header fields and the optional transaction and
// state lists.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &l.LedgerHeader); err != nil {
		return err
	}

	var lists struct {
		Transactions []json.RawMessage `json:"transactions"`
		AccountState []map[string]any  `json:"accountState"`
	}
	if err := unmarshalNumbers(data, &lists); err != nil {
		return err
	}
	l.AccountState = lists.AccountState
	l.Transactions, l.TransactionIDs = nil, nil

	if lists.Transactions == nil {
		return nil
	}
	l.Transactions = make([]map[string]any, 0, len(lists.Transactions))
	for i, raw := range lists.Transactions {
		var id string
		if err := json.Unmarshal(raw, &id); err == nil {
			l.TransactionIDs = append(l.TransactionIDs, id)
			continue
		}
		var tx map[string]any
		if err := unmarshalNumbers(raw, &tx); err != nil {
			return fmt.Errorf("transactions[%d]: %w", i, err)
		}
		l.Transactions = append(l.Transactions, tx)
	}
	if len(l.TransactionIDs) > 0 {
		if len(l.Transactions) > 0 {
			return fmt.Errorf("%w: transactions mixes hashes and objects", ErrInvalidInput)
		}
		l.Transactions = nil
	}
	return nil
}

// unmarshalNumbers decodes data into v keeping numbers as json.Number, so
// 64-bit fields survive without a round trip through float64.
func unmarshalNumbers(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// MarshalJSON writes the header fields and whichever lists are present.
func (l Ledger) MarshalJSON() ([]byte, error) {
	head, err := json.Marshal(l.LedgerHeader)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(head, &out); err != nil {
		return nil, err
	}
	switch {
	case l.Transactions != nil:
		out["transactions"] = l.Transactions
	case l.TransactionIDs != nil:
		out["transactions"] = l.TransactionIDs
	}
	if l.AccountState != nil {
		out["accountState"] = l.AccountState
	}
	return json.Marshal(out)
}

// ParseLedger decodes a ledger from a bare ledger object, a {"ledger": ...}
// wrapper or a full {"result": {"ledger": ...}} API response.
func ParseLedger(data []byte) (*Ledger, error) {
	var envelope struct {
		Result *struct {
			Ledger json.RawMessage `json:"ledger"`
		} `json:"result"`
		Ledger json.RawMessage `json:"ledger"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	switch {
	case envelope.Result != nil && envelope.Result.Ledger != nil:
		data = envelope.Result.Ledger
	case envelope.Ledger != nil:
		data = envelope.Ledger
	}

	l := &Ledger{}
	if err := json.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return l, nil
}

// HashLedgerHeader returns the hash of a ledger header.
func HashLedgerHeader(h *header.LedgerHeader) (string, error) {
	return h.Hash()
}

func (h *Hasher) transactionHash(l *Ledger, opts Options) (string, error) {
	if !opts.ComputeTreeHashes {
		return l.TransactionHash, nil
	}
	if l.Transactions == nil {
		return "", ErrMissingTransactions
	}
	computed, err := h.HashTxTree(l.Transactions)
	if err != nil {
		return "", err
	}
	return computed, h.checkTreeHash("transaction_hash", l.TransactionHash, computed)
}

func (h *Hasher) stateHash(l *Ledger, opts Options) (string, error) {
	if !opts.ComputeTreeHashes {
		return l.AccountHash, nil
	}
	if l.AccountState == nil {
		return "", ErrMissingAccountState
	}
	computed, err := h.HashStateTree(l.AccountState)
	if err != nil {
		return "", err
	}
	return computed, h.checkTreeHash("account_hash", l.AccountHash, computed)
}

func (h *Hasher) checkTreeHash(field, expected, computed string) error {
	if strings.EqualFold(expected, computed) {
		return nil
	}
	h.logger.WithFields(logrus.Fields{
		"field":    field,
		"header":   expected,
		"computed": computed,
	}).Debug("tree hash mismatch")
	return &HashMismatchError{Field: field, Expected: expected, Actual: computed}
}

// HashLedger returns the hash of ledger. With ComputeTreeHashes set the
// transaction and state trees are rebuilt and must match the header.
func (h *Hasher) HashLedger(l *Ledger, opts Options) (string, error) {
	txHash, err := h.transactionHash(l, opts)
	if err != nil {
		return "", err
	}
	accountHash, err := h.stateHash(l, opts)
	if err != nil {
		return "", err
	}

	hdr := l.LedgerHeader
	hdr.TransactionHash = txHash
	hdr.AccountHash = accountHash
	return hdr.Hash()
}

// HashLedger is Default().HashLedger.
func HashLedger(l *Ledger, opts Options) (string, error) {
	return defaultHasher.HashLedger(l, opts)
}
