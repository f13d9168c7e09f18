package hashes

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/LeJamon/goXRPLhash/internal/codec/serdes"
	"github.com/LeJamon/goXRPLhash/internal/core/shamap"
	"github.com/LeJamon/goXRPLhash/internal/protocol"
)

// Fields of API transaction and ledger entry objects that are not part of
// the canonical serialization.
var (
	txAPIFields    = []string{"metaData", "meta", "hash", "ledger_index", "ledger_hash", "inLedger", "date", "validated", "ctid", "close_time_iso", "tx_blob"}
	entryAPIFields = []string{"index", "data"}
)

func without(obj map[string]any, fields []string) map[string]any {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		out[k] = v
	}
	for _, f := range fields {
		delete(out, f)
	}
	return out
}

func txObject(tx map[string]any) map[string]any {
	return without(tx, txAPIFields)
}

// txBlobs returns the transaction ID, transaction blob and metadata blob for
// one element of a ledger's transaction list. The element is either a JSON
// transaction with its metadata under metaData or meta, or the binary form
// {"tx_blob": ..., "meta": ...}.
func (h *Hasher) txBlobs(tx map[string]any) (id, txBlob, metaBlob string, err error) {
	if raw, ok := tx["tx_blob"]; ok {
		blob, ok := raw.(string)
		if !ok {
			return "", "", "", fmt.Errorf("%w: tx_blob must be a hex string", ErrInvalidInput)
		}
		if id, err = h.HashSignedTxBlob(blob); err != nil {
			return "", "", "", err
		}
		metaBlob, err = h.metaBlob(tx["meta"])
		return id, blob, metaBlob, err
	}

	if !isSigned(tx) {
		return "", "", "", ErrUnsignedTransaction
	}
	if txBlob, err = h.codec.Encode(txObject(tx)); err != nil {
		return "", "", "", err
	}
	if id, err = prefixedHash(protocol.HashPrefixTransactionID, txBlob); err != nil {
		return "", "", "", err
	}
	meta, ok := tx["metaData"]
	if !ok {
		meta = tx["meta"]
	}
	metaBlob, err = h.metaBlob(meta)
	return id, txBlob, metaBlob, err
}

// metaBlob serializes transaction metadata given as an object or as a hex
// blob. Missing metadata serializes as an empty object.
func (h *Hasher) metaBlob(meta any) (string, error) {
	switch m := meta.(type) {
	case nil:
		return "", nil
	case string:
		return m, nil
	case map[string]any:
		return h.codec.Encode(m)
	default:
		return "", fmt.Errorf("%w: unexpected metadata type %T", ErrInvalidInput, meta)
	}
}

// HashTxTree returns the root hash of the transaction tree holding txs.
// Each leaf is keyed by the transaction ID and holds the length-prefixed
// transaction followed by its length-prefixed metadata.
func (h *Hasher) HashTxTree(txs []map[string]any) (string, error) {
	sm := shamap.New()
	for i, tx := range txs {
		id, txBlob, metaBlob, err := h.txBlobs(tx)
		if err != nil {
			return "", fmt.Errorf("transaction %d: %w", i, err)
		}
		txPart, err := serdes.AddLengthPrefix(txBlob)
		if err != nil {
			return "", fmt.Errorf("transaction %s: %w", id, err)
		}
		metaPart, err := serdes.AddLengthPrefix(metaBlob)
		if err != nil {
			return "", fmt.Errorf("transaction %s metadata: %w", id, err)
		}
		if err := sm.AddHexItem(id, txPart+metaPart, shamap.NodeTypeTransactionMetadata); err != nil {
			return "", fmt.Errorf("transaction %s: %w", id, err)
		}
	}

	root, err := sm.HexHash()
	if err != nil {
		return "", err
	}
	h.logger.WithFields(logrus.Fields{"transactions": sm.Len(), "hash": root}).Debug("computed transaction tree hash")
	return root, nil
}

// entryBlob returns the index and serialized form of a ledger entry given
// either as a JSON object with an index field or as {"index": ..., "data": ...}.
func (h *Hasher) entryBlob(e map[string]any) (index, blob string, err error) {
	index, ok := e["index"].(string)
	if !ok {
		return "", "", fmt.Errorf("%w: ledger entry has no index", ErrInvalidInput)
	}
	if raw, ok := e["data"]; ok {
		blob, ok := raw.(string)
		if !ok {
			return "", "", fmt.Errorf("%w: ledger entry %s data must be a hex string", ErrInvalidInput, index)
		}
		return index, blob, nil
	}
	blob, err = h.codec.Encode(without(e, entryAPIFields))
	return index, blob, err
}

// HashStateTree returns the root hash of the state tree holding entries.
func (h *Hasher) HashStateTree(entries []map[string]any) (string, error) {
	sm := shamap.New()
	for i, e := range entries {
		index, blob, err := h.entryBlob(e)
		if err != nil {
			return "", fmt.Errorf("ledger entry %d: %w", i, err)
		}
		if err := sm.AddHexItem(index, blob, shamap.NodeTypeAccountState); err != nil {
			return "", fmt.Errorf("ledger entry %s: %w", index, err)
		}
	}

	root, err := sm.HexHash()
	if err != nil {
		return "", err
	}
	h.logger.WithFields(logrus.Fields{"entries": sm.Len(), "hash": root}).Debug("computed state tree hash")
	return root, nil
}

// HashTxTree is Default().HashTxTree.
func HashTxTree(txs []map[string]any) (string, error) {
	return defaultHasher.HashTxTree(txs)
}

// HashStateTree is Default().HashStateTree.
func HashStateTree(entries []map[string]any) (string, error) {
	return defaultHasher.HashStateTree(entries)
}
