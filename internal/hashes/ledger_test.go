package hashes

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLhash/internal/core/ledger/header"
)

const ledgerHash = "E3B82F71C64937269DE58DD67E2EFC4C164D17731F42CE19FC3299377DB4EE93"

func sampleLedger() *Ledger {
	l := &Ledger{
		LedgerHeader: header.LedgerHeader{
			LedgerIndex:         38129,
			TotalCoins:          99999999999999620,
			ParentHash:          "D1C6BC2FC8B1B1F9D9BE30AA4C4D1B3E7DC46B4E0A89C1B41F6C9D6E7C3F1A01",
			TransactionHash:     txTreeHash,
			AccountHash:         stateTreeHash,
			ParentCloseTime:     410424200,
			CloseTime:           410424210,
			CloseTimeResolution: 10,
		},
		Transactions: []map[string]any{
			{"tx_blob": tx1Blob, "meta": tx1Meta},
			{"tx_blob": tx2Blob, "meta": tx2Meta},
		},
	}
	for _, e := range stateEntries {
		l.AccountState = append(l.AccountState, map[string]any{"index": e.index, "data": e.data})
	}
	return l
}

func TestHashLedgerTrustsHeader(t *testing.T) {
	h, _, _ := newTestHasher(t)

	// No codec calls: the tree hashes come from the header.
	got, err := h.HashLedger(sampleLedger(), Options{})
	require.NoError(t, err)
	assert.Equal(t, ledgerHash, got)

	l := sampleLedger()
	l.Transactions, l.AccountState = nil, nil
	got, err = h.HashLedger(l, Options{})
	require.NoError(t, err)
	assert.Equal(t, ledgerHash, got)
}

func TestHashLedgerComputeTreeHashes(t *testing.T) {
	h, c, _ := newTestHasher(t)
	c.EXPECT().Decode(tx1Blob).Return(signedTx(1), nil)
	c.EXPECT().Decode(tx2Blob).Return(signedTx(2), nil)

	got, err := h.HashLedger(sampleLedger(), Options{ComputeTreeHashes: true})
	require.NoError(t, err)
	assert.Equal(t, ledgerHash, got)
}

func TestHashLedgerTransactionMismatch(t *testing.T) {
	h, c, hook := newTestHasher(t)
	c.EXPECT().Decode(tx1Blob).Return(signedTx(1), nil)

	l := sampleLedger()
	l.Transactions = l.Transactions[:1]

	_, err := h.HashLedger(l, Options{ComputeTreeHashes: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHashMismatch))

	var mismatch *HashMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "transaction_hash", mismatch.Field)
	assert.Equal(t, txTreeHash, mismatch.Expected)
	assert.NotEqual(t, txTreeHash, mismatch.Actual)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "tree hash mismatch", hook.LastEntry().Message)
}

func TestHashLedgerStateMismatch(t *testing.T) {
	h, c, _ := newTestHasher(t)
	c.EXPECT().Decode(tx1Blob).Return(signedTx(1), nil)
	c.EXPECT().Decode(tx2Blob).Return(signedTx(2), nil)

	l := sampleLedger()
	l.AccountState = l.AccountState[1:]

	_, err := h.HashLedger(l, Options{ComputeTreeHashes: true})
	var mismatch *HashMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "account_hash", mismatch.Field)
}

func TestHashLedgerMissingLists(t *testing.T) {
	t.Run("transactions", func(t *testing.T) {
		h, _, _ := newTestHasher(t)
		l := sampleLedger()
		l.Transactions = nil
		_, err := h.HashLedger(l, Options{ComputeTreeHashes: true})
		assert.ErrorIs(t, err, ErrMissingTransactions)
		assert.EqualError(t, err, "transactions is missing from the ledger")
	})

	t.Run("account state", func(t *testing.T) {
		h, c, _ := newTestHasher(t)
		c.EXPECT().Decode(tx1Blob).Return(signedTx(1), nil)
		c.EXPECT().Decode(tx2Blob).Return(signedTx(2), nil)
		l := sampleLedger()
		l.AccountState = nil
		_, err := h.HashLedger(l, Options{ComputeTreeHashes: true})
		assert.ErrorIs(t, err, ErrMissingAccountState)
	})

	t.Run("empty lists are present", func(t *testing.T) {
		h, _, _ := newTestHasher(t)
		l := sampleLedger()
		l.Transactions = []map[string]any{}
		l.TransactionHash = strings.Repeat("0", 64)
		l.AccountState = []map[string]any{}
		l.AccountHash = strings.Repeat("0", 64)
		_, err := h.HashLedger(l, Options{ComputeTreeHashes: true})
		assert.NoError(t, err)
	})
}

func TestParseLedger(t *testing.T) {
	ledgerJSON := `{
		"ledger_index": "38129",
		"total_coins": "99999999999999620",
		"parent_hash": "D1C6BC2FC8B1B1F9D9BE30AA4C4D1B3E7DC46B4E0A89C1B41F6C9D6E7C3F1A01",
		"transaction_hash": "` + txTreeHash + `",
		"account_hash": "` + stateTreeHash + `",
		"parent_close_time": 410424200,
		"close_time": 410424210,
		"close_time_resolution": 10,
		"close_flags": 0,
		"ledger_hash": "` + ledgerHash + `",
		"transactions": [
			{"tx_blob": "` + tx1Blob + `", "meta": "` + tx1Meta + `"}
		],
		"accountState": [
			{"index": "` + stateEntries[0].index + `", "data": "` + stateEntries[0].data + `"}
		]
	}`

	tests := []struct {
		name string
		doc  string
	}{
		{"bare", ledgerJSON},
		{"ledger wrapper", `{"ledger": ` + ledgerJSON + `}`},
		{"api response", `{"result": {"ledger": ` + ledgerJSON + `, "validated": true}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := ParseLedger([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, uint32(38129), l.LedgerIndex)
			assert.Equal(t, ledgerHash, l.LedgerHash)
			require.Len(t, l.Transactions, 1)
			assert.Equal(t, tx1Blob, l.Transactions[0]["tx_blob"])
			require.Len(t, l.AccountState, 1)

			got, err := HashLedger(l, Options{})
			require.NoError(t, err)
			assert.Equal(t, l.LedgerHash, got)
		})
	}
}

func TestParseLedgerTransactionIDs(t *testing.T) {
	l, err := ParseLedger([]byte(`{"ledger_index": 5, "transactions": ["` + tx1ID + `", "` + tx2ID + `"]}`))
	require.NoError(t, err)
	assert.Nil(t, l.Transactions)
	assert.Equal(t, []string{tx1ID, tx2ID}, l.TransactionIDs)
	assert.Nil(t, l.AccountState)

	h, _, _ := newTestHasher(t)
	_, err = h.HashLedger(l, Options{ComputeTreeHashes: true})
	assert.ErrorIs(t, err, ErrMissingTransactions)
}

func TestParseLedgerInvalid(t *testing.T) {
	_, err := ParseLedger([]byte(`{"ledger_index": "x"}`))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseLedger([]byte(`not json`))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseLedger([]byte(`{"transactions": ["` + tx1ID + `", {"tx_blob": "00"}]}`))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLedgerMarshalJSON(t *testing.T) {
	l := sampleLedger()
	out, err := json.Marshal(l)
	require.NoError(t, err)

	back, err := ParseLedger(out)
	require.NoError(t, err)
	assert.Equal(t, l.LedgerHeader, back.LedgerHeader)
	assert.Len(t, back.Transactions, 2)
	assert.Len(t, back.AccountState, 3)
}

func TestHashLedgerHeader(t *testing.T) {
	l := sampleLedger()
	got, err := HashLedgerHeader(&l.LedgerHeader)
	require.NoError(t, err)
	assert.Equal(t, ledgerHash, got)
}
