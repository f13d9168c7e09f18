package hashes

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLhash/internal/codec/mock"
)

const (
	tx1Blob   = "120000228000000024000000016140000000000F424068400000000000000C"
	tx1Meta   = "201C00000000F8E311006F"
	tx1ID     = "C80D9603E9A6EFE72104247D836E81E49F819CE3A84DA9C5195A1E9A1E496F72"
	tx1SigHex = "82821A42F1FA2ECF1167284B37A77BB1244BFC74919C2D6D57275F1182D4D260"

	tx2Blob = "120007228000000024000000026440000000000F424065D4838D7EA4C68000"
	tx2Meta = "201C00000001F8E51100"
	tx2ID   = "8F6F3B3EE03A0763711017320395B08BB4E6A247E4FAE8C6ACF1FD90DD313820"

	txTreeHash = "2AF802E2B08171B68C2F5F03C7DC0B6815D9F5458F12B49B6B118F19E1B2F543"
)

func newTestHasher(t *testing.T) (*Hasher, *mock.MockCodec, *test.Hook) {
	ctrl := gomock.NewController(t)
	c := mock.NewMockCodec(ctrl)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewHasher(c, logger), c, hook
}

func signedTx(seq int) map[string]any {
	return map[string]any{
		"TransactionType": "Payment",
		"Sequence":        float64(seq),
		"SigningPubKey":   "02A8A44DB3D4C73EEEE11DFE54D2029103B776AA8A8D293A91D645977C9DF5F544",
		"TxnSignature":    "3045022100",
	}
}

func TestHashSignedTx(t *testing.T) {
	h, c, _ := newTestHasher(t)
	tx := signedTx(1)
	tx["hash"] = tx1ID
	tx["validated"] = true

	c.EXPECT().Encode(signedTx(1)).Return(tx1Blob, nil)

	id, err := h.HashSignedTx(tx)
	require.NoError(t, err)
	assert.Equal(t, tx1ID, id)
}

func TestHashSignedTxSignatureFields(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]any
		signed bool
	}{
		{"txn signature", map[string]any{"TxnSignature": "30"}, true},
		{"signers", map[string]any{"Signers": []any{}}, true},
		{"empty signing key", map[string]any{"SigningPubKey": ""}, true},
		{"none", map[string]any{}, false},
		{"nil signature", map[string]any{"TxnSignature": nil}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, c, _ := newTestHasher(t)
			tx := map[string]any{"TransactionType": "EnableAmendment"}
			for k, v := range tt.fields {
				tx[k] = v
			}
			if tt.signed {
				c.EXPECT().Encode(gomock.Any()).Return(tx1Blob, nil)
			}

			_, err := h.HashSignedTx(tx)
			if tt.signed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrUnsignedTransaction)
			}
		})
	}
}

func TestHashSignedTxBlob(t *testing.T) {
	h, c, _ := newTestHasher(t)

	c.EXPECT().Decode(tx1Blob).Return(signedTx(1), nil)
	id, err := h.HashSignedTxBlob(tx1Blob)
	require.NoError(t, err)
	assert.Equal(t, tx1ID, id)

	c.EXPECT().Decode(tx2Blob).Return(map[string]any{"TransactionType": "Payment"}, nil)
	_, err = h.HashSignedTxBlob(tx2Blob)
	assert.ErrorIs(t, err, ErrUnsignedTransaction)

	decodeErr := errors.New("boom")
	c.EXPECT().Decode("00").Return(nil, decodeErr)
	_, err = h.HashSignedTxBlob("00")
	assert.ErrorIs(t, err, decodeErr)
}

func TestHashTx(t *testing.T) {
	got, err := HashTx(tx1Blob)
	require.NoError(t, err)
	assert.Equal(t, tx1SigHex, got)
	assert.NotEqual(t, tx1ID, got)

	_, err = HashTx("XYZ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHashMismatchError(t *testing.T) {
	err := error(&HashMismatchError{Field: "transaction_hash", Expected: "AA", Actual: "BB"})
	assert.True(t, errors.Is(err, ErrHashMismatch))
	assert.Contains(t, err.Error(), "transaction_hash")
	assert.Contains(t, err.Error(), "AA")
	assert.Contains(t, err.Error(), "BB")

	var mismatch *HashMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "BB", mismatch.Actual)
}
