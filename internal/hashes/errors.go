package hashes

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsignedTransaction = errors.New("the transaction must be signed to hash it")
	ErrMissingTransactions = errors.New("transactions is missing from the ledger")
	ErrMissingAccountState = errors.New("accountState is missing from the ledger")
	ErrHashMismatch        = errors.New("hash in header does not match computed hash")
)

// HashMismatchError reports a header hash that does not match the recomputed one.
type HashMismatchError struct {
	Field    string // transaction_hash, account_hash or ledger_hash
	Expected string // value in the header
	Actual   string // recomputed value
}

func (e *HashMismatchError) Error() string {
	return fmt.Sprintf("%s in header does not match computed hash: header %s, computed %s",
		e.Field, e.Expected, e.Actual)
}

// Is makes errors.Is(err, ErrHashMismatch) match.
func (e *HashMismatchError) Is(target error) bool {
	return target == ErrHashMismatch
}
