package keylet

import "bytes"

// Issue identifies an asset by currency code and issuing account. XRP has
// both fields zero.
type Issue struct {
	Currency [20]byte
	Account  [20]byte
}

// XRPIssue returns the issue for the native asset.
func XRPIssue() Issue {
	return Issue{}
}

// IsXRP reports whether the issue is the native asset.
func (i Issue) IsXRP() bool {
	return i.Currency == [20]byte{}
}

// Compare orders issues by currency and then by account, comparing bytes as
// big-endian numbers. It returns -1, 0 or 1.
func (i Issue) Compare(o Issue) int {
	if c := bytes.Compare(i.Currency[:], o.Currency[:]); c != 0 {
		return c
	}
	return bytes.Compare(i.Account[:], o.Account[:])
}

// Bytes returns currency followed by account, the way an issue is hashed.
func (i Issue) Bytes() []byte {
	out := make([]byte, 0, 40)
	out = append(out, i.Currency[:]...)
	return append(out, i.Account[:]...)
}

// Bridge describes an XChain bridge by its door accounts and the asset
// bridged on either chain.
type Bridge struct {
	LockingChainDoor  [20]byte
	LockingChainIssue Issue
	IssuingChainDoor  [20]byte
	IssuingChainIssue Issue
}

// bytes returns the bridge fields in canonical order.
func (b Bridge) bytes() []byte {
	out := make([]byte, 0, 120)
	out = append(out, b.LockingChainDoor[:]...)
	out = append(out, b.LockingChainIssue.Bytes()...)
	out = append(out, b.IssuingChainDoor[:]...)
	return append(out, b.IssuingChainIssue.Bytes()...)
}
