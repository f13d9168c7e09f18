package protocol

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
)

// HashPrefix is a 4-byte domain separator prepended to hashed data so that
// hashes computed for different purposes never collide.
type HashPrefix [4]byte

// makeHashPrefix combines three ASCII characters into a 4-byte prefix with the last byte set to zero.
func makeHashPrefix(a, b, c byte) HashPrefix {
	return HashPrefix{a, b, c, 0}
}

// HashPrefix constants for different XRPL object hash domains.
// These MUST match the values of rippled's HashPrefix enum.
var (
	HashPrefixTransactionID       = makeHashPrefix('T', 'X', 'N') // Transaction ID
	HashPrefixTxNode              = makeHashPrefix('S', 'N', 'D') // Transaction + Metadata leaf
	HashPrefixLeafNode            = makeHashPrefix('M', 'L', 'N') // Account state leaf
	HashPrefixInnerNode           = makeHashPrefix('M', 'I', 'N') // Inner node
	HashPrefixLedgerMaster        = makeHashPrefix('L', 'W', 'R') // Ledger header
	HashPrefixTxSign              = makeHashPrefix('S', 'T', 'X') // TX for signing
	HashPrefixTxMultiSign         = makeHashPrefix('S', 'M', 'T') // TX for multi-sign
	HashPrefixValidation          = makeHashPrefix('V', 'A', 'L') // Validation
	HashPrefixProposal            = makeHashPrefix('P', 'R', 'P') // Proposal
	HashPrefixManifest            = makeHashPrefix('M', 'A', 'N') // Manifest
	HashPrefixPaymentChannelClaim = makeHashPrefix('C', 'L', 'M') // Channel Claim
	HashPrefixCredential          = makeHashPrefix('C', 'R', 'D') // Credential Signature
)

// Bytes returns the prefix as a byte slice.
func (h HashPrefix) Bytes() []byte {
	return h[:]
}

// Uint32 returns the prefix as the integer rippled uses for it.
func (h HashPrefix) Uint32() uint32 {
	return binary.BigEndian.Uint32(h[:])
}

// Hex renders the prefix as 8 upper-case hex digits, e.g. "4D494E00" for MIN.
func (h HashPrefix) Hex() string {
	return strings.ToUpper(hex.EncodeToString(h[:]))
}

// String returns the three-letter mnemonic.
func (h HashPrefix) String() string {
	return string(h[:3])
}
