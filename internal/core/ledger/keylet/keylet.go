package keylet

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/LeJamon/goXRPLhash/internal/core/ledger/entry"
	crypto "github.com/LeJamon/goXRPLhash/internal/crypto/common"
)

// ErrUnknownDoor is returned when a bridge keylet is requested for an account
// that is neither of the bridge's doors.
var ErrUnknownDoor = errors.New("account is not a door of the bridge")

// Keylet represents an addressable location in the ledger state.
// It combines a type identifier with a 256-bit key.
type Keylet struct {
	Type entry.Type
	Key  [32]byte
}

// Index computes an index key by hashing the space followed by data.
func Index(space LedgerSpace, data ...[]byte) [32]byte {
	inputs := make([][]byte, 0, len(data)+1)
	inputs = append(inputs, space.Bytes())
	inputs = append(inputs, data...)

	return crypto.Sha512Half(inputs...)
}

func uint32Bytes(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

func uint64Bytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// Account returns the keylet for an account root entry.
func Account(accountID [20]byte) Keylet {
	return Keylet{
		Type: entry.TypeAccountRoot,
		Key:  Index(SpaceAccount, accountID[:]),
	}
}

// Fees returns the keylet for the singleton fee settings entry.
func Fees() Keylet {
	return Keylet{
		Type: entry.TypeFeeSettings,
		Key:  Index(SpaceFeeSettings),
	}
}

// Amendments returns the keylet for the singleton amendments entry.
func Amendments() Keylet {
	return Keylet{
		Type: entry.TypeAmendments,
		Key:  Index(SpaceAmendment),
	}
}

// NegativeUNL returns the keylet for the singleton negative UNL entry.
func NegativeUNL() Keylet {
	return Keylet{
		Type: entry.TypeNegativeUNL,
		Key:  Index(SpaceNegativeUNL),
	}
}

// LedgerHashes returns the keylet for the skip list of the most recent 256
// ledger hashes.
func LedgerHashes() Keylet {
	return Keylet{
		Type: entry.TypeLedgerHashes,
		Key:  Index(SpaceSkipList),
	}
}

// LedgerHashesPage returns the keylet for the long-term skip list page that
// holds the hash of ledger seq. Each page covers 65536 ledgers.
func LedgerHashesPage(seq uint32) Keylet {
	return Keylet{
		Type: entry.TypeLedgerHashes,
		Key:  Index(SpaceSkipList, uint32Bytes(seq>>16)),
	}
}

// Offer returns the keylet for an offer entry.
func Offer(accountID [20]byte, sequence uint32) Keylet {
	return Keylet{
		Type: entry.TypeOffer,
		Key:  Index(SpaceOffer, accountID[:], uint32Bytes(sequence)),
	}
}

// OwnerDir returns the keylet for an owner directory entry.
func OwnerDir(accountID [20]byte) Keylet {
	return Keylet{
		Type: entry.TypeDirectoryNode,
		Key:  Index(SpaceOwnerDir, accountID[:]),
	}
}

// DirPage returns the keylet for a page of the directory rooted at root.
// Page 0 is the root itself.
func DirPage(root [32]byte, page uint64) Keylet {
	if page == 0 {
		return Keylet{Type: entry.TypeDirectoryNode, Key: root}
	}
	return Keylet{
		Type: entry.TypeDirectoryNode,
		Key:  Index(SpaceDirNode, root[:], uint64Bytes(page)),
	}
}

// OwnerDirPage returns the keylet for a specific page of an owner directory.
func OwnerDirPage(accountID [20]byte, page uint64) Keylet {
	return DirPage(OwnerDir(accountID).Key, page)
}

// BookDir returns the keylet for the first page of the order book in which
// takers pay `in` and get `out`. The low 64 bits of the key hold the offer
// quality and are zero here.
func BookDir(in, out Issue) Keylet {
	base := Index(SpaceBookDir, in.Currency[:], out.Currency[:], in.Account[:], out.Account[:])
	return Quality(Keylet{Type: entry.TypeDirectoryNode, Key: base}, 0)
}

// Quality returns k with its low 64 bits replaced by quality.
func Quality(k Keylet, quality uint64) Keylet {
	binary.BigEndian.PutUint64(k.Key[24:], quality)
	return k
}

// Escrow returns the keylet for an escrow entry.
func Escrow(accountID [20]byte, sequence uint32) Keylet {
	return Keylet{
		Type: entry.TypeEscrow,
		Key:  Index(SpaceEscrow, accountID[:], uint32Bytes(sequence)),
	}
}

// Check returns the keylet for a check entry.
func Check(accountID [20]byte, sequence uint32) Keylet {
	return Keylet{
		Type: entry.TypeCheck,
		Key:  Index(SpaceCheck, accountID[:], uint32Bytes(sequence)),
	}
}

// SignerList returns the keylet for a signer list entry.
func SignerList(accountID [20]byte) Keylet {
	// Only signer list ID 0 is in use.
	return Keylet{
		Type: entry.TypeSignerList,
		Key:  Index(SpaceSignerList, accountID[:], uint32Bytes(0)),
	}
}

// Ticket returns the keylet for a ticket entry.
func Ticket(accountID [20]byte, ticketSeq uint32) Keylet {
	return Keylet{
		Type: entry.TypeTicket,
		Key:  Index(SpaceTicket, accountID[:], uint32Bytes(ticketSeq)),
	}
}

// DepositPreauth returns the keylet for a deposit preauthorization entry.
// Owner and authorized are not interchangeable.
func DepositPreauth(owner, authorized [20]byte) Keylet {
	return Keylet{
		Type: entry.TypeDepositPreauth,
		Key:  Index(SpaceDepositPreauth, owner[:], authorized[:]),
	}
}

// Line returns the keylet for a trust line (RippleState) between two accounts.
// The accounts are sorted, so argument order does not matter.
func Line(account1, account2 [20]byte, currency [20]byte) Keylet {
	low, high := account1, account2
	if bytes.Compare(account1[:], account2[:]) > 0 {
		low, high = account2, account1
	}
	return Keylet{
		Type: entry.TypeRippleState,
		Key:  Index(SpaceRippleState, low[:], high[:], currency[:]),
	}
}

// NFTokenPage returns the keylet for the page of owner's NFTokens that can
// hold tokenID. Page keys are not hashed: the owner fills the high 160 bits
// and the low 96 bits of the token ID fill the rest.
func NFTokenPage(owner [20]byte, tokenID [32]byte) Keylet {
	var key [32]byte
	copy(key[:20], owner[:])
	copy(key[20:], tokenID[20:])
	return Keylet{Type: entry.TypeNFTokenPage, Key: key}
}

// NFTokenPageMax returns the keylet of owner's last NFToken page.
func NFTokenPageMax(owner [20]byte) Keylet {
	var tokenID [32]byte
	for i := 20; i < 32; i++ {
		tokenID[i] = 0xFF
	}
	return NFTokenPage(owner, tokenID)
}

// NFTokenOffer returns the keylet for an NFToken offer.
func NFTokenOffer(accountID [20]byte, sequence uint32) Keylet {
	return Keylet{
		Type: entry.TypeNFTokenOffer,
		Key:  Index(SpaceNFTokenOffer, accountID[:], uint32Bytes(sequence)),
	}
}

// NFTokenBuyOffers returns the keylet for the directory of buy offers on tokenID.
func NFTokenBuyOffers(tokenID [32]byte) Keylet {
	return Keylet{
		Type: entry.TypeDirectoryNode,
		Key:  Index(SpaceNFTokenBuyOffers, tokenID[:]),
	}
}

// NFTokenSellOffers returns the keylet for the directory of sell offers on tokenID.
func NFTokenSellOffers(tokenID [32]byte) Keylet {
	return Keylet{
		Type: entry.TypeDirectoryNode,
		Key:  Index(SpaceNFTokenSellOffers, tokenID[:]),
	}
}

// PayChannel returns the keylet for a payment channel.
func PayChannel(srcAccountID, dstAccountID [20]byte, sequence uint32) Keylet {
	return Keylet{
		Type: entry.TypePayChannel,
		Key:  Index(SpacePaychan, srcAccountID[:], dstAccountID[:], uint32Bytes(sequence)),
	}
}

// AMM returns the keylet for the AMM pool trading issue1 against issue2.
// The issues are ordered first, so argument order does not matter.
func AMM(issue1, issue2 Issue) Keylet {
	lo, hi := issue1, issue2
	if issue1.Compare(issue2) > 0 {
		lo, hi = issue2, issue1
	}
	return Keylet{
		Type: entry.TypeAMM,
		Key:  Index(SpaceAMMRoot, lo.Account[:], lo.Currency[:], hi.Account[:], hi.Currency[:]),
	}
}

// BridgeKeylet returns the keylet of the bridge entry owned by door. A door
// holds at most one bridge per currency, so only the door and the currency
// bridged on its chain are hashed.
func BridgeKeylet(b Bridge, door [20]byte) (Keylet, error) {
	var issue Issue
	switch door {
	case b.LockingChainDoor:
		issue = b.LockingChainIssue
	case b.IssuingChainDoor:
		issue = b.IssuingChainIssue
	default:
		return Keylet{}, ErrUnknownDoor
	}
	return Keylet{
		Type: entry.TypeBridge,
		Key:  Index(SpaceBridge, door[:], issue.Currency[:]),
	}, nil
}

// XChainClaimID returns the keylet for a cross-chain claim ID on bridge b.
func XChainClaimID(b Bridge, claimID uint64) Keylet {
	return Keylet{
		Type: entry.TypeXChainOwnedClaimID,
		Key:  Index(SpaceXChainOwnedClaimID, b.bytes(), uint64Bytes(claimID)),
	}
}

// XChainCreateAccountClaimID returns the keylet for a cross-chain account
// creation claim on bridge b.
func XChainCreateAccountClaimID(b Bridge, count uint64) Keylet {
	return Keylet{
		Type: entry.TypeXChainOwnedCreateAccountClaimID,
		Key:  Index(SpaceXChainOwnedCreateAccountClaimID, b.bytes(), uint64Bytes(count)),
	}
}

// DID returns the keylet for an account's DID entry.
func DID(accountID [20]byte) Keylet {
	return Keylet{
		Type: entry.TypeDID,
		Key:  Index(SpaceDID, accountID[:]),
	}
}

// Oracle returns the keylet for a price oracle identified by its owner and
// document ID.
func Oracle(accountID [20]byte, documentID uint32) Keylet {
	return Keylet{
		Type: entry.TypeOracle,
		Key:  Index(SpaceOracle, accountID[:], uint32Bytes(documentID)),
	}
}

// MakeMPTID builds the 192-bit MPToken issuance ID: sequence then issuer.
func MakeMPTID(sequence uint32, issuer [20]byte) [24]byte {
	var id [24]byte
	binary.BigEndian.PutUint32(id[:4], sequence)
	copy(id[4:], issuer[:])
	return id
}

// MPTIssuance returns the keylet for an MPToken issuance by its ID.
func MPTIssuance(mptID [24]byte) Keylet {
	return Keylet{
		Type: entry.TypeMPTokenIssuance,
		Key:  Index(SpaceMPTokenIssuance, mptID[:]),
	}
}

// MPToken returns the keylet for holder's balance of the issuance whose
// ledger key is issuanceKey.
func MPToken(issuanceKey [32]byte, holder [20]byte) Keylet {
	return Keylet{
		Type: entry.TypeMPToken,
		Key:  Index(SpaceMPToken, issuanceKey[:], holder[:]),
	}
}

// Credential returns the keylet for a credential of credType issued to subject.
func Credential(subject, issuer [20]byte, credType []byte) Keylet {
	return Keylet{
		Type: entry.TypeCredential,
		Key:  Index(SpaceCredential, subject[:], issuer[:], credType),
	}
}

// PermissionedDomain returns the keylet for a permissioned domain.
func PermissionedDomain(owner [20]byte, sequence uint32) Keylet {
	return Keylet{
		Type: entry.TypePermissionedDomain,
		Key:  Index(SpacePermissionedDomain, owner[:], uint32Bytes(sequence)),
	}
}

// Delegate returns the keylet for the permissions account grants to authorized.
func Delegate(account, authorized [20]byte) Keylet {
	return Keylet{
		Type: entry.TypeDelegate,
		Key:  Index(SpaceDelegate, account[:], authorized[:]),
	}
}

// Vault returns the keylet for a vault.
func Vault(owner [20]byte, sequence uint32) Keylet {
	return Keylet{
		Type: entry.TypeVault,
		Key:  Index(SpaceVault, owner[:], uint32Bytes(sequence)),
	}
}

// Hook returns the keylet for the hooks installed on an account.
func Hook(accountID [20]byte) Keylet {
	return Keylet{
		Type: entry.TypeHook,
		Key:  Index(SpaceHook, accountID[:]),
	}
}

// HookState returns the keylet for a hook state entry of accountID under
// namespace.
func HookState(accountID [20]byte, key, namespace [32]byte) Keylet {
	return Keylet{
		Type: entry.TypeHookState,
		Key:  Index(SpaceHookState, accountID[:], key[:], namespace[:]),
	}
}

// HookDefinition returns the keylet for the hook definition with the given
// code hash.
func HookDefinition(hookHash [32]byte) Keylet {
	return Keylet{
		Type: entry.TypeHookDefinition,
		Key:  Index(SpaceHookDefinition, hookHash[:]),
	}
}
