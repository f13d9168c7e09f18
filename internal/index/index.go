// Package index derives ledger object indexes from addresses and other
// human-readable fields. Every function returns the index as 64 upper-case
// hex characters.
package index

import (
	"fmt"

	"github.com/LeJamon/goXRPLhash/internal/core/ledger/keylet"
	crypto "github.com/LeJamon/goXRPLhash/internal/crypto/common"
)

func keyHex(k keylet.Keylet) string {
	return crypto.HashToHex(k.Key)
}

// HashAccountRoot returns the index of an account's AccountRoot.
func HashAccountRoot(address string) (string, error) {
	id, err := accountID("address", address)
	if err != nil {
		return "", err
	}
	return keyHex(keylet.Account(id)), nil
}

// HashSignerListID returns the index of an account's signer list.
func HashSignerListID(address string) (string, error) {
	id, err := accountID("address", address)
	if err != nil {
		return "", err
	}
	return keyHex(keylet.SignerList(id)), nil
}

// HashOwnerDir returns the index of the root page of an account's owner directory.
func HashOwnerDir(address string) (string, error) {
	id, err := accountID("address", address)
	if err != nil {
		return "", err
	}
	return keyHex(keylet.OwnerDir(id)), nil
}

// HashOfferID returns the index of the offer created with sequence.
func HashOfferID(address string, sequence uint32) (string, error) {
	id, err := accountID("address", address)
	if err != nil {
		return "", err
	}
	return keyHex(keylet.Offer(id, sequence)), nil
}

// HashTrustline returns the index of the trust line between two accounts.
// The result does not depend on argument order.
func HashTrustline(address1, address2, currency string) (string, error) {
	a, err := accountID("address1", address1)
	if err != nil {
		return "", err
	}
	b, err := accountID("address2", address2)
	if err != nil {
		return "", err
	}
	cur, err := currencyCode("currency", currency)
	if err != nil {
		return "", err
	}
	return keyHex(keylet.Line(a, b, cur)), nil
}

// HashEscrow returns the index of the escrow created with sequence.
func HashEscrow(address string, sequence uint32) (string, error) {
	id, err := accountID("address", address)
	if err != nil {
		return "", err
	}
	return keyHex(keylet.Escrow(id, sequence)), nil
}

// HashPaymentChannel returns the index of a payment channel.
func HashPaymentChannel(address, destination string, sequence uint32) (string, error) {
	src, err := accountID("address", address)
	if err != nil {
		return "", err
	}
	dst, err := accountID("destination", destination)
	if err != nil {
		return "", err
	}
	return keyHex(keylet.PayChannel(src, dst, sequence)), nil
}

// HashTicket returns the index of a ticket.
func HashTicket(address string, ticketSequence uint32) (string, error) {
	id, err := accountID("address", address)
	if err != nil {
		return "", err
	}
	return keyHex(keylet.Ticket(id, ticketSequence)), nil
}

// HashCheck returns the index of the check created with sequence.
func HashCheck(address string, sequence uint32) (string, error) {
	id, err := accountID("address", address)
	if err != nil {
		return "", err
	}
	return keyHex(keylet.Check(id, sequence)), nil
}

// HashDepositPreauth returns the index of the preauthorization address
// grants to authorized. The arguments are not interchangeable.
func HashDepositPreauth(address, authorized string) (string, error) {
	owner, err := accountID("address", address)
	if err != nil {
		return "", err
	}
	auth, err := accountID("authorized", authorized)
	if err != nil {
		return "", err
	}
	return keyHex(keylet.DepositPreauth(owner, auth)), nil
}

// HashNFTokenPage hashes an owner together with the low 96 bits of an
// NFToken ID, given as 24 hex characters.
func HashNFTokenPage(address, tokenIDLow96 string) (string, error) {
	id, err := accountID("address", address)
	if err != nil {
		return "", err
	}
	low, err := fixedHex("nfTokenIDLow96", tokenIDLow96, hex24)
	if err != nil {
		return "", err
	}
	return crypto.HashToHex(keylet.Index(keylet.SpaceNFTokenPage, id[:], low)), nil
}

// HashNFTokenOffer returns the index of the NFToken offer created with sequence.
func HashNFTokenOffer(address string, sequence uint32) (string, error) {
	id, err := accountID("address", address)
	if err != nil {
		return "", err
	}
	return keyHex(keylet.NFTokenOffer(id, sequence)), nil
}

// HashAMMRoot returns the index of the AMM pool for two assets. The result
// does not depend on argument order.
func HashAMMRoot(asset1, asset2 Asset) (string, error) {
	i1, err := asset1.issue("asset1")
	if err != nil {
		return "", err
	}
	i2, err := asset2.issue("asset2")
	if err != nil {
		return "", err
	}
	return keyHex(keylet.AMM(i1, i2)), nil
}

// HashBookDir returns the index of the first page of the order book where
// takers pay takerPays and get takerGets.
func HashBookDir(takerPays, takerGets Asset) (string, error) {
	in, err := takerPays.issue("takerPays")
	if err != nil {
		return "", err
	}
	out, err := takerGets.issue("takerGets")
	if err != nil {
		return "", err
	}
	return keyHex(keylet.BookDir(in, out)), nil
}

// HashOracle hashes an oracle owner with a 64 hex character oracle ID.
func HashOracle(address, oracleID string) (string, error) {
	id, err := accountID("address", address)
	if err != nil {
		return "", err
	}
	oid, err := hash256("oracleID", oracleID)
	if err != nil {
		return "", err
	}
	return crypto.HashToHex(keylet.Index(keylet.SpaceOracle, id[:], oid[:])), nil
}

// HashHook hashes an account with the hash of a hook installed on it.
func HashHook(address, hookHash string) (string, error) {
	id, err := accountID("address", address)
	if err != nil {
		return "", err
	}
	h, err := hash256("hookHash", hookHash)
	if err != nil {
		return "", err
	}
	return crypto.HashToHex(keylet.Index(keylet.SpaceHook, id[:], h[:])), nil
}

// HashHookState returns the index of a hook state entry. The hook hash is
// the state namespace.
func HashHookState(address, hookHash, hookStateKey string) (string, error) {
	id, err := accountID("address", address)
	if err != nil {
		return "", err
	}
	ns, err := hash256("hookHash", hookHash)
	if err != nil {
		return "", err
	}
	key, err := hash256("hookStateKey", hookStateKey)
	if err != nil {
		return "", err
	}
	return keyHex(keylet.HookState(id, key, ns)), nil
}

// HashHookDefinition returns the index of a hook definition.
func HashHookDefinition(hookHash string) (string, error) {
	h, err := hash256("hookHash", hookHash)
	if err != nil {
		return "", err
	}
	return keyHex(keylet.HookDefinition(h)), nil
}

// HashDID returns the index of an account's DID.
func HashDID(address string) (string, error) {
	id, err := accountID("address", address)
	if err != nil {
		return "", err
	}
	return keyHex(keylet.DID(id)), nil
}

// HashBridge returns the index of the bridge entry held by door, which must
// be one of the bridge's two doors.
func HashBridge(bridge Bridge, door string) (string, error) {
	b, err := bridge.keylet()
	if err != nil {
		return "", err
	}
	d, err := accountID("door", door)
	if err != nil {
		return "", err
	}
	k, err := keylet.BridgeKeylet(b, d)
	if err != nil {
		return "", fmt.Errorf("%w: door: %v", ErrInvalidInput, err)
	}
	return keyHex(k), nil
}

// HashXChainOwnedClaimID returns the index of a cross-chain claim ID.
func HashXChainOwnedClaimID(bridge Bridge, claimID uint64) (string, error) {
	b, err := bridge.keylet()
	if err != nil {
		return "", err
	}
	return keyHex(keylet.XChainClaimID(b, claimID)), nil
}

// HashXChainOwnedCreateAccountClaimID returns the index of a cross-chain
// account creation claim.
func HashXChainOwnedCreateAccountClaimID(bridge Bridge, count uint64) (string, error) {
	b, err := bridge.keylet()
	if err != nil {
		return "", err
	}
	return keyHex(keylet.XChainCreateAccountClaimID(b, count)), nil
}

// HashMPTokenIssuance returns the index of the MPToken issuance created by
// address with sequence.
func HashMPTokenIssuance(sequence uint32, address string) (string, error) {
	id, err := accountID("address", address)
	if err != nil {
		return "", err
	}
	return keyHex(keylet.MPTIssuance(keylet.MakeMPTID(sequence, id))), nil
}

// HashMPToken returns the index of address's holding of an MPToken
// issuance. The issuance is given either by its 48 hex character ID or by
// the 64 hex character index of the issuance entry.
func HashMPToken(address, mpTokenIssuanceID string) (string, error) {
	holder, err := accountID("address", address)
	if err != nil {
		return "", err
	}
	var issuanceKey [32]byte
	if v := normalizeHex(mpTokenIssuanceID); hex48.MatchString(v) {
		b, err := fixedHex("mpTokenIssuanceID", v, hex48)
		if err != nil {
			return "", err
		}
		var mptID [24]byte
		copy(mptID[:], b)
		issuanceKey = keylet.MPTIssuance(mptID).Key
	} else if issuanceKey, err = hash256("mpTokenIssuanceID", mpTokenIssuanceID); err != nil {
		return "", err
	}
	return keyHex(keylet.MPToken(issuanceKey, holder)), nil
}

// HashCredential returns the index of a credential. credentialType is the
// hex-encoded credential type.
func HashCredential(subject, issuer, credentialType string) (string, error) {
	s, err := accountID("subject", subject)
	if err != nil {
		return "", err
	}
	i, err := accountID("issuer", issuer)
	if err != nil {
		return "", err
	}
	ct, err := credentialTypeBytes(credentialType)
	if err != nil {
		return "", err
	}
	return keyHex(keylet.Credential(s, i, ct)), nil
}

// HashDelegate returns the index of the permissions address delegates to authorized.
func HashDelegate(address, authorized string) (string, error) {
	a, err := accountID("address", address)
	if err != nil {
		return "", err
	}
	b, err := accountID("authorized", authorized)
	if err != nil {
		return "", err
	}
	return keyHex(keylet.Delegate(a, b)), nil
}

// HashVault returns the index of the vault created with sequence.
func HashVault(address string, sequence uint32) (string, error) {
	id, err := accountID("address", address)
	if err != nil {
		return "", err
	}
	return keyHex(keylet.Vault(id, sequence)), nil
}

// HashPermissionedDomain returns the index of the domain created with sequence.
func HashPermissionedDomain(address string, sequence uint32) (string, error) {
	id, err := accountID("address", address)
	if err != nil {
		return "", err
	}
	return keyHex(keylet.PermissionedDomain(id, sequence)), nil
}

// HashNegativeUNL returns the index of the negative UNL singleton.
func HashNegativeUNL() string {
	return keyHex(keylet.NegativeUNL())
}

// HashAmendments returns the index of the amendments singleton.
func HashAmendments() string {
	return keyHex(keylet.Amendments())
}

// HashFeeSettings returns the index of the fee settings singleton.
func HashFeeSettings() string {
	return keyHex(keylet.Fees())
}

// HashLedgerHashes returns the index of the skip list of recent ledger hashes.
func HashLedgerHashes() string {
	return keyHex(keylet.LedgerHashes())
}

// HashLedgerHashesPage returns the index of the long-term skip list page
// holding the hash of ledger seq.
func HashLedgerHashesPage(seq uint32) string {
	return keyHex(keylet.LedgerHashesPage(seq))
}
