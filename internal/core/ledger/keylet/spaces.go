package keylet

import "fmt"

// LedgerSpace is the namespace mixed into a ledger entry's index hash. Each
// entry type has one, a single character whose code point is written as a
// 2-byte big-endian value in front of the hashed fields.
// These correspond to the LedgerNameSpace enum in rippled.
type LedgerSpace uint16

const (
	SpaceAccount                         LedgerSpace = 'a' // Account root
	SpaceDirNode                         LedgerSpace = 'd' // Directory node page
	SpaceGeneratorMap                    LedgerSpace = 'g' // Generator map (deprecated)
	SpaceRippleState                     LedgerSpace = 'r' // Trust line
	SpaceOffer                           LedgerSpace = 'o' // Offer
	SpaceOwnerDir                        LedgerSpace = 'O' // Owner directory
	SpaceBookDir                         LedgerSpace = 'B' // Order book directory
	SpaceContract                        LedgerSpace = 'c' // Contract (unused)
	SpaceSkipList                        LedgerSpace = 's' // Skip list
	SpaceEscrow                          LedgerSpace = 'u' // Escrow
	SpaceAmendment                       LedgerSpace = 'f' // Amendments (singleton)
	SpaceFeeSettings                     LedgerSpace = 'e' // Fee settings (singleton)
	SpaceTicket                          LedgerSpace = 'T' // Ticket
	SpaceSignerList                      LedgerSpace = 'S' // Signer list
	SpacePaychan                         LedgerSpace = 'x' // Payment channel
	SpaceCheck                           LedgerSpace = 'C' // Check
	SpaceDepositPreauth                  LedgerSpace = 'p' // Deposit preauthorization
	SpaceNegativeUNL                     LedgerSpace = 'N' // Negative UNL (singleton)
	SpaceNFTokenPage                     LedgerSpace = 'P' // NFToken page
	SpaceNFTokenOffer                    LedgerSpace = 'q' // NFToken offer
	SpaceNFTokenBuyOffers                LedgerSpace = 'h' // NFToken buy offer directory
	SpaceNFTokenSellOffers               LedgerSpace = 'i' // NFToken sell offer directory
	SpaceAMMRoot                         LedgerSpace = 'A' // AMM
	SpaceBridge                          LedgerSpace = 'H' // XChain bridge
	SpaceXChainOwnedClaimID              LedgerSpace = 'Q' // XChain claim ID
	SpaceXChainOwnedCreateAccountClaimID LedgerSpace = 'K' // XChain create account claim
	SpaceDID                             LedgerSpace = 'I' // DID
	SpaceOracle                          LedgerSpace = 'R' // Oracle
	SpaceMPTokenIssuance                 LedgerSpace = '~' // MPToken issuance
	SpaceMPToken                         LedgerSpace = 't' // MPToken
	SpaceCredential                      LedgerSpace = 'D' // Credential
	SpacePermissionedDomain              LedgerSpace = 'm' // Permissioned domain
	SpaceVault                           LedgerSpace = 'V' // Vault
	SpaceDelegate                        LedgerSpace = 'E' // Delegate

	// Hooks-enabled networks reuse letters that mean something else on the
	// XRP Ledger mainnet.
	SpaceHook           LedgerSpace = 'H' // Hooks attached to an account
	SpaceHookState      LedgerSpace = 'v' // Hook state entry
	SpaceHookDefinition LedgerSpace = 'D' // Hook definition
)

var spacesByName = map[string]LedgerSpace{
	"account":                         SpaceAccount,
	"dirNode":                         SpaceDirNode,
	"generatorMap":                    SpaceGeneratorMap,
	"rippleState":                     SpaceRippleState,
	"offer":                           SpaceOffer,
	"ownerDir":                        SpaceOwnerDir,
	"bookDir":                         SpaceBookDir,
	"contract":                        SpaceContract,
	"skipList":                        SpaceSkipList,
	"escrow":                          SpaceEscrow,
	"amendment":                       SpaceAmendment,
	"feeSettings":                     SpaceFeeSettings,
	"ticket":                          SpaceTicket,
	"signerList":                      SpaceSignerList,
	"paychan":                         SpacePaychan,
	"check":                           SpaceCheck,
	"depositPreauth":                  SpaceDepositPreauth,
	"negativeUNL":                     SpaceNegativeUNL,
	"nfTokenPage":                     SpaceNFTokenPage,
	"nfTokenOffer":                    SpaceNFTokenOffer,
	"nfTokenBuyOffers":                SpaceNFTokenBuyOffers,
	"nfTokenSellOffers":               SpaceNFTokenSellOffers,
	"ammRoot":                         SpaceAMMRoot,
	"bridge":                          SpaceBridge,
	"xchainOwnedClaimID":              SpaceXChainOwnedClaimID,
	"xchainOwnedCreateAccountClaimID": SpaceXChainOwnedCreateAccountClaimID,
	"did":                             SpaceDID,
	"oracle":                          SpaceOracle,
	"mpTokenIssuance":                 SpaceMPTokenIssuance,
	"mpToken":                         SpaceMPToken,
	"credential":                      SpaceCredential,
	"permissionedDomain":              SpacePermissionedDomain,
	"vault":                           SpaceVault,
	"delegate":                        SpaceDelegate,
	"hook":                            SpaceHook,
	"hookState":                       SpaceHookState,
	"hookDefinition":                  SpaceHookDefinition,
}

// SpaceByName looks a namespace up by its camel-case entry name.
func SpaceByName(name string) (LedgerSpace, bool) {
	s, ok := spacesByName[name]
	return s, ok
}

// SpaceNames returns every known namespace name. The order is unspecified.
func SpaceNames() []string {
	names := make([]string, 0, len(spacesByName))
	for name := range spacesByName {
		names = append(names, name)
	}
	return names
}

// Bytes returns the 2-byte big-endian prefix.
func (s LedgerSpace) Bytes() []byte {
	return []byte{byte(s >> 8), byte(s)}
}

// Hex renders the code point as 4 upper-case hex digits, e.g. "0061" for 'a'.
func (s LedgerSpace) Hex() string {
	return fmt.Sprintf("%04X", uint16(s))
}

// String returns the namespace character.
func (s LedgerSpace) String() string {
	return string(rune(s))
}
