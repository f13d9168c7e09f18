// Package entry names the ledger entry types a keylet can address.
package entry

import "fmt"

// Type is the 16-bit LedgerEntryType code of a ledger entry. Keylets built
// on the same space always carry the same Type.
type Type uint16

const (
	TypeNFTokenOffer                    Type = 0x0037
	TypeCheck                           Type = 0x0043
	TypeHookDefinition                  Type = 0x0044
	TypeHook                            Type = 0x0048
	TypeDID                             Type = 0x0049
	TypeNegativeUNL                     Type = 0x004e
	TypeNFTokenPage                     Type = 0x0050
	TypeSignerList                      Type = 0x0053
	TypeTicket                          Type = 0x0054
	TypeAccountRoot                     Type = 0x0061
	TypeDirectoryNode                   Type = 0x0064
	TypeAmendments                      Type = 0x0066
	TypeLedgerHashes                    Type = 0x0068
	TypeBridge                          Type = 0x0069
	TypeOffer                           Type = 0x006f
	TypeDepositPreauth                  Type = 0x0070
	TypeXChainOwnedClaimID              Type = 0x0071
	TypeRippleState                     Type = 0x0072
	TypeFeeSettings                     Type = 0x0073
	TypeXChainOwnedCreateAccountClaimID Type = 0x0074
	TypeEscrow                          Type = 0x0075
	TypeHookState                       Type = 0x0076
	TypePayChannel                      Type = 0x0078
	TypeAMM                             Type = 0x0079
	TypeMPTokenIssuance                 Type = 0x007e
	TypeMPToken                         Type = 0x007f
	TypeOracle                          Type = 0x0080
	TypeCredential                      Type = 0x0081
	TypePermissionedDomain              Type = 0x0082
	TypeDelegate                        Type = 0x0083
	TypeVault                           Type = 0x0084
)

// names holds the LedgerEntryType spelling used in JSON.
var names = map[Type]string{
	TypeNFTokenOffer:                    "NFTokenOffer",
	TypeCheck:                           "Check",
	TypeHookDefinition:                  "HookDefinition",
	TypeHook:                            "Hook",
	TypeDID:                             "DID",
	TypeNegativeUNL:                     "NegativeUNL",
	TypeNFTokenPage:                     "NFTokenPage",
	TypeSignerList:                      "SignerList",
	TypeTicket:                          "Ticket",
	TypeAccountRoot:                     "AccountRoot",
	TypeDirectoryNode:                   "DirectoryNode",
	TypeAmendments:                      "Amendments",
	TypeLedgerHashes:                    "LedgerHashes",
	TypeBridge:                          "Bridge",
	TypeOffer:                           "Offer",
	TypeDepositPreauth:                  "DepositPreauth",
	TypeXChainOwnedClaimID:              "XChainOwnedClaimID",
	TypeRippleState:                     "RippleState",
	TypeFeeSettings:                     "FeeSettings",
	TypeXChainOwnedCreateAccountClaimID: "XChainOwnedCreateAccountClaimID",
	TypeEscrow:                          "Escrow",
	TypeHookState:                       "HookState",
	TypePayChannel:                      "PayChannel",
	TypeAMM:                             "AMM",
	TypeMPTokenIssuance:                 "MPTokenIssuance",
	TypeMPToken:                         "MPToken",
	TypeOracle:                          "Oracle",
	TypeCredential:                      "Credential",
	TypePermissionedDomain:              "PermissionedDomain",
	TypeDelegate:                        "Delegate",
	TypeVault:                           "Vault",
}

func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%#x)", uint16(t))
}

// Code renders the type the way ledger entry blobs carry it, as four hex
// digits.
func (t Type) Code() string {
	return fmt.Sprintf("%04X", uint16(t))
}
