package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goXRPLhash/internal/core/ledger/entry"
	"github.com/LeJamon/goXRPLhash/internal/index"
)

// indexKind is one ledger object index the index command can compute.
type indexKind struct {
	typ   entry.Type
	usage string
	args  int
	hash  func(args []string) (string, error)
}

func singleton(t entry.Type, f func() string) indexKind {
	return indexKind{typ: t, hash: func([]string) (string, error) { return f(), nil }}
}

func uint32Arg(name, value string) (uint32, error) {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an unsigned 32-bit integer, got %q", index.ErrInvalidInput, name, value)
	}
	return uint32(n), nil
}

func uint64Arg(name, value string) (uint64, error) {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an unsigned 64-bit integer, got %q", index.ErrInvalidInput, name, value)
	}
	return n, nil
}

// assetArg parses "XRP" or "CUR/issuer".
func assetArg(value string) index.Asset {
	currency, issuer, _ := strings.Cut(value, "/")
	return index.Asset{Currency: currency, Issuer: issuer}
}

func bridgeArg(args []string) index.Bridge {
	return index.Bridge{
		LockingChainDoor:  args[0],
		LockingChainIssue: assetArg(args[1]),
		IssuingChainDoor:  args[2],
		IssuingChainIssue: assetArg(args[3]),
	}
}

func addressSeq(f func(string, uint32) (string, error)) func([]string) (string, error) {
	return func(args []string) (string, error) {
		seq, err := uint32Arg("sequence", args[1])
		if err != nil {
			return "", err
		}
		return f(args[0], seq)
	}
}

const bridgeUsage = "<locking-door> <locking-asset> <issuing-door> <issuing-asset>"

var indexKinds = map[string]indexKind{
	"account_root": {typ: entry.TypeAccountRoot, usage: "<address>", args: 1, hash: func(a []string) (string, error) { return index.HashAccountRoot(a[0]) }},
	"signer_list":  {typ: entry.TypeSignerList, usage: "<address>", args: 1, hash: func(a []string) (string, error) { return index.HashSignerListID(a[0]) }},
	"owner_dir":    {typ: entry.TypeDirectoryNode, usage: "<address>", args: 1, hash: func(a []string) (string, error) { return index.HashOwnerDir(a[0]) }},
	"did":          {typ: entry.TypeDID, usage: "<address>", args: 1, hash: func(a []string) (string, error) { return index.HashDID(a[0]) }},

	"offer":               {typ: entry.TypeOffer, usage: "<address> <sequence>", args: 2, hash: addressSeq(index.HashOfferID)},
	"escrow":              {typ: entry.TypeEscrow, usage: "<address> <sequence>", args: 2, hash: addressSeq(index.HashEscrow)},
	"ticket":              {typ: entry.TypeTicket, usage: "<address> <ticket-sequence>", args: 2, hash: addressSeq(index.HashTicket)},
	"check":               {typ: entry.TypeCheck, usage: "<address> <sequence>", args: 2, hash: addressSeq(index.HashCheck)},
	"nftoken_offer":       {typ: entry.TypeNFTokenOffer, usage: "<address> <sequence>", args: 2, hash: addressSeq(index.HashNFTokenOffer)},
	"vault":               {typ: entry.TypeVault, usage: "<address> <sequence>", args: 2, hash: addressSeq(index.HashVault)},
	"permissioned_domain": {typ: entry.TypePermissionedDomain, usage: "<address> <sequence>", args: 2, hash: addressSeq(index.HashPermissionedDomain)},

	"trustline": {typ: entry.TypeRippleState, usage: "<address1> <address2> <currency>", args: 3, hash: func(a []string) (string, error) {
		return index.HashTrustline(a[0], a[1], a[2])
	}},
	"payment_channel": {typ: entry.TypePayChannel, usage: "<address> <destination> <sequence>", args: 3, hash: func(a []string) (string, error) {
		seq, err := uint32Arg("sequence", a[2])
		if err != nil {
			return "", err
		}
		return index.HashPaymentChannel(a[0], a[1], seq)
	}},
	"deposit_preauth": {typ: entry.TypeDepositPreauth, usage: "<address> <authorized>", args: 2, hash: func(a []string) (string, error) {
		return index.HashDepositPreauth(a[0], a[1])
	}},
	"delegate": {typ: entry.TypeDelegate, usage: "<address> <authorized>", args: 2, hash: func(a []string) (string, error) {
		return index.HashDelegate(a[0], a[1])
	}},
	"nftoken_page": {typ: entry.TypeNFTokenPage, usage: "<address> <token-id-low-96>", args: 2, hash: func(a []string) (string, error) {
		return index.HashNFTokenPage(a[0], a[1])
	}},
	"amm": {typ: entry.TypeAMM, usage: "<asset1> <asset2>", args: 2, hash: func(a []string) (string, error) {
		return index.HashAMMRoot(assetArg(a[0]), assetArg(a[1]))
	}},
	"book_dir": {typ: entry.TypeDirectoryNode, usage: "<taker-pays> <taker-gets>", args: 2, hash: func(a []string) (string, error) {
		return index.HashBookDir(assetArg(a[0]), assetArg(a[1]))
	}},
	"oracle": {typ: entry.TypeOracle, usage: "<address> <oracle-id>", args: 2, hash: func(a []string) (string, error) {
		return index.HashOracle(a[0], a[1])
	}},
	"hook": {typ: entry.TypeHook, usage: "<address> <hook-hash>", args: 2, hash: func(a []string) (string, error) {
		return index.HashHook(a[0], a[1])
	}},
	"hook_state": {typ: entry.TypeHookState, usage: "<address> <hook-hash> <state-key>", args: 3, hash: func(a []string) (string, error) {
		return index.HashHookState(a[0], a[1], a[2])
	}},
	"hook_definition": {typ: entry.TypeHookDefinition, usage: "<hook-hash>", args: 1, hash: func(a []string) (string, error) {
		return index.HashHookDefinition(a[0])
	}},
	"mptoken_issuance": {typ: entry.TypeMPTokenIssuance, usage: "<sequence> <address>", args: 2, hash: func(a []string) (string, error) {
		seq, err := uint32Arg("sequence", a[0])
		if err != nil {
			return "", err
		}
		return index.HashMPTokenIssuance(seq, a[1])
	}},
	"mptoken": {typ: entry.TypeMPToken, usage: "<address> <issuance-id>", args: 2, hash: func(a []string) (string, error) {
		return index.HashMPToken(a[0], a[1])
	}},
	"credential": {typ: entry.TypeCredential, usage: "<subject> <issuer> <type-hex>", args: 3, hash: func(a []string) (string, error) {
		return index.HashCredential(a[0], a[1], a[2])
	}},
	"bridge": {typ: entry.TypeBridge, usage: bridgeUsage + " <door>", args: 5, hash: func(a []string) (string, error) {
		return index.HashBridge(bridgeArg(a), a[4])
	}},
	"xchain_claim_id": {typ: entry.TypeXChainOwnedClaimID, usage: bridgeUsage + " <claim-id>", args: 5, hash: func(a []string) (string, error) {
		id, err := uint64Arg("claim-id", a[4])
		if err != nil {
			return "", err
		}
		return index.HashXChainOwnedClaimID(bridgeArg(a), id)
	}},
	"xchain_create_account_claim_id": {typ: entry.TypeXChainOwnedCreateAccountClaimID, usage: bridgeUsage + " <count>", args: 5, hash: func(a []string) (string, error) {
		n, err := uint64Arg("count", a[4])
		if err != nil {
			return "", err
		}
		return index.HashXChainOwnedCreateAccountClaimID(bridgeArg(a), n)
	}},
	"ledger_hashes_page": {typ: entry.TypeLedgerHashes, usage: "<ledger-sequence>", args: 1, hash: func(a []string) (string, error) {
		seq, err := uint32Arg("ledger-sequence", a[0])
		if err != nil {
			return "", err
		}
		return index.HashLedgerHashesPage(seq), nil
	}},

	"negative_unl":  singleton(entry.TypeNegativeUNL, index.HashNegativeUNL),
	"amendments":    singleton(entry.TypeAmendments, index.HashAmendments),
	"fee_settings":  singleton(entry.TypeFeeSettings, index.HashFeeSettings),
	"ledger_hashes": singleton(entry.TypeLedgerHashes, index.HashLedgerHashes),
}

func indexHelp() string {
	names := make([]string, 0, len(indexKinds))
	for name := range indexKinds {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		kind := indexKinds[name]
		fmt.Fprintf(&b, "    %-32s %-32s %s\n", name, kind.typ, kind.usage)
	}
	return b.String()
}

var indexShowType bool

var indexCmd = &cobra.Command{
	Use:   "index <kind> [args...]",
	Short: "Compute a ledger object index",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIndex,
}

func init() {
	indexCmd.Long = `Compute the index of a ledger object from its identifying fields.

Assets are written XRP or CUR/issuer, e.g. USD/rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh.

Kinds:
` + indexHelp()
	indexCmd.Flags().BoolVar(&indexShowType, "type", false, "also print the ledger entry type the index addresses")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	kind, ok := indexKinds[args[0]]
	if !ok {
		return fmt.Errorf("unknown index kind %q", args[0])
	}
	rest := args[1:]
	if len(rest) != kind.args {
		return fmt.Errorf("%s takes %d arguments: %s", args[0], kind.args, kind.usage)
	}
	idx, err := kind.hash(rest)
	if err != nil {
		return err
	}
	if indexShowType {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", idx, kind.typ, kind.typ.Code())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), idx)
	return nil
}
