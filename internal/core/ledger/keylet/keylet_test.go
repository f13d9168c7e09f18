package keylet

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLhash/internal/core/ledger/entry"
)

// Account IDs of well-known test addresses.
const (
	accountHb9 = "B5F762798A53D543A014CAF8B297CFF8F2F937E8" // rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh
	accountB5T = "7588B8DBDC8932DC410E8571045466C03F5A6B69" // rB5TihdPbKgMrkFqrqUC3yLdE8hhv4BdeY
	account32U = "53108A1AE9B0CF090CDBD9DDD3AC0D37E81280E4" // r32UufnaCGL82HubijgJGDmdE5hac7ZvLw
	accountDx6 = "8E29E6EF856E317E9AD1F7A7B1D8B44BD0884C9A" // rDx69ebzbowuqztksVDmZXjizTd12BVr4x
	accountLFt = "D978EA7E5E93839B30127E44033AB2E9EF41BED3" // rLFtVprxUEfsH54eCWKsZrEQzMDsx1wqso
	accountnuF = "35DD7DF146893456296BF4061FBE68735D28F328" // rnuF96W4SZoCJmbHYBFoJZpR8eCaxNvekK
)

func accountID(t *testing.T, s string) [20]byte {
	t.Helper()
	var id [20]byte
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, 20)
	copy(id[:], b)
	return id
}

func currency(code string) [20]byte {
	var c [20]byte
	copy(c[12:], code)
	return c
}

func keyHex(k Keylet) string {
	return strings.ToUpper(hex.EncodeToString(k.Key[:]))
}

func TestKnownKeylets(t *testing.T) {
	tests := []struct {
		name   string
		keylet Keylet
		typ    entry.Type
		want   string
	}{
		{
			name:   "account root",
			keylet: Account(accountID(t, accountHb9)),
			typ:    entry.TypeAccountRoot,
			want:   "2B6AC232AA4C4BE41BF49D2459FA4A0347E1B543A4C92FCEE0821C0201E2E9A8",
		},
		{
			name:   "trust line",
			keylet: Line(accountID(t, accountHb9), accountID(t, accountB5T), currency("USD")),
			typ:    entry.TypeRippleState,
			want:   "C683B5BB928F025F1E860D9D69D6C554C2202DE0D45877ADB3077DA4CB9E125C",
		},
		{
			name:   "trust line reversed",
			keylet: Line(accountID(t, accountB5T), accountID(t, accountHb9), currency("USD")),
			typ:    entry.TypeRippleState,
			want:   "C683B5BB928F025F1E860D9D69D6C554C2202DE0D45877ADB3077DA4CB9E125C",
		},
		{
			name:   "offer",
			keylet: Offer(accountID(t, account32U), 137),
			typ:    entry.TypeOffer,
			want:   "03F0AED09DEEE74CEF85CD57A0429D6113507CF759C597BABB4ADB752F734CE3",
		},
		{
			name:   "signer list",
			keylet: SignerList(accountID(t, accountHb9)),
			typ:    entry.TypeSignerList,
			want:   "778365D5180F5DF3016817D1F318527AD7410D83F8636CF48C43E8AF72AB49BF",
		},
		{
			name:   "escrow",
			keylet: Escrow(accountID(t, accountDx6), 84),
			typ:    entry.TypeEscrow,
			want:   "61E8E8ED53FA2CEBE192B23897071E9A75217BF5A410E9CB5B45AAB7AECA567A",
		},
		{
			name:   "payment channel",
			keylet: PayChannel(accountID(t, accountDx6), accountID(t, accountLFt), 82),
			typ:    entry.TypePayChannel,
			want:   "E35708503B3C3143FB522D749AAFCC296E8060F0FB371A9A56FAE0B1ED127366",
		},
		{
			name:   "negative UNL",
			keylet: NegativeUNL(),
			typ:    entry.TypeNegativeUNL,
			want:   "2E8A59AA9D3B5B186B0B9E0F62E6C02587CA74A4D778938E957B6357D364B244",
		},
		{
			name:   "amendments",
			keylet: Amendments(),
			typ:    entry.TypeAmendments,
			want:   "7DB0788C020F02780A673DC74757F23823FA3014C1866E72CC4CD8B226CD6EF4",
		},
		{
			name:   "fee settings",
			keylet: Fees(),
			typ:    entry.TypeFeeSettings,
			want:   "4BC50C9B0D8515D3EAAE1E74B29A95804346C491EE1A95BF25E4AAB854A6A651",
		},
		{
			name:   "skip list",
			keylet: LedgerHashes(),
			typ:    entry.TypeLedgerHashes,
			want:   "B4979A36CDC7F3D3D5C31A4EAE2AC7D7209DDA877588B9AFC66799692AB0D66B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyHex(tt.keylet))
			assert.Equal(t, tt.typ, tt.keylet.Type)
		})
	}
}

func TestBookDirKey(t *testing.T) {
	cnyIssuer := accountID(t, accountnuF)

	// TakerPays=XRP, TakerGets=CNY
	k := BookDir(XRPIssue(), Issue{Currency: currency("CNY"), Account: cnyIssuer})

	assert.Equal(t, "ce67ae4e51228a295ef282f765196323525945b7d2c11bf0", hex.EncodeToString(k.Key[:24]))
	assert.Equal(t, make([]byte, 8), k.Key[24:], "book base has zero quality")
	assert.Equal(t, entry.TypeDirectoryNode, k.Type)

	q := Quality(k, 0x5C038D7EA4C68000)
	assert.Equal(t, "ce67ae4e51228a295ef282f765196323525945b7d2c11bf05c038d7ea4c68000", hex.EncodeToString(q.Key[:]))
}

func TestDirPage(t *testing.T) {
	acct := accountID(t, accountHb9)
	root := OwnerDir(acct)

	assert.Equal(t, root, OwnerDirPage(acct, 0))

	p1 := OwnerDirPage(acct, 1)
	p2 := OwnerDirPage(acct, 2)
	assert.NotEqual(t, root.Key, p1.Key)
	assert.NotEqual(t, p1.Key, p2.Key)
	assert.Equal(t, Index(SpaceDirNode, root.Key[:], []byte{0, 0, 0, 0, 0, 0, 0, 1}), p1.Key)
}

func TestLedgerHashesPage(t *testing.T) {
	assert.Equal(t, LedgerHashesPage(0x10000), LedgerHashesPage(0x1FFFF))
	assert.NotEqual(t, LedgerHashesPage(0xFFFF), LedgerHashesPage(0x10000))
	assert.NotEqual(t, LedgerHashes(), LedgerHashesPage(0))
}

func TestNFTokenPage(t *testing.T) {
	owner := accountID(t, accountHb9)
	var tokenID [32]byte
	for i := range tokenID {
		tokenID[i] = byte(i)
	}

	k := NFTokenPage(owner, tokenID)
	assert.Equal(t, owner[:], k.Key[:20])
	assert.Equal(t, tokenID[20:], k.Key[20:])
	assert.Equal(t, entry.TypeNFTokenPage, k.Type)

	last := NFTokenPageMax(owner)
	assert.Equal(t, owner[:], last.Key[:20])
	for _, b := range last.Key[20:] {
		assert.Equal(t, byte(0xFF), b)
	}
}

func TestAMMOrderIndependence(t *testing.T) {
	usd := Issue{Currency: currency("USD"), Account: accountID(t, accountHb9)}
	eur := Issue{Currency: currency("EUR"), Account: accountID(t, accountB5T)}

	assert.Equal(t, AMM(usd, eur), AMM(eur, usd))
	assert.Equal(t, AMM(XRPIssue(), usd), AMM(usd, XRPIssue()))
	assert.NotEqual(t, AMM(XRPIssue(), usd).Key, AMM(XRPIssue(), eur).Key)

	// EUR sorts before USD, so it is hashed first.
	want := Index(SpaceAMMRoot, eur.Account[:], eur.Currency[:], usd.Account[:], usd.Currency[:])
	assert.Equal(t, want, AMM(usd, eur).Key)
}

func TestBridge(t *testing.T) {
	b := Bridge{
		LockingChainDoor:  accountID(t, accountDx6),
		LockingChainIssue: XRPIssue(),
		IssuingChainDoor:  accountID(t, account32U),
		IssuingChainIssue: XRPIssue(),
	}

	locking, err := BridgeKeylet(b, b.LockingChainDoor)
	require.NoError(t, err)
	issuing, err := BridgeKeylet(b, b.IssuingChainDoor)
	require.NoError(t, err)
	assert.NotEqual(t, locking.Key, issuing.Key)
	assert.Equal(t, entry.TypeBridge, locking.Type)

	_, err = BridgeKeylet(b, accountID(t, accountHb9))
	assert.ErrorIs(t, err, ErrUnknownDoor)

	claim := XChainClaimID(b, 1)
	create := XChainCreateAccountClaimID(b, 1)
	assert.NotEqual(t, claim.Key, create.Key)
	assert.NotEqual(t, claim.Key, XChainClaimID(b, 2).Key)
}

func TestMPToken(t *testing.T) {
	issuer := accountID(t, accountHb9)
	id := MakeMPTID(98765, issuer)
	assert.Equal(t, []byte{0x00, 0x01, 0x81, 0xCD}, id[:4])
	assert.Equal(t, issuer[:], id[4:])

	issuance := MPTIssuance(id)
	assert.Equal(t, Index(SpaceMPTokenIssuance, []byte{0x00, 0x01, 0x81, 0xCD}, issuer[:]), issuance.Key)

	holder := accountID(t, accountB5T)
	token := MPToken(issuance.Key, holder)
	assert.Equal(t, Index(SpaceMPToken, issuance.Key[:], holder[:]), token.Key)
	assert.Equal(t, entry.TypeMPToken, token.Type)
}

func TestDirectionalKeylets(t *testing.T) {
	a := accountID(t, accountHb9)
	b := accountID(t, accountB5T)

	assert.NotEqual(t, DepositPreauth(a, b).Key, DepositPreauth(b, a).Key)
	assert.NotEqual(t, Delegate(a, b).Key, Delegate(b, a).Key)
	assert.NotEqual(t, Credential(a, b, []byte("KYC")).Key, Credential(b, a, []byte("KYC")).Key)
}

func TestSequenceKeyletsDiffer(t *testing.T) {
	a := accountID(t, accountHb9)
	keys := map[[32]byte]string{}
	for name, k := range map[string]Keylet{
		"offer":      Offer(a, 1),
		"escrow":     Escrow(a, 1),
		"check":      Check(a, 1),
		"ticket":     Ticket(a, 1),
		"nftOffer":   NFTokenOffer(a, 1),
		"oracle":     Oracle(a, 1),
		"domain":     PermissionedDomain(a, 1),
		"vault":      Vault(a, 1),
		"did":        DID(a),
		"hook":       Hook(a),
		"ownerDir":   OwnerDir(a),
		"account":    Account(a),
		"signerList": SignerList(a),
	} {
		other, dup := keys[k.Key]
		assert.False(t, dup, "%s collides with %s", name, other)
		keys[k.Key] = name
	}
}

func TestHooks(t *testing.T) {
	a := accountID(t, accountHb9)
	var key, ns, code [32]byte
	key[0], ns[0], code[0] = 1, 2, 3

	assert.Equal(t, Index(SpaceHookState, a[:], key[:], ns[:]), HookState(a, key, ns).Key)
	assert.Equal(t, Index(SpaceHookDefinition, code[:]), HookDefinition(code).Key)
	assert.Equal(t, entry.TypeHook, Hook(a).Type)
}

func TestNFTokenOfferDirectories(t *testing.T) {
	var tokenID [32]byte
	tokenID[31] = 1
	assert.NotEqual(t, NFTokenBuyOffers(tokenID).Key, NFTokenSellOffers(tokenID).Key)
}
