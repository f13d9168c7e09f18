package shamap

import (
	"encoding/hex"
	"fmt"

	crypto "github.com/LeJamon/goXRPLhash/internal/crypto/common"
	"github.com/LeJamon/goXRPLhash/internal/protocol"
)

// LeafNode holds one item. It is immutable after construction.
type LeafNode struct {
	item *Item
	kind NodeType
}

// NewLeafNode creates a leaf of the given kind. The kind is only checked when
// the leaf is hashed.
func NewLeafNode(item *Item, kind NodeType) *LeafNode {
	return &LeafNode{item: item, kind: kind}
}

func (n *LeafNode) treeNode() {}

func (n *LeafNode) IsLeaf() bool { return true }

func (n *LeafNode) Type() NodeType { return n.kind }

func (n *LeafNode) Item() *Item { return n.item }

func (n *LeafNode) Key() [32]byte { return n.item.Key() }

// Hash computes the leaf hash. The prefix and field order depend on the kind:
//
//	account state:            MLN | data | key
//	transaction, no metadata: TXN | data
//	transaction + metadata:   SND | data | key
func (n *LeafNode) Hash() ([32]byte, error) {
	key := n.item.Key()
	switch n.kind {
	case NodeTypeAccountState:
		return crypto.Sha512Half(protocol.HashPrefixLeafNode[:], n.item.Data(), key[:]), nil
	case NodeTypeTransactionNoMetadata:
		return crypto.Sha512Half(protocol.HashPrefixTransactionID[:], n.item.Data()), nil
	case NodeTypeTransactionMetadata:
		return crypto.Sha512Half(protocol.HashPrefixTxNode[:], n.item.Data(), key[:]), nil
	default:
		return [32]byte{}, fmt.Errorf("%w: leaf %X has type %s", ErrUnknownNodeType, key, n.kind)
	}
}

func (n *LeafNode) String(id NodeID) string {
	key := n.item.Key()
	return fmt.Sprintf("LeafNode ID: %s\nType: %s\nKey: %s\n",
		id.String(), n.kind, hex.EncodeToString(key[:]))
}
