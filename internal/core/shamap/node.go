package shamap

import "fmt"

// NodeType identifies how a node is hashed. The values follow rippled's
// SHAMapNodeType codes.
type NodeType int

const (
	NodeTypeInner NodeType = iota + 1
	NodeTypeTransactionNoMetadata
	NodeTypeTransactionMetadata
	NodeTypeAccountState
)

// String returns a string representation of the node type
func (t NodeType) String() string {
	switch t {
	case NodeTypeInner:
		return "inner"
	case NodeTypeTransactionNoMetadata:
		return "transaction"
	case NodeTypeTransactionMetadata:
		return "transaction+metadata"
	case NodeTypeAccountState:
		return "account_state"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// TreeNode is either an *InnerNode or a *LeafNode. The set is closed: the
// unexported marker keeps other packages from adding variants, so a type
// switch over the two is exhaustive.
type TreeNode interface {
	// Hash walks the subtree and returns its hash. Nothing is memoized.
	Hash() ([32]byte, error)
	IsLeaf() bool
	Type() NodeType
	String(id NodeID) string

	treeNode()
}
