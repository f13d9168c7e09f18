package shamap

import (
	"encoding/hex"
	"fmt"
	"math/bits"

	crypto "github.com/LeJamon/goXRPLhash/internal/crypto/common"
	"github.com/LeJamon/goXRPLhash/internal/protocol"
)

const branchFactor = 16

// InnerNode has 16 child slots selected by the key nibble at its depth.
// It owns its children exclusively.
type InnerNode struct {
	depth    uint8
	children [branchFactor]TreeNode
	isBranch uint16
}

func NewInnerNode(depth uint8) *InnerNode {
	return &InnerNode{depth: depth}
}

func (n *InnerNode) treeNode() {}

// IsLeaf returns false, inner nodes are never leaves.
func (n *InnerNode) IsLeaf() bool {
	return false
}

// Type returns the NodeType for this node.
func (n *InnerNode) Type() NodeType {
	return NodeTypeInner
}

// Depth returns how many key nibbles were consumed above this node.
func (n *InnerNode) Depth() uint8 {
	return n.depth
}

// IsEmpty returns true if the node has no active branches.
func (n *InnerNode) IsEmpty() bool {
	return n.isBranch == 0
}

// IsEmptyBranch returns true if the given branch index is empty.
func (n *InnerNode) IsEmptyBranch(index int) bool {
	return (n.isBranch & (1 << index)) == 0
}

// BranchCount returns the number of active branches.
func (n *InnerNode) BranchCount() int {
	return bits.OnesCount16(n.isBranch)
}

// Child returns the child node at the given branch index, nil if the slot is empty.
func (n *InnerNode) Child(index int) (TreeNode, error) {
	if index < 0 || index >= branchFactor {
		return nil, fmt.Errorf("%w: %d", ErrSlotOutOfRange, index)
	}
	return n.children[index], nil
}

// setChild places child in a slot and keeps the branch bitmap in step.
func (n *InnerNode) setChild(index int, child TreeNode) error {
	if index < 0 || index >= branchFactor {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, index)
	}
	n.children[index] = child
	if child != nil {
		n.isBranch |= 1 << index
	} else {
		n.isBranch &^= 1 << index
	}
	return nil
}

// addLeaf inserts leaf below this node. On error the subtree is left as it was.
func (n *InnerNode) addLeaf(leaf *LeafNode) error {
	if int(n.depth) >= MaxDepth {
		return ErrMaxDepthReached
	}
	key := leaf.Key()
	branch := SelectBranch(n.depth, key)

	existing, err := n.Child(branch)
	if err != nil {
		return err
	}

	switch child := existing.(type) {
	case nil:
		return n.setChild(branch, leaf)
	case *InnerNode:
		return child.addLeaf(leaf)
	case *LeafNode:
		if child.Key() == key {
			return fmt.Errorf("%w: %X", ErrCollision, key)
		}
		// Push both leaves one level down. The new node is only attached
		// once both inserts succeeded.
		split := NewInnerNode(n.depth + 1)
		if err := split.addLeaf(child); err != nil {
			return err
		}
		if err := split.addLeaf(leaf); err != nil {
			return err
		}
		return n.setChild(branch, split)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownNodeType, existing)
	}
}

// Hash recalculates the node's hash from its children.
// All 16 child hashes are included in slot order, with the zero hash for
// empty branches. An empty node hashes to zero without hashing anything.
func (n *InnerNode) Hash() ([32]byte, error) {
	if n.isBranch == 0 {
		return [32]byte{}, nil
	}

	var buf [branchFactor * 32]byte
	for i := 0; i < branchFactor; i++ {
		child := n.children[i]
		if child == nil {
			continue
		}
		h, err := child.Hash()
		if err != nil {
			return [32]byte{}, err
		}
		copy(buf[i*32:], h[:])
	}

	return crypto.Sha512Half(protocol.HashPrefixInnerNode[:], buf[:]), nil
}

// String returns a human-readable representation of the node.
func (n *InnerNode) String(id NodeID) string {
	s := fmt.Sprintf("InnerNode ID: %s\nDepth: %d\nBranches:\n", id.String(), n.depth)
	for i := 0; i < branchFactor; i++ {
		if n.children[i] == nil {
			continue
		}
		h, err := n.children[i].Hash()
		if err != nil {
			s += fmt.Sprintf("  %d: <%v>\n", i, err)
			continue
		}
		s += fmt.Sprintf("  %d: %s\n", i, hex.EncodeToString(h[:]))
	}
	return s
}
