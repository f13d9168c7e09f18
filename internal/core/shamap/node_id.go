package shamap

import (
	"encoding/hex"
	"fmt"
)

// MaxDepth is the number of nibbles in a 256-bit key, the deepest a leaf can sit.
const MaxDepth = 64

// NodeID represents a node's position in the SHAMap.
type NodeID struct {
	Depth uint8    // How many nibbles of the ID are relevant
	ID    [32]byte // The key prefix leading to the node
}

// NewRootNodeID returns the ID of the root node.
func NewRootNodeID() NodeID {
	return NodeID{}
}

// IsRoot returns true if this node is the root.
func (n NodeID) IsRoot() bool {
	return n.Depth == 0
}

// ChildNodeID returns the child node ID for the given branch (0-15).
func (n NodeID) ChildNodeID(branch int) (NodeID, error) {
	if branch < 0 || branch >= branchFactor {
		return NodeID{}, fmt.Errorf("%w: %d", ErrSlotOutOfRange, branch)
	}
	if int(n.Depth) >= MaxDepth {
		return NodeID{}, ErrMaxDepthReached
	}
	newID := n.ID
	byteIndex := n.Depth / 2
	if n.Depth%2 == 0 {
		newID[byteIndex] = (newID[byteIndex] & 0x0F) | byte(branch<<4)
	} else {
		newID[byteIndex] = (newID[byteIndex] & 0xF0) | byte(branch)
	}
	return NodeID{Depth: n.Depth + 1, ID: newID}, nil
}

// SelectBranch returns the nibble of key at the given depth, which is the
// child slot the key falls into at that depth.
func SelectBranch(depth uint8, key [32]byte) int {
	byteIndex := depth / 2
	if int(byteIndex) >= len(key) {
		return -1
	}
	b := key[byteIndex]
	if depth%2 == 0 {
		return int(b >> 4)
	}
	return int(b & 0x0F)
}

// String returns a human-readable form of the node ID.
func (n NodeID) String() string {
	if n.IsRoot() {
		return "NodeID(root)"
	}
	return fmt.Sprintf("NodeID(depth=%d, id=%s)", n.Depth, hex.EncodeToString(n.ID[:]))
}
