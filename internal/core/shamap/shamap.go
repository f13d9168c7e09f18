package shamap

import (
	"encoding/hex"
	"errors"
	"fmt"

	crypto "github.com/LeJamon/goXRPLhash/internal/crypto/common"
)

// Common errors
var (
	ErrCollision       = errors.New("tried to add an item that is already in the SHAMap")
	ErrSlotOutOfRange  = errors.New("invalid slot: must be between 0 and 15")
	ErrUnknownNodeType = errors.New("unknown node type")
	ErrInvalidKey      = errors.New("invalid SHAMap key: expected 64 hex characters")
	ErrInvalidData     = errors.New("invalid SHAMap item data")
	ErrMaxDepthReached = errors.New("maximum tree depth reached")
)

// SHAMap is a 16-ary Merkle radix trie over 256-bit keys. It is built fresh
// for each computation and is not safe for concurrent mutation.
type SHAMap struct {
	root  *InnerNode
	count int
}

// New creates a new empty SHAMap.
func New() *SHAMap {
	return &SHAMap{root: NewInnerNode(0)}
}

// Len returns the number of items in the map.
func (sm *SHAMap) Len() int {
	return sm.count
}

// AddItem inserts a leaf of the given kind. Inserting a key that is already
// present fails with ErrCollision and leaves the map unchanged.
func (sm *SHAMap) AddItem(key [32]byte, data []byte, kind NodeType) error {
	if err := sm.root.addLeaf(NewLeafNode(NewItem(key, data), kind)); err != nil {
		return err
	}
	sm.count++
	return nil
}

// AddHexItem is AddItem for hex-encoded tags and data, the form ledger JSON
// carries them in. The tag must be exactly 64 hex characters.
func (sm *SHAMap) AddHexItem(tag, dataHex string, kind NodeType) error {
	if len(tag) != 64 {
		return fmt.Errorf("%w: got %d characters", ErrInvalidKey, len(tag))
	}
	key, err := crypto.HexToHash(tag)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	data, err := hex.DecodeString(dataHex)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return sm.AddItem(key, data, kind)
}

// Hash returns the root hash of the SHAMap. An empty map hashes to zero.
func (sm *SHAMap) Hash() ([32]byte, error) {
	return sm.root.Hash()
}

// HexHash returns the root hash as 64 upper-case hex characters.
func (sm *SHAMap) HexHash() (string, error) {
	h, err := sm.Hash()
	if err != nil {
		return "", err
	}
	return crypto.HashToHex(h), nil
}

// Root returns the root inner node.
func (sm *SHAMap) Root() *InnerNode {
	return sm.root
}

// Walk calls fn for every leaf in ascending key order, together with the
// position of the slot holding it. Returning an error from fn stops the walk.
func (sm *SHAMap) Walk(fn func(id NodeID, leaf *LeafNode) error) error {
	it := sm.Begin()
	for it.Next() {
		if err := fn(it.NodeID(), it.Leaf()); err != nil {
			return err
		}
	}
	return it.Err()
}
