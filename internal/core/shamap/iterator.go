package shamap

// Iterator provides forward iteration over SHAMap leaves in key order.
// Usage:
//
//	iter := sm.Begin()
//	for iter.Next() {
//	    item := iter.Item()
//	    // use item
//	}
//	if err := iter.Err(); err != nil {
//	    // handle error
//	}
type Iterator struct {
	stack   []iterStackEntry
	current *LeafNode
	nodeID  NodeID
	err     error
}

type iterStackEntry struct {
	node   *InnerNode
	nodeID NodeID
	branch int // next branch to visit
}

// Begin returns an iterator positioned before the first leaf.
func (sm *SHAMap) Begin() *Iterator {
	return &Iterator{
		stack: []iterStackEntry{{node: sm.root, nodeID: NewRootNodeID()}},
	}
}

// Next advances the iterator to the next leaf.
// Returns true if there is a next leaf, false if iteration is complete or an error occurred.
func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.branch >= branchFactor {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		branch := top.branch
		top.branch++

		child, err := top.node.Child(branch)
		if err != nil {
			it.err = err
			return false
		}
		if child == nil {
			continue
		}
		childID, err := top.nodeID.ChildNodeID(branch)
		if err != nil {
			it.err = err
			return false
		}

		switch n := child.(type) {
		case *InnerNode:
			it.stack = append(it.stack, iterStackEntry{node: n, nodeID: childID})
		case *LeafNode:
			it.current = n
			it.nodeID = childID
			return true
		}
	}
	it.current = nil
	return false
}

// Leaf returns the current leaf. Only valid after Next() returns true.
func (it *Iterator) Leaf() *LeafNode {
	return it.current
}

// Item returns the current item. Only valid after Next() returns true.
func (it *Iterator) Item() *Item {
	if it.current == nil {
		return nil
	}
	return it.current.Item()
}

// NodeID returns the position of the slot holding the current leaf.
func (it *Iterator) NodeID() NodeID {
	return it.nodeID
}

// Err returns any error that occurred during iteration.
func (it *Iterator) Err() error {
	return it.err
}
