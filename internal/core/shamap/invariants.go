package shamap

import (
	"errors"
	"fmt"
)

// ErrInvariant is wrapped by every InvariantError.
var ErrInvariant = errors.New("SHAMap invariant violated")

// InvariantError represents an error found during invariant checking.
type InvariantError struct {
	NodeID      NodeID
	Description string
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation at %s: %s", e.NodeID.String(), e.Description)
}

// Unwrap returns ErrInvariant.
func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}

// InvariantCheckResult contains the results of an invariant check.
type InvariantCheckResult struct {
	Errors            []*InvariantError
	LeavesChecked     int
	InnerNodesChecked int
}

// HasErrors returns true if any invariant violations were found.
func (r *InvariantCheckResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// String returns a summary of the invariant check results.
func (r *InvariantCheckResult) String() string {
	if r.HasErrors() {
		return fmt.Sprintf("InvariantCheck: FAILED - %d errors found (%d inner, %d leaves)",
			len(r.Errors), r.InnerNodesChecked, r.LeavesChecked)
	}
	return fmt.Sprintf("InvariantCheck: PASSED (%d inner, %d leaves)",
		r.InnerNodesChecked, r.LeavesChecked)
}

// Invariants checks the structure of the map and returns the first
// violation found, or nil. It verifies:
//   - the branch bitmap of every inner node matches its occupied slots
//   - every non-root inner node has at least two reachable leaves
//   - every inner node sits at the depth of its position
//   - every leaf's key agrees with the nibble path leading to it
//   - the leaf count matches Len
func (sm *SHAMap) Invariants() error {
	res := sm.CheckInvariants()
	if res.HasErrors() {
		return res.Errors[0]
	}
	return nil
}

// CheckInvariants runs every check and collects all violations.
func (sm *SHAMap) CheckInvariants() *InvariantCheckResult {
	res := &InvariantCheckResult{}
	if sm.root == nil {
		res.Errors = append(res.Errors, &InvariantError{Description: "nil root"})
		return res
	}
	sm.checkInner(sm.root, NewRootNodeID(), res)
	if res.LeavesChecked != sm.count {
		res.Errors = append(res.Errors, &InvariantError{
			Description: fmt.Sprintf("found %d leaves, map reports %d", res.LeavesChecked, sm.count),
		})
	}
	return res
}

// checkInner returns the number of leaves below node.
func (sm *SHAMap) checkInner(node *InnerNode, id NodeID, res *InvariantCheckResult) int {
	res.InnerNodesChecked++
	fail := func(format string, args ...any) {
		res.Errors = append(res.Errors, &InvariantError{NodeID: id, Description: fmt.Sprintf(format, args...)})
	}

	if node.depth != id.Depth {
		fail("inner node depth %d does not match position depth %d", node.depth, id.Depth)
	}

	leaves := 0
	for i := 0; i < branchFactor; i++ {
		child := node.children[i]
		if (child == nil) != node.IsEmptyBranch(i) {
			fail("branch bitmap disagrees with slot %d", i)
		}
		if child == nil {
			continue
		}
		childID, err := id.ChildNodeID(i)
		if err != nil {
			fail("slot %d: %v", i, err)
			continue
		}
		switch c := child.(type) {
		case *InnerNode:
			leaves += sm.checkInner(c, childID, res)
		case *LeafNode:
			res.LeavesChecked++
			leaves++
			if !keyMatchesPath(c.Key(), childID) {
				fail("leaf %X does not belong under slot %d", c.Key(), i)
			}
		default:
			fail("slot %d holds %T", i, child)
		}
	}

	if !id.IsRoot() && leaves < 2 {
		fail("non-root inner node has %d leaves below it", leaves)
	}
	return leaves
}

// keyMatchesPath reports whether the first id.Depth nibbles of key equal
// those of id.ID.
func keyMatchesPath(key [32]byte, id NodeID) bool {
	for d := uint8(0); d < id.Depth; d++ {
		if SelectBranch(d, key) != SelectBranch(d, id.ID) {
			return false
		}
	}
	return true
}
