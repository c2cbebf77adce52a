package Trees

import "golang.org/x/exp/constraints"

// Node is a vertex of a BST. It is owned by its parent, or by the BST if it
// is the root; there's no link back to the parent. A nil *Node is an empty
// subtree, and is what lookups return for a missing key.
// Nodes are handed out read only: callers must not hold on to them across
// calls that modify the tree, as Delete may move keys between nodes.
type Node[T constraints.Ordered] struct {
	key  T
	l, r *Node[T]
}

// Key stored in n.
func (n *Node[T]) Key() T {
	return n.key
}

// Left child, nil if there is none.
func (n *Node[T]) Left() *Node[T] {
	return n.l
}

// Right child, nil if there is none.
func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// minimum of the subtree rooting at n, n!=nil.
// Time: O(D); Space: O(1)
func (n *Node[T]) minimum() T {
	for n.l != nil {
		n = n.l
	}
	return n.key
}

// build a height balanced subtree from the sorted unique slice s. The root
// of each subtree is the lower middle element, so that for a given s the
// shape is always the same.
// Recursive. Time: O(n)
func build[T constraints.Ordered](s []T) *Node[T] {
	if len(s) == 0 {
		return nil
	}
	mid := (len(s) - 1) >> 1
	return &Node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
}
