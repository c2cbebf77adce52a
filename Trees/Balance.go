package Trees

import "golang.org/x/exp/constraints"

// Height of the subtree rooting at n, counted in edges: -1 for an empty
// subtree, 0 for a leaf. Nothing is cached, every call walks the subtree.
// Recursive. Time: O(n)
func Height[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return -1
	}
	return 1 + max(Height(n.l), Height(n.r))
}

// Height of the whole tree, -1 if u is empty.
func (u *BST[T]) Height() int {
	return Height(u.root)
}

// Depth returns the number of edges from the root to n, or -1 if n isn't a
// node of u. The search follows the path n's key would take from the root
// and then compares nodes, so a node of another tree holding a key that's
// also in u still gives -1.
// Time: O(D); Space: O(1)
func (u *BST[T]) Depth(n *Node[T]) int {
	if n == nil {
		return -1
	}
	d := 0
	for cur := u.root; cur != nil; d++ {
		if cur == n {
			return d
		} else if n.key < cur.key {
			cur = cur.l
		} else if n.key > cur.key {
			cur = cur.r
		} else {
			break
		}
	}
	return -1
}

// isBalanced checks every node of the subtree rooting at n, recomputing the
// heights of both children at each one.
// Recursive. Time: O(n*D)
func isBalanced[T constraints.Ordered](n *Node[T]) bool {
	if n == nil {
		return true
	}
	if d := Height(n.l) - Height(n.r); d < -1 || d > 1 {
		return false
	}
	return isBalanced(n.l) && isBalanced(n.r)
}

// IsBalanced [Tree.IsBalanced]. Recursive.
// An empty tree is balanced.
// Time: O(n*D)
func (u *BST[T]) IsBalanced() bool {
	return isBalanced(u.root)
}

// Rebalance [Tree.Rebalance]
// The keys are collected in order and rebuilt the same way as Build does,
// so the resulting shape only depends on the set of keys and calling it
// again changes nothing.
// Time: O(n)
func (u *BST[T]) Rebalance() {
	ks := make([]T, 0, u.sz)
	inOrder(u.root, func(n *Node[T]) {
		ks = append(ks, n.key)
	})
	u.buildSorted(ks)
}
