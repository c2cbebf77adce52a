package Trees

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// BST is an unbalanced binary search tree with no repeated values. It is
// height balanced right after Build or Rebalance, but Insert and Delete
// follow the plain BST rules and never rotate, so repeated updates can
// degrade it all the way to a linked list. D below is the current height.
// The zero value is an empty tree ready to use.
// BST isn't safe for concurrent use.
type BST[T constraints.Ordered] struct {
	root *Node[T]
	sz   uint
}

// New returns an empty BST.
func New[T constraints.Ordered]() *BST[T] {
	return new(BST[T])
}

// Build returns a BST holding the values in keys. keys can be in any order
// and can contain duplicates, it isn't modified.
// Time: O(n log n)
func Build[T constraints.Ordered](keys []T) *BST[T] {
	u := new(BST[T])
	u.Build(keys)
	return u
}

// Build replaces the content of u with the values in keys. Duplicates are
// dropped, the rest is sorted and built into a height balanced tree of
// height ceil(log2(n+1))-1.
// Time: O(n log n)
func (u *BST[T]) Build(keys []T) {
	s := slices.Clone(keys)
	slices.Sort(s)
	u.buildSorted(slices.Compact(s))
}

// buildSorted s, which must be ascending without duplicates.
func (u *BST[T]) buildSorted(s []T) {
	u.root, u.sz = build(s), uint(len(s))
}

// Root of the tree, nil if u is empty.
func (u *BST[T]) Root() *Node[T] {
	return u.root
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *BST[T]) Size() uint {
	return u.sz
}

// insert v into the subtree rooting at cur, returns the new root of that
// subtree and whether a node was attached.
func insert[T constraints.Ordered](cur *Node[T], v T) (*Node[T], bool) {
	if cur == nil {
		return &Node[T]{key: v}, true
	}
	inserted := false
	if v < cur.key {
		cur.l, inserted = insert(cur.l, v)
	} else if v > cur.key {
		cur.r, inserted = insert(cur.r, v)
	}
	return cur, inserted
}

// Insert [Tree.Insert]. Recursive.
// The new value always ends up as a leaf, nothing is rebalanced.
// Time: O(D)
func (u *BST[T]) Insert(v T) bool {
	var inserted bool
	if u.root, inserted = insert(u.root, v); inserted {
		u.sz++
	}
	return inserted
}

// remove v from the subtree rooting at cur, returns the new root of that
// subtree and whether v was found. A node with two children takes the key
// of its in-order successor, which is then removed from the right subtree.
func remove[T constraints.Ordered](cur *Node[T], v T) (*Node[T], bool) {
	if cur == nil {
		return nil, false
	}
	deleted := false
	if v < cur.key {
		cur.l, deleted = remove(cur.l, v)
	} else if v > cur.key {
		cur.r, deleted = remove(cur.r, v)
	} else if cur.l == nil {
		return cur.r, true
	} else if cur.r == nil {
		return cur.l, true
	} else {
		cur.key = cur.r.minimum()
		cur.r, deleted = remove(cur.r, cur.key)
	}
	return cur, deleted
}

// Delete [Tree.Delete]. Recursive.
// Time: O(D)
func (u *BST[T]) Delete(v T) bool {
	var deleted bool
	if u.root, deleted = remove(u.root, v); deleted {
		u.sz--
	}
	return deleted
}

// Find the node holding v, nil if v isn't in the tree.
// Time: O(D); Space: O(1)
func (u *BST[T]) Find(v T) *Node[T] {
	cur := u.root
	for cur != nil && cur.key != v {
		if v < cur.key {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return cur
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BST[T]) Has(v T) bool {
	return u.Find(v) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.minimum(), true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.key, true
}

// Keys returns all values in ascending order.
// Time: O(n); Space: O(n)
func (u *BST[T]) Keys() []T {
	ks := make([]T, 0, u.sz)
	for next := u.Iter(); ; {
		k, ok := next()
		if !ok {
			return ks
		}
		ks = append(ks, k)
	}
}

// Iter [Tree.Iter]
// Uses a stack of at most D+1 nodes, the tree itself isn't touched.
// Time: f(): amortized O(1) at each call to the returned function.
func (u *BST[T]) Iter() func() (T, bool) {
	var st []*Node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for n := cur.r; n != nil; n = n.l {
			st = append(st, n)
		}
		return cur.key, true
	}
}

// Corrupt [Tree.Corrupt]
// Time: O(n)
func (u *BST[T]) Corrupt() bool {
	next := u.Iter()
	prev, ok := next()
	var n uint
	for ; ok; n++ {
		var cur T
		if cur, ok = next(); ok && !(prev < cur) {
			return true
		}
		prev = cur
	}
	return n != u.sz
}
