package Trees

// Tree represents an ordered set of unique values implemented using nodes.
// Receivers that have a bool as the second return value indicate whether
// the first return value is defined. For example, calling Minimum on
// an empty tree returns (x T, false bool), and x should not be used.
// Methods implemented recursively are noted, otherwise they are iterative.
// None of the implementations are safe for concurrent use; a Tree modified
// by one goroutine while another reads it must be synchronized externally.
type Tree[T any] interface {
	//Insert v to the Tree. Returns false if v was already present.
	Insert(v T) bool
	//Delete v from the Tree. Returns false if v wasn't present.
	Delete(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//Iter returns a closure f acting like an iterator over the values in
	//ascending order. val, valid=f() where val is meaningful only if valid
	//is true. valid can't turn true after it first became false.
	//The tree must not be modified while f is in use.
	Iter() func() (T, bool)
	//IsBalanced reports whether the heights of the two subtrees of every
	//node differ by at most 1.
	IsBalanced() bool
	//Rebalance restores the tree to a height balanced shape.
	Rebalance()
	//Corrupt returns whether some node violates the ordering of the tree.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}
