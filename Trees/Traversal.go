package Trees

import (
	"strconv"

	"github.com/g-m-twostay/bst-utils/Queues"
	"golang.org/x/exp/constraints"
)

// Order in which a traversal visits the nodes.
type Order uint8

const (
	LevelOrder Order = iota // breadth first, left to right on each level
	PreOrder                // node, left subtree, right subtree
	InOrder                 // left subtree, node, right subtree; ascending keys
	PostOrder               // left subtree, right subtree, node
)

func (o Order) String() string {
	switch o {
	case LevelOrder:
		return "level-order"
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	}
	return "Order(" + strconv.Itoa(int(o)) + ")"
}

// Visitor is called once for every node of a traversal. It may read the node
// but must not modify the tree.
type Visitor[T constraints.Ordered] func(*Node[T])

// Traverse visits every node of the tree exactly once, in the given order.
// Returns *MissingVisitorError if visit is nil and *UnknownOrderError if o
// isn't one of the defined orders; in both cases nothing is visited.
func (u *BST[T]) Traverse(o Order, visit Visitor[T]) error {
	if o > PostOrder {
		return &UnknownOrderError{o}
	}
	if visit == nil {
		return &MissingVisitorError{o}
	}
	switch o {
	case LevelOrder:
		u.levelOrder(visit)
	case PreOrder:
		preOrder(u.root, visit)
	case InOrder:
		inOrder(u.root, visit)
	case PostOrder:
		postOrder(u.root, visit)
	}
	return nil
}

// LevelOrder is Traverse(LevelOrder, visit).
func (u *BST[T]) LevelOrder(visit Visitor[T]) error {
	return u.Traverse(LevelOrder, visit)
}

// PreOrder is Traverse(PreOrder, visit). Recursive.
func (u *BST[T]) PreOrder(visit Visitor[T]) error {
	return u.Traverse(PreOrder, visit)
}

// InOrder is Traverse(InOrder, visit). Recursive.
func (u *BST[T]) InOrder(visit Visitor[T]) error {
	return u.Traverse(InOrder, visit)
}

// PostOrder is Traverse(PostOrder, visit). Recursive.
func (u *BST[T]) PostOrder(visit Visitor[T]) error {
	return u.Traverse(PostOrder, visit)
}

// levelOrder uses a queue seeded with the root; the queue holds at most one
// full level plus the children pushed so far.
func (u *BST[T]) levelOrder(visit Visitor[T]) {
	if u.root == nil {
		return
	}
	q := Queues.New[*Node[T]](u.sz/2 + 1)
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		visit(cur)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
}

func preOrder[T constraints.Ordered](cur *Node[T], visit Visitor[T]) {
	if cur != nil {
		visit(cur)
		preOrder(cur.l, visit)
		preOrder(cur.r, visit)
	}
}

func inOrder[T constraints.Ordered](cur *Node[T], visit Visitor[T]) {
	if cur != nil {
		inOrder(cur.l, visit)
		visit(cur)
		inOrder(cur.r, visit)
	}
}

func postOrder[T constraints.Ordered](cur *Node[T], visit Visitor[T]) {
	if cur != nil {
		postOrder(cur.l, visit)
		postOrder(cur.r, visit)
		visit(cur)
	}
}
