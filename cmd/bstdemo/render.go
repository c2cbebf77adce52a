package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/g-m-twostay/bst-utils/Trees"
	"github.com/xlab/treeprint"
)

var printed = []struct {
	title string
	order Trees.Order
}{
	{"Level order", Trees.LevelOrder},
	{"Pre-order", Trees.PreOrder},
	{"Post-order", Trees.PostOrder},
	{"In-order", Trees.InOrder},
}

// printOrders writes one line of keys per traversal order.
func printOrders(w io.Writer, tree *Trees.BST[int]) error {
	for _, p := range printed {
		var sb strings.Builder
		err := tree.Traverse(p.order, func(n *Trees.Node[int]) {
			fmt.Fprintf(&sb, " %d", n.Key())
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s:%s\n", p.title, sb.String())
	}
	return nil
}

// prettyPrint draws the tree with the right child of every node listed
// before the left one, so the larger keys are on top.
func prettyPrint(tree *Trees.BST[int]) string {
	root := tree.Root()
	if root == nil {
		return "(empty)\n"
	}
	out := treeprint.NewWithRoot(root.Key())
	addChildren(out, root)
	return out.String()
}

func addChildren(branch treeprint.Tree, n *Trees.Node[int]) {
	if r := n.Right(); r != nil {
		addChildren(branch.AddMetaBranch("R", r.Key()), r)
	}
	if l := n.Left(); l != nil {
		addChildren(branch.AddMetaBranch("L", l.Key()), l)
	}
}
