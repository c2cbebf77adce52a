package Trees

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares BST with the ordered containers of https://github.com/google/btree,
// https://github.com/petar/GoLLRB and https://github.com/emirpasic/gods.
// Find is also compared with the hash maps https://github.com/alphadose/haxmap
// and https://github.com/cornelk/hashmap.

const (
	bSize = 1 << 14
	bQryN = bSize / 2
)

var bKeys = rand.New(rand.NewSource(1)).Perm(bSize)

func BenchmarkBST_Build(b *testing.B) {
	for iter := 0; iter < b.N; iter++ {
		Build(bKeys)
	}
}

func BenchmarkBST_Insert(b *testing.B) {
	var t *BST[int]
	for iter := 0; iter < b.N; iter++ {
		t = New[int]()
		for _, k := range bKeys {
			t.Insert(k)
		}
	}
	b.Log(t.Height())
}

func BenchmarkBST_InsertRebalance(b *testing.B) {
	for iter := 0; iter < b.N; iter++ {
		t := New[int]()
		for i, k := range bKeys {
			t.Insert(k)
			if i&(i-1) == 0 {
				t.Rebalance()
			}
		}
	}
}

func BenchmarkBST_Delete(b *testing.B) {
	for iter := 0; iter < b.N; iter++ {
		b.StopTimer()
		t := Build(bKeys)
		b.StartTimer()
		for _, k := range bKeys {
			t.Delete(k)
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	for iter := 0; iter < b.N; iter++ {
		t := btree.NewOrderedG[int](32)
		for _, k := range bKeys {
			t.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	for iter := 0; iter < b.N; iter++ {
		t := llrb.New()
		for _, k := range bKeys {
			t.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

func BenchmarkRedBlack_Insert(b *testing.B) {
	for iter := 0; iter < b.N; iter++ {
		t := redblacktree.NewWithIntComparator()
		for _, k := range bKeys {
			t.Put(k, nil)
		}
	}
}

var sideEff bool

func queries() []int {
	qs := slices.Clone(bKeys[:bQryN])
	for iter := 0; iter < bSize-bQryN; iter++ {
		qs = append(qs, bSize+rand.Intn(bSize))
	}
	return qs
}

func BenchmarkBST_Find(b *testing.B) {
	t, qs := Build(bKeys), queries()
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		for _, q := range qs {
			sideEff = t.Find(q) != nil
		}
	}
}

func BenchmarkBTree_Has(b *testing.B) {
	t, qs := btree.NewOrderedG[int](32), queries()
	for _, k := range bKeys {
		t.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		for _, q := range qs {
			sideEff = t.Has(q)
		}
	}
}

func BenchmarkLLRB_Has(b *testing.B) {
	t, qs := llrb.New(), queries()
	for _, k := range bKeys {
		t.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		for _, q := range qs {
			sideEff = t.Has(llrb.Int(q))
		}
	}
}

func BenchmarkHaxMap_Get(b *testing.B) {
	m, qs := haxmap.New[int, struct{}](), queries()
	for _, k := range bKeys {
		m.Set(k, struct{}{})
	}
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		for _, q := range qs {
			_, sideEff = m.Get(q)
		}
	}
}

func BenchmarkHashMap_Get(b *testing.B) {
	m, qs := hashmap.New[int, struct{}](), queries()
	for _, k := range bKeys {
		m.Set(k, struct{}{})
	}
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		for _, q := range qs {
			_, sideEff = m.Get(q)
		}
	}
}

func BenchmarkBST_IsBalanced(b *testing.B) {
	t := New[int]()
	for _, k := range bKeys {
		t.Insert(k)
	}
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		sideEff = t.IsBalanced()
	}
}
