package comparisons

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/wavl/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares with the ordered maps of https://github.com/google/btree, https://github.com/emirpasic/gods and
// https://github.com/petar/GoLLRB. All of them are given the same keys in the same order.
const (
	benchmarkItemCount = 1 << 16
	btreeDegree        = 32
)

var rg = *rand.New(rand.NewSource(0))

func keys(b *testing.B) []int {
	b.Helper()
	all := make([]int, benchmarkItemCount)
	for i := range all {
		all[i] = rg.Int()
	}
	return all
}

type pair struct {
	k int
	v string
}

func lessPair(a, b pair) bool {
	return a.k < b.k
}

func (a pair) Less(than llrb.Item) bool {
	return a.k < than.(pair).k
}

func setupWAVL(b *testing.B, all []int) *Trees.Index {
	b.Helper()
	m := Trees.NewIndex()
	for _, k := range all {
		m.Insert(k, "")
	}
	return m
}

func setupBTree(b *testing.B, all []int) *btree.BTreeG[pair] {
	b.Helper()
	m := btree.NewG[pair](btreeDegree, lessPair)
	for _, k := range all {
		m.ReplaceOrInsert(pair{k: k})
	}
	return m
}

func setupRB(b *testing.B, all []int) *redblacktree.Tree {
	b.Helper()
	m := redblacktree.NewWithIntComparator()
	for _, k := range all {
		m.Put(k, "")
	}
	return m
}

func setupAVL(b *testing.B, all []int) *avltree.Tree {
	b.Helper()
	m := avltree.NewWithIntComparator()
	for _, k := range all {
		m.Put(k, "")
	}
	return m
}

func setupLLRB(b *testing.B, all []int) *llrb.LLRB {
	b.Helper()
	m := llrb.New()
	for _, k := range all {
		m.ReplaceOrInsert(pair{k: k})
	}
	return m
}

func BenchmarkInsertWAVL(b *testing.B) {
	all := keys(b)
	b.ResetTimer()
	for range b.N {
		setupWAVL(b, all)
	}
}

func BenchmarkInsertBTree(b *testing.B) {
	all := keys(b)
	b.ResetTimer()
	for range b.N {
		setupBTree(b, all)
	}
}

func BenchmarkInsertRB(b *testing.B) {
	all := keys(b)
	b.ResetTimer()
	for range b.N {
		setupRB(b, all)
	}
}

func BenchmarkInsertAVL(b *testing.B) {
	all := keys(b)
	b.ResetTimer()
	for range b.N {
		setupAVL(b, all)
	}
}

func BenchmarkInsertLLRB(b *testing.B) {
	all := keys(b)
	b.ResetTimer()
	for range b.N {
		setupLLRB(b, all)
	}
}

func BenchmarkDeleteWAVL(b *testing.B) {
	all := keys(b)
	for range b.N {
		b.StopTimer()
		m := setupWAVL(b, all)
		b.StartTimer()
		for _, k := range all {
			m.Delete(k)
		}
	}
}

func BenchmarkDeleteBTree(b *testing.B) {
	all := keys(b)
	for range b.N {
		b.StopTimer()
		m := setupBTree(b, all)
		b.StartTimer()
		for _, k := range all {
			m.Delete(pair{k: k})
		}
	}
}

func BenchmarkDeleteRB(b *testing.B) {
	all := keys(b)
	for range b.N {
		b.StopTimer()
		m := setupRB(b, all)
		b.StartTimer()
		for _, k := range all {
			m.Remove(k)
		}
	}
}

func BenchmarkDeleteAVL(b *testing.B) {
	all := keys(b)
	for range b.N {
		b.StopTimer()
		m := setupAVL(b, all)
		b.StartTimer()
		for _, k := range all {
			m.Remove(k)
		}
	}
}

func BenchmarkDeleteLLRB(b *testing.B) {
	all := keys(b)
	for range b.N {
		b.StopTimer()
		m := setupLLRB(b, all)
		b.StartTimer()
		for _, k := range all {
			m.Delete(pair{k: k})
		}
	}
}

func BenchmarkSearchWAVL(b *testing.B) {
	all := keys(b)
	m := setupWAVL(b, all)
	b.ResetTimer()
	for range b.N {
		for _, k := range all {
			if !m.Has(k) {
				b.Fail()
			}
		}
	}
}

func BenchmarkSearchBTree(b *testing.B) {
	all := keys(b)
	m := setupBTree(b, all)
	b.ResetTimer()
	for range b.N {
		for _, k := range all {
			if !m.Has(pair{k: k}) {
				b.Fail()
			}
		}
	}
}

func BenchmarkSearchRB(b *testing.B) {
	all := keys(b)
	m := setupRB(b, all)
	b.ResetTimer()
	for range b.N {
		for _, k := range all {
			if _, ok := m.Get(k); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkSearchAVL(b *testing.B) {
	all := keys(b)
	m := setupAVL(b, all)
	b.ResetTimer()
	for range b.N {
		for _, k := range all {
			if _, ok := m.Get(k); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkSearchLLRB(b *testing.B) {
	all := keys(b)
	m := setupLLRB(b, all)
	b.ResetTimer()
	for range b.N {
		for _, k := range all {
			if !m.Has(pair{k: k}) {
				b.Fail()
			}
		}
	}
}
