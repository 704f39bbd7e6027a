package Trees

import (
	"slices"
	"strconv"
	"testing"
)

var (
	bAddN uint32 = 1000000
	bQryN uint32 = bAddN / 2
)

func randKeys(n uint32) []int {
	all := make([]int, n)
	for i := range all {
		all[i] = rg.Int()
	}
	return all
}

func create(b *testing.B, all []int) *Index {
	b.Helper()
	tree := New[int, string, uint32](bAddN)
	for _, v := range all {
		tree.Insert(v, "")
	}
	return tree
}

func BenchmarkInsert0(b *testing.B) {
	all := randKeys(bAddN)
	b.ResetTimer()
	for range b.N {
		tree := New[int, string, uint32](0)
		for _, v := range all {
			tree.Insert(v, "")
		}
	}
}

func BenchmarkInsert1(b *testing.B) {
	all := randKeys(bAddN)
	b.ResetTimer()
	for range b.N {
		tree := New[int, string, uint32](bAddN)
		for _, v := range all {
			tree.Insert(v, "")
		}
	}
}

func BenchmarkInsertSorted(b *testing.B) {
	all := randKeys(bAddN)
	slices.Sort(all)
	b.ResetTimer()
	for range b.N {
		tree := New[int, string, uint32](bAddN)
		for _, v := range all {
			tree.Insert(v, "")
		}
	}
}

func BenchmarkDelete(b *testing.B) {
	all := randKeys(bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := create(b, all)
		rg.Shuffle(len(all), func(i, j int) {
			all[i], all[j] = all[j], all[i]
		})
		b.StartTimer()
		for _, v := range all {
			tree.Delete(v)
		}
	}
}

var (
	sideEff  string
	sideEffB bool
)

func BenchmarkSearch(b *testing.B) {
	all := randKeys(bAddN)
	tree := create(b, all)
	rg.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})
	b.ResetTimer()
	for range b.N {
		for _, v := range all[:bQryN] {
			sideEff, sideEffB = tree.Search(v)
		}
		for range bAddN - bQryN {
			sideEff, sideEffB = tree.Search(rg.Int())
		}
	}
}

func BenchmarkSelect(b *testing.B) {
	tree := create(b, randKeys(bAddN))
	b.ResetTimer()
	for range b.N {
		for range bQryN {
			sideEff, sideEffB = tree.Select(uint32(rg.Intn(int(tree.Size()))) + 1)
		}
	}
}

func BenchmarkIterate(b *testing.B) {
	tree := create(b, randKeys(bAddN))
	b.ResetTimer()
	for range b.N {
		for _, v := range tree.All() {
			sideEff = v
		}
	}
}

// Insert and delete a sliding window of keys, which keeps the size constant and makes the arena recycle.
func BenchmarkChurn(b *testing.B) {
	const window = 1 << 14
	tree := New[int, string, uint32](window)
	for i := range window {
		tree.Insert(i, strconv.Itoa(i))
	}
	b.ResetTimer()
	for i := range b.N {
		tree.Insert(window+i, "")
		tree.Delete(i)
	}
}
