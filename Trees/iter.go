package Trees

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Iterator walks a Tree in ascending key order. It holds a stack of at most D indexes, and it can be reset
// and reused. If the tree is modified during the iteration, the iterator resumes after the last key it
// returned, so no key is returned twice. Once Next returned false, it keeps returning false until Reset
// or Seek.
type Iterator[K constraints.Integer, V any, S constraints.Unsigned] struct {
	t    *Tree[K, V, S]
	st   []S
	cur  S
	mods uint
	last K    // last key returned, or the Seek target.
	from int8 // 0: start from the smallest key; 1: resume at last; 2: resume after last.
	done bool
}

// Iter returns an iterator positioned before the smallest key.
func (u *Tree[K, V, S]) Iter() *Iterator[K, V, S] {
	it := &Iterator[K, V, S]{t: u}
	it.Reset()
	return it
}

// Reset the iterator to before the smallest key.
func (it *Iterator[K, V, S]) Reset() {
	it.st, it.cur, it.from, it.done, it.mods = it.st[:0], 0, 0, false, it.t.mods
	it.pushLeft(it.t.root)
}

// Seek positions the iterator before the smallest key that's >= k.
func (it *Iterator[K, V, S]) Seek(k K) {
	it.st, it.cur, it.from, it.done, it.mods = it.st[:0], 0, 1, false, it.t.mods
	it.last = k
	it.seek(k, false)
}

// seek pushes the path to the first key >= k, or > k if strict.
func (it *Iterator[K, V, S]) seek(k K, strict bool) {
	for i := it.t.root; i != 0; {
		if n := &it.t.ifs[i]; k < n.k || !strict && k == n.k {
			it.st = append(it.st, i)
			i = n.l
		} else {
			i = n.r
		}
	}
}

func (it *Iterator[K, V, S]) pushLeft(i S) {
	for ; i != 0; i = it.t.ifs[i].l {
		it.st = append(it.st, i)
	}
}

// Next advances to the next key. It returns false once the keys are exhausted.
func (it *Iterator[K, V, S]) Next() bool {
	if it.done {
		return false
	}
	if it.mods != it.t.mods {
		it.st, it.cur, it.mods = it.st[:0], 0, it.t.mods
		if it.from == 0 {
			it.pushLeft(it.t.root)
		} else {
			it.seek(it.last, it.from == 2)
		}
	} else if it.cur != 0 {
		it.pushLeft(it.t.ifs[it.cur].r)
	}
	if len(it.st) == 0 {
		it.cur, it.done = 0, true
		return false
	}
	it.cur, it.st = it.st[len(it.st)-1], it.st[:len(it.st)-1]
	it.last, it.from = it.t.ifs[it.cur].k, 2
	return true
}

// Key at the current position. Only meaningful after Next returned true.
func (it *Iterator[K, V, S]) Key() K {
	return it.t.ifs[it.cur].k
}

// Value at the current position. Only meaningful after Next returned true.
func (it *Iterator[K, V, S]) Value() V {
	return it.t.ifs[it.cur].v
}

// All returns an iterator over all key value pairs in ascending key order.
func (u *Tree[K, V, S]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := u.Iter(); it.Next(); {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Ascend returns an iterator over the pairs with keys >= from in ascending key order.
func (u *Tree[K, V, S]) Ascend(from K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := u.Iter()
		for it.Seek(from); it.Next(); {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}
