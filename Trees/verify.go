package Trees

import (
	"fmt"

	Go_Utils "github.com/g-m-twostay/wavl"
)

type verifyFrame[K any, S any] struct {
	i            S
	lo, hi       K
	hasLo, hasHi bool
}

// Verify checks every invariant of the tree: key order, the rank and leaf rules, subtree sizes, parent
// links, the cached minimum and maximum, and that every arena slot is either reachable from the root
// exactly once or on the free list. It returns a *CorruptError with a stack trace for the first violation.
// Time: O(n)
func (u *Tree[K, V, S]) Verify() error {
	if z := u.ifs[0]; z.rank != -1 || z.sz != 0 || z.l != 0 || z.r != 0 {
		return u.corrupt(0, "virtual node was written")
	}
	if u.root != 0 && u.ifs[u.root].p != 0 {
		return u.corrupt(u.root, "root has a parent")
	}
	seen := Go_Utils.New(len(u.ifs))
	var count uint
	st := []verifyFrame[K, S]{{i: u.root}}
	for len(st) > 0 {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		if f.i == 0 {
			continue
		}
		if int(f.i) >= len(u.ifs) {
			return u.corrupt(0, fmt.Sprintf("index %d out of the arena", f.i))
		}
		if seen.Get(int(f.i)) {
			return u.corrupt(f.i, "reached twice")
		}
		seen.Up(int(f.i))
		count++
		n := &u.ifs[f.i]
		if f.hasLo && n.k <= f.lo || f.hasHi && n.k >= f.hi {
			return u.corrupt(f.i, "out of order")
		}
		for _, c := range [2]S{n.l, n.r} {
			if c != 0 && u.ifs[c].p != f.i {
				return u.corrupt(f.i, "child's parent link doesn't point back")
			}
		}
		if sh := u.shapeOf(f.i); !sh.valid() {
			return u.corrupt(f.i, "rank differences "+sh.String())
		}
		if n.rank != 0 && n.l == 0 && n.r == 0 {
			return u.corrupt(f.i, fmt.Sprintf("leaf of rank %d", n.rank))
		}
		if n.sz != u.ifs[n.l].sz+u.ifs[n.r].sz+1 {
			return u.corrupt(f.i, fmt.Sprintf("subtree size %d", n.sz))
		}
		st = append(st,
			verifyFrame[K, S]{i: n.l, lo: f.lo, hasLo: f.hasLo, hi: n.k, hasHi: true},
			verifyFrame[K, S]{i: n.r, lo: n.k, hasLo: true, hi: f.hi, hasHi: f.hasHi})
	}
	if count != uint(u.Size()) {
		return u.corrupt(0, fmt.Sprintf("%d nodes reachable, size is %d", count, u.Size()))
	}
	for i := u.free; i != 0; i = u.ifs[i].l {
		if int(i) >= len(u.ifs) || seen.Get(int(i)) {
			return u.corrupt(0, fmt.Sprintf("free index %d is in use", i))
		}
		seen.Up(int(i))
	}
	if used := seen.Count(); used != len(u.ifs)-1 {
		return u.corrupt(0, fmt.Sprintf("%d of %d slots are neither in the tree nor free", len(u.ifs)-1-used, len(u.ifs)-1))
	}
	if u.min != u.leftmost(u.root) || u.max != u.rightmost(u.root) {
		return u.corrupt(0, "stale min or max")
	}
	return nil
}
