package Trees

import (
	"golang.org/x/exp/constraints"
)

// A node in the Tree.
// ifs[0] is the virtual node: rank -1, size 0. It's shared by every absent child slot and is never written.
type info[K constraints.Integer, V any, S constraints.Unsigned] struct {
	k       K
	v       V
	l, r, p S // 0 is virtual. For a freed slot, l is the next free index.
	sz      S
	rank    int8
}

// side of a child relative to its parent.
type side bool

const (
	left  side = false
	right side = true
)

func (s side) flip() side {
	return !s
}

type base[K constraints.Integer, V any, S constraints.Unsigned] struct {
	root, free S // free is the beginning of the linked list that contains all the free indexes; info.l represents next.
	min, max   S // cached extremes, 0 when empty.
	ifs        []info[K, V, S]
}

func makeBase[K constraints.Integer, V any, S constraints.Unsigned](hint S) base[K, V, S] {
	ifs := make([]info[K, V, S], 1, uint(hint)+1)
	ifs[0].rank = -1
	return base[K, V, S]{ifs: ifs}
}

func (u *base[K, V, S]) child(i S, s side) S {
	if s == right {
		return u.ifs[i].r
	}
	return u.ifs[i].l
}

// link makes c the s side child of p, setting both directions. p==0 makes c the root.
// The back link is skipped for the virtual node.
func (u *base[K, V, S]) link(p, c S, s side) {
	if p == 0 {
		u.root = c
	} else if s == right {
		u.ifs[p].r = c
	} else {
		u.ifs[p].l = c
	}
	if c != 0 {
		u.ifs[c].p = p
	}
}

// replace the child old of p with c.
func (u *base[K, V, S]) replace(p, old, c S) {
	u.link(p, c, p != 0 && u.ifs[p].r == old)
}

// raise the s side child of n above n, that is rotateRight when s is left and rotateLeft when s is right.
// Only the sizes of n and the raised child are recomputed. Returns the raised child, which takes n's former position.
func (u *base[K, V, S]) raise(n S, s side) S {
	c := u.child(n, s)
	u.replace(u.ifs[n].p, n, c)
	u.link(n, u.child(c, s.flip()), s)
	u.link(c, n, s.flip())
	u.resize(n)
	u.resize(c)
	return c
}

func (u *base[K, V, S]) rotateLeft(n S) S {
	return u.raise(n, right)
}

func (u *base[K, V, S]) rotateRight(n S) S {
	return u.raise(n, left)
}

func (u *base[K, V, S]) resize(i S) {
	n := &u.ifs[i]
	n.sz = u.ifs[n.l].sz + u.ifs[n.r].sz + 1
}

// fixSizes from i up to the root.
func (u *base[K, V, S]) fixSizes(i S) {
	for ; i != 0; i = u.ifs[i].p {
		u.resize(i)
	}
}

// alloc a new leaf. Holes are filled first before appending to the arena.
func (u *base[K, V, S]) alloc(k K, v V) (i S) {
	if i = u.free; i != 0 {
		u.free = u.ifs[i].l
		u.ifs[i] = info[K, V, S]{k: k, v: v, sz: 1}
	} else {
		i = S(len(u.ifs))
		u.ifs = append(u.ifs, info[K, V, S]{k: k, v: v, sz: 1})
	}
	return
}

// release index i to the free list once.
func (u *base[K, V, S]) release(i S) {
	u.ifs[i] = info[K, V, S]{l: u.free}
	u.free = i
}

func (u *base[K, V, S]) find(k K) S {
	for i := u.root; i != 0; {
		if n := &u.ifs[i]; k < n.k {
			i = n.l
		} else if k > n.k {
			i = n.r
		} else {
			return i
		}
	}
	return 0
}

func (u *base[K, V, S]) leftmost(i S) S {
	for i != 0 && u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

func (u *base[K, V, S]) rightmost(i S) S {
	for i != 0 && u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// successor of the node at i in in-order, 0 if there's none.
func (u *base[K, V, S]) successor(i S) S {
	if u.ifs[i].r != 0 {
		return u.leftmost(u.ifs[i].r)
	}
	for p := u.ifs[i].p; p != 0; i, p = p, u.ifs[p].p {
		if u.ifs[p].l == i {
			return p
		}
	}
	return 0
}

// predecessor of the node at i in in-order, 0 if there's none.
func (u *base[K, V, S]) predecessor(i S) S {
	if u.ifs[i].l != 0 {
		return u.rightmost(u.ifs[i].l)
	}
	for p := u.ifs[i].p; p != 0; i, p = p, u.ifs[p].p {
		if u.ifs[p].r == i {
			return p
		}
	}
	return 0
}

func (u *base[K, V, S]) isLeaf(i S) bool {
	return u.ifs[i].l == 0 && u.ifs[i].r == 0
}

// shapeOf the node at i: its rank differences to both children. The virtual node has shape {0,0}.
func (u *base[K, V, S]) shapeOf(i S) shape {
	n := &u.ifs[i]
	return shape{n.rank - u.ifs[n.l].rank, n.rank - u.ifs[n.r].rank}
}

func (u *base[K, V, S]) Size() S {
	return u.ifs[u.root].sz
}

// Clear the tree. The arena keeps its capacity; values are zeroed so they can be collected.
func (u *base[K, V, S]) Clear() {
	clear(u.ifs[1:])
	u.ifs = u.ifs[:1]
	u.root, u.free, u.min, u.max = 0, 0, 0, 0
}
