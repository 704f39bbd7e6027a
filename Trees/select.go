package Trees

// Select the value of the i-th smallest key, starting from 1. Returns (zero, false) if i isn't in [1, Size()].
// The walk starts at the minimum and climbs only until the subtree holds i keys, so small ranks are cheap.
// Time: O(D)
func (u *Tree[K, V, S]) Select(i S) (V, bool) {
	if j := u.selectIndex(i); j != 0 {
		return u.ifs[j].v, true
	}
	return *new(V), false
}

// SelectKey is Select that also returns the key.
func (u *Tree[K, V, S]) SelectKey(i S) (K, V, bool) {
	if j := u.selectIndex(i); j != 0 {
		return u.ifs[j].k, u.ifs[j].v, true
	}
	return 0, *new(V), false
}

func (u *base[K, V, S]) selectIndex(i S) S {
	if i == 0 || i > u.Size() {
		return 0
	}
	cur := u.min
	for u.ifs[cur].sz < i {
		cur = u.ifs[cur].p
	}
	for {
		n := &u.ifs[cur]
		if l := u.ifs[n.l].sz + 1; l == i {
			return cur
		} else if l < i {
			i -= l
			cur = n.r
		} else {
			cur = n.l
		}
	}
}

// RankOf k, starting from 1. If k isn't found, returns (r, false) where r is the number of keys smaller
// than k, i.e. the rank k would have minus 1.
// Time: O(D)
func (u *Tree[K, V, S]) RankOf(k K) (S, bool) {
	var ra S = 0
	for i := u.root; i != 0; {
		if n := &u.ifs[i]; k < n.k {
			i = n.l
		} else if k > n.k {
			ra += u.ifs[n.l].sz + 1
			i = n.r
		} else {
			return ra + u.ifs[n.l].sz + 1, true
		}
	}
	return ra, false
}

// Min returns the value of the smallest key.
// Time: O(1)
func (u *Tree[K, V, S]) Min() (V, bool) {
	return u.ifs[u.min].v, u.min != 0
}

// Max returns the value of the largest key.
// Time: O(1)
func (u *Tree[K, V, S]) Max() (V, bool) {
	return u.ifs[u.max].v, u.max != 0
}

// MinKey returns the smallest key.
func (u *Tree[K, V, S]) MinKey() (K, bool) {
	return u.ifs[u.min].k, u.min != 0
}

// MaxKey returns the largest key.
func (u *Tree[K, V, S]) MaxKey() (K, bool) {
	return u.ifs[u.max].k, u.max != 0
}

// Predecessor of k. If strict is true, result<k if found; otherwise, result<=k.
func (u *Tree[K, V, S]) Predecessor(k K, strict bool) (pk K, pv V, ok bool) {
	for i := u.root; i != 0; {
		if n := &u.ifs[i]; k < n.k || strict && k == n.k {
			i = n.l
		} else {
			pk, pv, ok = n.k, n.v, true
			i = n.r
		}
	}
	return
}

// Successor of k. If strict is true, result>k if found; otherwise, result>=k.
func (u *Tree[K, V, S]) Successor(k K, strict bool) (sk K, sv V, ok bool) {
	for i := u.root; i != 0; {
		if n := &u.ifs[i]; k > n.k || strict && k == n.k {
			i = n.r
		} else {
			sk, sv, ok = n.k, n.v, true
			i = n.l
		}
	}
	return
}
