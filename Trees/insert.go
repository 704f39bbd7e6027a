package Trees

// Insert k with value v. Returns the number of rebalancing steps performed, or a *DuplicateKeyError
// if k is already present, in which case the tree isn't modified.
// Time: O(D)
func (u *Tree[K, V, S]) Insert(k K, v V) (int, error) {
	p, s := S(0), left
	for i := u.root; i != 0; {
		if n := &u.ifs[i]; k < n.k {
			p, s, i = i, left, n.l
		} else if k > n.k {
			p, s, i = i, right, n.r
		} else {
			return 0, &DuplicateKeyError[K]{k}
		}
	}
	i := u.alloc(k, v)
	u.link(p, i, s)
	if u.min == 0 || k < u.ifs[u.min].k {
		u.min = i
	}
	if u.max == 0 || k > u.ifs[u.max].k {
		u.max = i
	}
	u.mods++
	u.fixSizes(p)
	return u.insertRebalance(p), nil
}

// insertRebalance walks up from i restoring the rank rule after a leaf was attached below i.
func (u *base[K, V, S]) insertRebalance(i S) (cost int) {
	for i != 0 {
		n := u.shapeOf(i)
		c, s := classifyInsert(n, u.shapeOf(u.ifs[i].l), u.shapeOf(u.ifs[i].r))
		switch c {
		case caseOK:
			return
		case casePromote:
			u.ifs[i].rank++
			i = u.ifs[i].p
		case caseInsertRotate:
			u.raise(i, s)
			u.ifs[i].rank--
			return cost + caseCosts[c]
		case caseInsertDoubleRotate:
			y := u.child(i, s)
			z := u.raise(y, s.flip())
			u.raise(i, s)
			u.ifs[i].rank--
			u.ifs[y].rank--
			u.ifs[z].rank++
			return cost + caseCosts[c]
		case caseCorrupt, caseLeafDemote, caseDemote, caseDoubleDemote, caseDeleteRotate, caseDeleteDoubleRotate, numCases:
			panic(u.corrupt(i, "insert rebalance at shape "+n.String()))
		}
		cost += caseCosts[c]
	}
	return
}
