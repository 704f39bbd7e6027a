package Trees

// Delete k from the tree. Returns the number of rebalancing steps performed, or a *NotFoundError if k
// isn't present, in which case the tree isn't modified.
// Time: O(D)
func (u *Tree[K, V, S]) Delete(k K) (int, error) {
	i := u.find(k)
	if i == 0 {
		return 0, &NotFoundError[K]{k}
	}
	if i == u.min {
		u.min = u.successor(i)
	}
	if i == u.max {
		u.max = u.predecessor(i)
	}
	if u.ifs[i].l != 0 && u.ifs[i].r != 0 {
		// the successor has no left child. Move its payload up and remove its slot instead.
		s := u.leftmost(u.ifs[i].r)
		u.ifs[i].k, u.ifs[i].v = u.ifs[s].k, u.ifs[s].v
		if u.min == s {
			u.min = i
		}
		if u.max == s {
			u.max = i
		}
		i = s
	}
	c := u.ifs[i].l
	if c == 0 {
		c = u.ifs[i].r
	}
	p := u.ifs[i].p
	u.replace(p, i, c)
	u.release(i)
	u.mods++
	u.fixSizes(p)
	if p == 0 {
		return u.deleteRebalance(c), nil
	}
	return u.deleteRebalance(p), nil
}

// deleteRebalance walks up from i restoring the rank and leaf rules after a node was spliced out below i.
func (u *base[K, V, S]) deleteRebalance(i S) (cost int) {
	for i != 0 {
		n := u.shapeOf(i)
		c, s := classifyDelete(n, u.shapeOf(u.ifs[i].l), u.shapeOf(u.ifs[i].r), u.isLeaf(i))
		switch c {
		case caseOK:
			return
		case caseLeafDemote, caseDemote:
			u.ifs[i].rank--
			i = u.ifs[i].p
		case caseDoubleDemote:
			u.ifs[i].rank--
			u.ifs[u.child(i, s)].rank--
			i = u.ifs[i].p
		case caseDeleteRotate:
			y := u.raise(i, s)
			u.ifs[i].rank--
			u.ifs[y].rank++
			// i moved down and may now be a {2,2} leaf, so it's examined again.
		case caseDeleteDoubleRotate:
			y := u.child(i, s)
			z := u.raise(y, s.flip())
			u.raise(i, s)
			u.ifs[i].rank -= 2
			u.ifs[y].rank--
			u.ifs[z].rank += 2
			return cost + caseCosts[c]
		case caseCorrupt, casePromote, caseInsertRotate, caseInsertDoubleRotate, numCases:
			panic(u.corrupt(i, "delete rebalance at shape "+n.String()))
		}
		cost += caseCosts[c]
	}
	return
}
