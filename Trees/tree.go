package Trees

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Tree is a WAVL (weak AVL) tree mapping distinct keys of type K to values of type V. It balances through
// node ranks: every rank difference between a node and a child is 1 or 2, where the virtual node has
// rank -1, and a leaf has rank at most 1. Every node also keeps the size of its subtree, which makes
// Select and RankOf O(D). D is at most 2*log2(n).
// Nodes live in an arena addressed by indexes of type S; index 0 is the virtual node. S must be wide
// enough to hold the number of slots in the arena, which is the largest size the tree ever had plus 1.
// Insert and Delete return the number of rebalancing steps they did: promotions and demotions count 1
// each, and so do rotations.
// A Tree isn't safe for concurrent use; see Locked.
type Tree[K constraints.Integer, V any, S constraints.Unsigned] struct {
	base[K, V, S]
	mods uint // bumped by every mutation, lets iterators notice them.
}

// Index is the int to string tree.
type Index = Tree[int, string, uint32]

// New returns an empty tree with room for hint nodes before the arena grows.
func New[K constraints.Integer, V any, S constraints.Unsigned](hint S) *Tree[K, V, S] {
	return &Tree[K, V, S]{base: makeBase[K, V, S](hint)}
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return New[int, string, uint32](0)
}

// IsEmpty reports whether the tree holds no keys.
func (u *Tree[K, V, S]) IsEmpty() bool {
	return u.root == 0
}

// Search returns the value stored under k.
// Time: O(D)
func (u *Tree[K, V, S]) Search(k K) (V, bool) {
	i := u.find(k)
	return u.ifs[i].v, i != 0
}

// Has k.
func (u *Tree[K, V, S]) Has(k K) bool {
	return u.find(k) != 0
}

// KeysInOrder returns all keys in ascending order.
func (u *Tree[K, V, S]) KeysInOrder() []K {
	ks := make([]K, 0, u.Size())
	for k := range u.All() {
		ks = append(ks, k)
	}
	return ks
}

// ValuesInOrder returns all values ordered by their keys.
func (u *Tree[K, V, S]) ValuesInOrder() []V {
	vs := make([]V, 0, u.Size())
	for _, v := range u.All() {
		vs = append(vs, v)
	}
	return vs
}

// Reserve room for n more nodes, so the next n inserts don't grow the arena.
func (u *Tree[K, V, S]) Reserve(n S) {
	u.ifs = slices.Grow(u.ifs, int(n))
}

// Clear the tree, keeping the arena's capacity.
func (u *Tree[K, V, S]) Clear() {
	u.base.Clear()
	u.mods++
}
