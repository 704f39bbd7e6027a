package Trees

import "golang.org/x/exp/constraints"

// OrderedIndex is the set of operations shared by Tree and Locked.
// Receivers that has a bool as the last return value indicates whether
// the other return values are defined. For example, if calling Min on
// an empty tree, the return value will be (x V, false bool), and x should
// not be used.
// Ranks count from 1: Select(1) is the smallest key and Select(Size()) is
// the largest.
type OrderedIndex[K constraints.Integer, V any, S constraints.Unsigned] interface {
	//IsEmpty reports whether there're no keys.
	IsEmpty() bool
	//Search the value stored under k.
	Search(k K) (V, bool)
	//Insert k with value v. Returns the number of rebalancing steps, or an
	//error matching ErrDuplicateKey if k is present.
	Insert(k K, v V) (int, error)
	//Delete k. Returns the number of rebalancing steps, or an error
	//matching ErrNotFound if k isn't present.
	Delete(k K) (int, error)
	//Min is the value of the smallest key.
	Min() (V, bool)
	//Max is the value of the largest key.
	Max() (V, bool)
	//KeysInOrder returns all keys ascending.
	KeysInOrder() []K
	//ValuesInOrder returns all values ordered by their keys.
	ValuesInOrder() []V
	//Size is the number of keys.
	Size() S
	//Select the value of the i-th smallest key.
	//1<=i<=Size()
	Select(i S) (V, bool)
	//RankOf k according to in-order, starting from 1.
	RankOf(k K) (S, bool)
	//Verify the invariants of the structure, returning the first violation.
	Verify() error
}

var (
	_ OrderedIndex[int, string, uint32] = (*Tree[int, string, uint32])(nil)
	_ OrderedIndex[int, string, uint32] = (*Locked[int, string, uint32])(nil)
)
