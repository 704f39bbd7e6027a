package Trees

import (
	"golang.org/x/exp/constraints"
)

// Locked is a Tree guarded by a read-write lock. Lookups, Select and iteration share the read lock;
// Insert, Delete and Clear take the write lock.
// Build with the deadlock tag to detect lock misuse at runtime.
type Locked[K constraints.Integer, V any, S constraints.Unsigned] struct {
	mu RWMutex
	t  *Tree[K, V, S]
}

// NewLocked returns an empty Locked tree with room for hint nodes.
func NewLocked[K constraints.Integer, V any, S constraints.Unsigned](hint S) *Locked[K, V, S] {
	return &Locked[K, V, S]{t: New[K, V, S](hint)}
}

func (u *Locked[K, V, S]) IsEmpty() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.IsEmpty()
}

func (u *Locked[K, V, S]) Search(k K) (V, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Search(k)
}

func (u *Locked[K, V, S]) Insert(k K, v V) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Insert(k, v)
}

func (u *Locked[K, V, S]) Delete(k K) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Delete(k)
}

func (u *Locked[K, V, S]) Min() (V, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Min()
}

func (u *Locked[K, V, S]) Max() (V, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Max()
}

func (u *Locked[K, V, S]) KeysInOrder() []K {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.KeysInOrder()
}

func (u *Locked[K, V, S]) ValuesInOrder() []V {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.ValuesInOrder()
}

func (u *Locked[K, V, S]) Size() S {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Size()
}

func (u *Locked[K, V, S]) Select(i S) (V, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Select(i)
}

func (u *Locked[K, V, S]) RankOf(k K) (S, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.RankOf(k)
}

func (u *Locked[K, V, S]) Verify() error {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Verify()
}

func (u *Locked[K, V, S]) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.t.Clear()
}

// Range calls f on the pairs with keys >= from in ascending order until f returns false.
// f runs under the read lock, so it must not modify u.
func (u *Locked[K, V, S]) Range(from K, f func(K, V) bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for k, v := range u.t.Ascend(from) {
		if !f(k, v) {
			return
		}
	}
}
