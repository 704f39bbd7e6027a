package Trees

import (
	"fmt"

	"github.com/pingcap/errors"
	"golang.org/x/exp/constraints"
)

var (
	// ErrDuplicateKey matches every *DuplicateKeyError under errors.Is.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound matches every *NotFoundError under errors.Is.
	ErrNotFound = errors.New("key not found")
)

// DuplicateKeyError is returned by Insert when the key is already in the tree.
type DuplicateKeyError[K constraints.Integer] struct {
	Key K
}

func (e *DuplicateKeyError[K]) Error() string {
	return fmt.Sprintf("duplicate key %d", e.Key)
}

func (e *DuplicateKeyError[K]) Is(target error) bool {
	return target == ErrDuplicateKey
}

// NotFoundError is returned by Delete when the key isn't in the tree.
type NotFoundError[K constraints.Integer] struct {
	Key K
}

func (e *NotFoundError[K]) Error() string {
	return fmt.Sprintf("key %d not found", e.Key)
}

func (e *NotFoundError[K]) Is(target error) bool {
	return target == ErrNotFound
}

// CorruptError reports a broken invariant. Verify returns it, and the rebalance loops panic with it when
// they meet a rank shape no case covers. Such a tree can't be repaired.
type CorruptError struct {
	Key    any // key of the node where the problem was found, nil for tree level problems.
	Reason string
}

func (e *CorruptError) Error() string {
	if e.Key == nil {
		return "corrupt tree: " + e.Reason
	}
	return fmt.Sprintf("corrupt tree at key %v: %s", e.Key, e.Reason)
}

// corrupt returns a *CorruptError about the node at i, with a stack trace attached.
func (u *base[K, V, S]) corrupt(i S, reason string) error {
	if i == 0 {
		return errors.WithStack(&CorruptError{Reason: reason})
	}
	return errors.WithStack(&CorruptError{Key: u.ifs[i].k, Reason: reason})
}
