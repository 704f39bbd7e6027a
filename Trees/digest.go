package Trees

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"
)

// Digest hashes the structure of the tree: every node's key, value, rank and subtree size in pre-order,
// with virtual children marked. Two trees have the same digest when they have the same shape and contents,
// regardless of where their nodes sit in the arena.
// Time: O(n)
func (u *Tree[K, V, S]) Digest() uint64 {
	buf := make([]byte, 0, 64*int(u.Size()+1))
	st := []S{u.root}
	for len(st) > 0 {
		i := st[len(st)-1]
		st = st[:len(st)-1]
		if i == 0 {
			buf = append(buf, 0)
			continue
		}
		n := &u.ifs[i]
		buf = append(buf, 1, byte(n.rank))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(n.k))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(n.sz))
		buf = fmt.Appendf(buf, "%v", n.v)
		buf = append(buf, 0xff)
		st = append(st, n.r, n.l)
	}
	return xxhash.Sum64(buf)
}
