package Trees

import (
	"strconv"
	"strings"

	"github.com/g-m-twostay/wavl/Queues"
)

// Levels returns the keys of the tree level by level from the root, each level left to right.
func (u *Tree[K, V, S]) Levels() [][]K {
	var lvs [][]K
	if u.root == 0 {
		return lvs
	}
	q := Queues.MakeArrayQueue[S](uint(u.Size()/2 + 1))
	q.Push(u.root)
	for !q.Empty() {
		lv := make([]K, 0, q.Size())
		for range q.Size() {
			i, _ := q.Pop()
			n := &u.ifs[i]
			lv = append(lv, n.k)
			if n.l != 0 {
				q.Push(n.l)
			}
			if n.r != 0 {
				q.Push(n.r)
			}
		}
		lvs = append(lvs, lv)
	}
	return lvs
}

// String renders the tree one level per line, every node as key:rank.
func (u *Tree[K, V, S]) String() string {
	var sb strings.Builder
	if u.root == 0 {
		return "(empty)"
	}
	q := Queues.MakeArrayQueue[S](uint(u.Size()/2 + 1))
	q.Push(u.root)
	for !q.Empty() {
		for j, w := uint(0), q.Size(); j < w; j++ {
			i, _ := q.Pop()
			n := &u.ifs[i]
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatInt(int64(n.k), 10))
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(int(n.rank)))
			for _, c := range [2]S{n.l, n.r} {
				if c != 0 {
					q.Push(c)
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
