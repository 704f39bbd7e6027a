package Trees

import "fmt"

// shape of a node: the rank differences to its left and right child.
type shape struct {
	l, r int8
}

func (s shape) String() string {
	return fmt.Sprintf("{%d,%d}", s.l, s.r)
}

// is reports whether s equals {a,b} in either order.
func (s shape) is(a, b int8) bool {
	return s.l == a && s.r == b || s.l == b && s.r == a
}

// valid under the rank rule.
func (s shape) valid() bool {
	return (s.l == 1 || s.l == 2) && (s.r == 1 || s.r == 2)
}

// toward returns the rank difference on side sd.
func (s shape) toward(sd side) int8 {
	if sd == right {
		return s.r
	}
	return s.l
}

// rebalanceCase is the rebalance step chosen for a node. Every reachable shape maps to exactly one case;
// caseCorrupt marks the rest.
type rebalanceCase uint8

const (
	caseCorrupt rebalanceCase = iota
	caseOK
	// insert side
	casePromote
	caseInsertRotate
	caseInsertDoubleRotate
	// delete side
	caseLeafDemote
	caseDemote
	caseDoubleDemote
	caseDeleteRotate
	caseDeleteDoubleRotate
	numCases
)

var caseNames = [numCases]string{
	caseCorrupt:            "corrupt",
	caseOK:                 "ok",
	casePromote:            "promote",
	caseInsertRotate:       "insert rotate",
	caseInsertDoubleRotate: "insert double rotate",
	caseLeafDemote:         "leaf demote",
	caseDemote:             "demote",
	caseDoubleDemote:       "double demote",
	caseDeleteRotate:       "delete rotate",
	caseDeleteDoubleRotate: "delete double rotate",
}

func (c rebalanceCase) String() string {
	if c < numCases {
		return caseNames[c]
	}
	return fmt.Sprintf("rebalanceCase(%d)", uint8(c))
}

// cost of performing c, counted in promotions, demotions and rotations.
var caseCosts = [numCases]int{
	casePromote:            1,
	caseInsertRotate:       2, // rotate, demote
	caseInsertDoubleRotate: 5, // 2 rotates, 2 demotes, promote
	caseLeafDemote:         1,
	caseDemote:             1,
	caseDoubleDemote:       2,
	caseDeleteRotate:       3, // rotate, demote, promote
	caseDeleteDoubleRotate: 7, // 2 rotates, 3 demotes, 2 promotes
}

// classifyInsert picks the step for a node of shape n whose children have shapes l and r, after an insertion
// below it. The returned side is the heavy side, the one whose child has the smaller rank difference.
func classifyInsert(n, l, r shape) (rebalanceCase, side) {
	switch {
	case n.valid():
		return caseOK, left
	case n.is(0, 1):
		return casePromote, n.l != 0
	case n.l == 0 && n.r == 2:
		if l == (shape{1, 2}) {
			return caseInsertRotate, left
		} else if l == (shape{2, 1}) {
			return caseInsertDoubleRotate, left
		}
	case n.l == 2 && n.r == 0:
		if r == (shape{2, 1}) {
			return caseInsertRotate, right
		} else if r == (shape{1, 2}) {
			return caseInsertDoubleRotate, right
		}
	}
	return caseCorrupt, left
}

// classifyDelete picks the step for a node of shape n whose children have shapes l and r, after a deletion
// below it. leaf tells whether both children are virtual. The returned side is the heavy side.
func classifyDelete(n, l, r shape, leaf bool) (rebalanceCase, side) {
	switch {
	case leaf && n == (shape{2, 2}):
		return caseLeafDemote, left
	case n.valid():
		return caseOK, left
	case n.is(3, 2):
		return caseDemote, n.l == 3
	case n.l == 3 && n.r == 1:
		return classifySibling(r, right)
	case n.l == 1 && n.r == 3:
		return classifySibling(l, left)
	}
	return caseCorrupt, left
}

// classifySibling decides the {3,1} delete cases by the shape y of the sibling on side s.
func classifySibling(y shape, s side) (rebalanceCase, side) {
	switch {
	case y == (shape{2, 2}):
		return caseDoubleDemote, s
	case y.toward(s) == 1 && y.valid():
		return caseDeleteRotate, s
	case y.toward(s) == 2 && y.toward(s.flip()) == 1:
		return caseDeleteDoubleRotate, s
	}
	return caseCorrupt, s
}
