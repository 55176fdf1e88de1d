package t2048

import "fmt"

// Cell is one of the 16 fixed board slots. Cells never move; merging and
// sliding transfer values between two fixed positions.
type Cell struct {
	Row   int
	Col   int
	Value int // 0 = empty, otherwise a power of two >= 2
}

// Empty reports whether the cell holds no tile.
func (c Cell) Empty() bool {
	return c.Value == 0
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)=%d", c.Row, c.Col, c.Value)
}

// Collapse applies the pairwise rule to source and target, where target is
// the neighbour ahead of source in the direction of travel:
//
//   - empty source: nothing happens
//   - empty target: the tile slides into target
//   - equal values: target doubles, source empties
//   - different values: nothing happens
//
// It returns the points produced by a merge (the doubled value) and
// whether either cell changed.
func Collapse(source, target *Cell) (gained int, changed bool) {
	switch {
	case source.Empty():
		return 0, false
	case target.Empty():
		target.Value = source.Value
		source.Value = 0
		return 0, true
	case target.Value == source.Value:
		target.Value = source.Value * 2
		source.Value = 0
		return target.Value, true
	default:
		return 0, false
	}
}

// isTileValue reports whether v is a legal cell value.
func isTileValue(v int) bool {
	return v == 0 || (v >= 2 && v&(v-1) == 0)
}
