package t2048

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// Compaction selects how a move compacts each line.
type Compaction int

const (
	// CompactionSinglePass walks each line once, collapsing three adjacent
	// pairs from the far side toward the edge. Multi-tile slides may stop
	// short and a freshly merged tile can merge again within the same pass.
	CompactionSinglePass Compaction = iota

	// CompactionFull slides every tile as far as it goes and merges each
	// tile at most once, edge-first.
	CompactionFull
)

func (c Compaction) String() string {
	switch c {
	case CompactionSinglePass:
		return config.CompactionSinglePass
	case CompactionFull:
		return config.CompactionFull
	default:
		return fmt.Sprintf("Compaction(%d)", int(c))
	}
}

// Valid reports whether c names a known algorithm.
func (c Compaction) Valid() bool {
	return c == CompactionSinglePass || c == CompactionFull
}

// ParseCompaction maps a config name to a Compaction.
func ParseCompaction(name string) (Compaction, error) {
	switch name {
	case "", config.CompactionSinglePass:
		return CompactionSinglePass, nil
	case config.CompactionFull:
		return CompactionFull, nil
	}
	return 0, fmt.Errorf("t2048: unknown compaction %q", name)
}

// scan describes how one direction walks the board: which axis a line
// follows and which way tiles travel along it.
type scan struct {
	rows bool // lines are rows (Left/Right) rather than columns
	step int  // -1 travels toward index 0, +1 toward index Size-1
}

func scanFor(dir Direction) scan {
	switch dir {
	case DirLeft:
		return scan{rows: true, step: -1}
	case DirRight:
		return scan{rows: true, step: +1}
	case DirUp:
		return scan{rows: false, step: -1}
	case DirDown:
		return scan{rows: false, step: +1}
	}
	panic(fmt.Sprintf("t2048: invalid direction %d", int(dir)))
}

// at converts (line, position along line) to board coordinates.
func (s scan) at(line, i int) (row, col int) {
	if s.rows {
		return line, i
	}
	return i, line
}

// sources lists the source positions of the pairwise pass in visiting
// order; each source collapses into source+step.
// Traveling toward 0 visits 3,2,1; traveling toward Size-1 visits 0,1,2.
func (s scan) sources() [Size - 1]int {
	var out [Size - 1]int
	for k := range out {
		if s.step < 0 {
			out[k] = Size - 1 - k
		} else {
			out[k] = k
		}
	}
	return out
}

// edgeFirst lists line positions starting at the edge tiles travel toward.
func (s scan) edgeFirst() [Size]int {
	var out [Size]int
	for k := range out {
		if s.step < 0 {
			out[k] = k
		} else {
			out[k] = Size - 1 - k
		}
	}
	return out
}

// Move executes one move: a compaction pass over all four lines, then a
// spawn pass of one tile. A terminal board ignores moves. Returns whether
// the compaction pass changed any cell; the spawn happens either way.
// Panics on an invalid direction.
func (b *Board) Move(dir Direction) bool {
	s := scanFor(dir)
	if b.terminal {
		return false
	}

	changed := b.compact(s)
	b.moves++
	b.SpawnTwos(1)
	return changed
}

// compact runs the configured compaction over every line.
func (b *Board) compact(s scan) bool {
	changed := false
	for line := range Size {
		if b.compaction == CompactionFull {
			changed = b.compactLine(s, line) || changed
		} else {
			changed = b.passLine(s, line) || changed
		}
	}
	return changed
}

// passLine runs exactly one pass of pairwise collapses over a line.
func (b *Board) passLine(s scan, line int) bool {
	changed := false
	for _, i := range s.sources() {
		source := b.cell(s.at(line, i))
		target := b.cell(s.at(line, i+s.step))
		changed = b.collapse(source, target) || changed
	}
	return changed
}

// compactLine slides and merges a line fully toward its edge.
func (b *Board) compactLine(s scan, line int) bool {
	order := s.edgeFirst()

	var values [Size]int
	for k, i := range order {
		values[k] = b.cell(s.at(line, i)).Value
	}

	result, gained := slideRow(values)
	if result == values {
		return false
	}

	for k, i := range order {
		b.cell(s.at(line, i)).Value = result[k]
	}
	b.score += gained
	return true
}

// slideRow slides and merges a line toward index 0.
// Returns the updated line and the score gained from merges.
func slideRow(row [Size]int) (result [Size]int, score int) {
	writePos := 0
	mergedAt := -1

	for i := range Size {
		if row[i] == 0 {
			continue
		}

		if writePos > 0 && mergedAt != writePos-1 && result[writePos-1] == row[i] {
			result[writePos-1] *= 2
			score += result[writePos-1]
			mergedAt = writePos - 1
		} else {
			result[writePos] = row[i]
			writePos++
		}
	}

	return result, score
}
