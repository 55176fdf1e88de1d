package t2048

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Size is the board dimension.
const Size = 4

// DefaultSpawnAttempts bounds the random retries of one spawn pass.
const DefaultSpawnAttempts = 2000

// Source is the randomness a Board draws spawn positions from.
// *rand.Rand satisfies it; tests inject scripted sources.
type Source interface {
	Intn(n int) int
}

// NewSource returns a seeded math/rand source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Board is the 4x4 grid together with its score and terminal flag.
// All state changes go through Move and SpawnTwos.
type Board struct {
	cells      [Size * Size]Cell // row-major
	score      int
	terminal   bool
	moves      int
	rng        Source
	attempts   int
	compaction Compaction
}

// Option configures a Board at construction.
type Option func(*Board)

// WithSource sets the spawn randomness.
func WithSource(src Source) Option {
	return func(b *Board) {
		b.rng = src
	}
}

// WithSpawnAttempts overrides DefaultSpawnAttempts.
func WithSpawnAttempts(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("t2048: spawn attempts must be positive, got %d", n))
	}
	return func(b *Board) {
		b.attempts = n
	}
}

// WithCompaction selects the move algorithm.
func WithCompaction(c Compaction) Option {
	if !c.Valid() {
		panic(fmt.Sprintf("t2048: invalid compaction %d", int(c)))
	}
	return func(b *Board) {
		b.compaction = c
	}
}

// NewBoard creates a game-start board: two tiles of value 2 at distinct
// random positions.
func NewBoard(opts ...Option) *Board {
	b := NewEmptyBoard(opts...)
	b.SpawnTwos(2)
	return b
}

// NewEmptyBoard creates a board with no tiles.
func NewEmptyBoard(opts ...Option) *Board {
	b := &Board{
		attempts: DefaultSpawnAttempts,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = NewSource(time.Now().UnixNano())
	}
	for i := range b.cells {
		b.cells[i] = Cell{Row: i / Size, Col: i % Size}
	}
	return b
}

// NewBoardFromValues creates a board holding the given values.
// Panics if a value is neither 0 nor a power of two >= 2.
func NewBoardFromValues(values [Size][Size]int, opts ...Option) *Board {
	b := NewEmptyBoard(opts...)
	for row := range Size {
		for col := range Size {
			v := values[row][col]
			if !isTileValue(v) {
				panic(fmt.Sprintf("t2048: value %d at (%d,%d) is not a tile", v, row, col))
			}
			b.cell(row, col).Value = v
		}
	}
	return b
}

// cell returns the slot at (row, col). Out-of-range coordinates panic.
func (b *Board) cell(row, col int) *Cell {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		panic(fmt.Sprintf("t2048: cell (%d,%d) out of range", row, col))
	}
	return &b.cells[row*Size+col]
}

// Cells returns a row-major copy of all 16 cells.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells[:])
	return out
}

// Values returns the grid as a value matrix.
func (b *Board) Values() [Size][Size]int {
	var v [Size][Size]int
	for _, c := range b.cells {
		v[c.Row][c.Col] = c.Value
	}
	return v
}

// Score returns the sum of all merge results so far.
func (b *Board) Score() int {
	return b.score
}

// Terminal reports whether the game is over.
func (b *Board) Terminal() bool {
	return b.terminal
}

// Moves returns the number of accepted moves.
func (b *Board) Moves() int {
	return b.moves
}

// Compaction returns the move algorithm in use.
func (b *Board) Compaction() Compaction {
	return b.compaction
}

// MaxTile returns the highest value on the board.
func (b *Board) MaxTile() int {
	highest := 0
	for _, c := range b.cells {
		highest = max(highest, c.Value)
	}
	return highest
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Empty() {
			n++
		}
	}
	return n
}

// collapse applies Collapse and credits merge points to the score.
func (b *Board) collapse(source, target *Cell) bool {
	gained, changed := Collapse(source, target)
	b.score += gained
	return changed
}

// SpawnTwos places count tiles of value 2 at uniformly random empty
// positions. Each attempt draws one of the 16 positions and succeeds only
// if it is empty; when the attempt budget runs out before count tiles are
// placed the board is considered full and becomes terminal.
// A terminal board spawns nothing. Returns the number of tiles placed.
func (b *Board) SpawnTwos(count int) int {
	if count < 0 {
		panic(fmt.Sprintf("t2048: negative spawn count %d", count))
	}
	if b.terminal {
		return 0
	}

	placed := 0
	for attempt := 0; placed < count && attempt < b.attempts; attempt++ {
		c := &b.cells[b.rng.Intn(len(b.cells))]
		if c.Empty() {
			c.Value = 2
			placed++
		}
	}

	if placed < count {
		b.terminal = true
	}
	return placed
}

// String renders the grid as text, one row per line, '.' for empty.
func (b *Board) String() string {
	return FormatValues(b.Values())
}

// FormatValues renders a value matrix as right-aligned columns.
func FormatValues(values [Size][Size]int) string {
	width := 1
	for _, row := range values {
		for _, v := range row {
			width = max(width, len(strconv.Itoa(v)))
		}
	}

	var sb strings.Builder
	for r, row := range values {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			text := "."
			if v != 0 {
				text = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", width-len(text)))
			sb.WriteString(text)
		}
	}
	return sb.String()
}
