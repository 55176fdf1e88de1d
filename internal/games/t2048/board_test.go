package t2048

import (
	"math/rand"
	"testing"
)

// scriptedSource returns picks in order, cycling, and counts calls.
type scriptedSource struct {
	picks []int
	calls int
}

func (s *scriptedSource) Intn(n int) int {
	v := 0
	if len(s.picks) > 0 {
		v = s.picks[s.calls%len(s.picks)] % n
	}
	s.calls++
	return v
}

// fullDistinct has no empty cells, no 2s and no equal neighbours.
var fullDistinct = [Size][Size]int{
	{4, 8, 16, 32},
	{64, 128, 256, 512},
	{1024, 2048, 4096, 8192},
	{16384, 32768, 65536, 131072},
}

func TestCollapse(t *testing.T) {
	tests := []struct {
		name         string
		source       int
		target       int
		wantSource   int
		wantTarget   int
		wantGained   int
		wantModified bool
	}{
		{"equal values merge", 4, 4, 0, 8, 8, true},
		{"different values block", 4, 8, 4, 8, 0, false},
		{"slide into empty", 4, 0, 0, 4, 0, true},
		{"empty source", 0, 4, 0, 4, 0, false},
		{"both empty", 0, 0, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := Cell{Row: 0, Col: 1, Value: tt.source}
			target := Cell{Row: 0, Col: 0, Value: tt.target}

			gained, changed := Collapse(&source, &target)

			if source.Value != tt.wantSource || target.Value != tt.wantTarget {
				t.Errorf("Collapse(%d, %d) = (%d, %d), want (%d, %d)",
					tt.source, tt.target, source.Value, target.Value, tt.wantSource, tt.wantTarget)
			}
			if gained != tt.wantGained {
				t.Errorf("Collapse(%d, %d) gained = %d, want %d", tt.source, tt.target, gained, tt.wantGained)
			}
			if changed != tt.wantModified {
				t.Errorf("Collapse(%d, %d) changed = %v, want %v", tt.source, tt.target, changed, tt.wantModified)
			}
			if source.Row != 0 || source.Col != 1 || target.Col != 0 {
				t.Error("Collapse must not move cell positions")
			}
		})
	}
}

func TestBoardCollapseAddsScore(t *testing.T) {
	b := NewBoardFromValues([Size][Size]int{{4, 4}})

	b.collapse(b.cell(0, 1), b.cell(0, 0))

	if b.Score() != 8 {
		t.Errorf("Score() = %d, want 8", b.Score())
	}
	if got := b.Values()[0]; got != [Size]int{8, 0, 0, 0} {
		t.Errorf("row 0 = %v, want [8 0 0 0]", got)
	}
}

func TestSinglePassScans(t *testing.T) {
	rowsGrid := [Size][Size]int{
		{0, 0, 0, 2},
		{2, 2, 2, 2},
		{4, 2, 2, 0},
		{2, 4, 8, 16},
	}
	colsGrid := [Size][Size]int{
		{2, 2, 4, 0},
		{2, 2, 2, 0},
		{0, 2, 2, 0},
		{0, 2, 0, 2},
	}

	tests := []struct {
		name  string
		dir   Direction
		input [Size][Size]int
		want  [Size][Size]int
		score int
	}{
		{
			name:  "left",
			dir:   DirLeft,
			input: rowsGrid,
			want: [Size][Size]int{
				{2, 0, 0, 0},
				{4, 0, 4, 0},
				{8, 0, 0, 0},
				{2, 4, 8, 16},
			},
			score: 8 + 12,
		},
		{
			name:  "right",
			dir:   DirRight,
			input: rowsGrid,
			want: [Size][Size]int{
				{0, 0, 0, 2},
				{0, 4, 0, 4},
				{4, 0, 0, 4},
				{2, 4, 8, 16},
			},
			score: 8 + 4,
		},
		{
			name:  "up",
			dir:   DirUp,
			input: colsGrid,
			want: [Size][Size]int{
				{4, 4, 8, 2},
				{0, 0, 0, 0},
				{0, 4, 0, 0},
				{0, 0, 0, 0},
			},
			score: 4 + 8 + 12,
		},
		{
			name:  "down",
			dir:   DirDown,
			input: colsGrid,
			want: [Size][Size]int{
				{0, 0, 4, 0},
				{0, 4, 0, 0},
				{0, 0, 0, 0},
				{4, 4, 4, 2},
			},
			score: 4 + 8 + 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoardFromValues(tt.input)

			if !b.compact(scanFor(tt.dir)) {
				t.Error("compact should report a change")
			}
			if got := b.Values(); got != tt.want {
				t.Errorf("%s:\ngot\n%s\nwant\n%s", tt.dir, FormatValues(got), FormatValues(tt.want))
			}
			if b.Score() != tt.score {
				t.Errorf("%s score = %d, want %d", tt.dir, b.Score(), tt.score)
			}
		})
	}
}

func TestSinglePassIsNotIterated(t *testing.T) {
	// One pass leaves [2,2,2,2] as [4,_,4,_]; a second move finishes the job.
	b := NewBoardFromValues([Size][Size]int{{2, 2, 2, 2}})

	b.compact(scanFor(DirLeft))
	if got := b.Values()[0]; got != [Size]int{4, 0, 4, 0} {
		t.Fatalf("first pass row = %v, want [4 0 4 0]", got)
	}

	b.compact(scanFor(DirLeft))
	if got := b.Values()[0]; got != [Size]int{8, 0, 0, 0} {
		t.Errorf("second pass row = %v, want [8 0 0 0]", got)
	}
}

func TestCompactNoChange(t *testing.T) {
	b := NewBoardFromValues([Size][Size]int{{4, 2, 0, 0}})

	if b.compact(scanFor(DirLeft)) {
		t.Error("left-aligned tiles with distinct values should not change")
	}
}

func TestSlideRow(t *testing.T) {
	tests := []struct {
		name     string
		input    [Size]int
		expected [Size]int
		score    int
	}{
		{"simple merge", [Size]int{2, 2, 0, 0}, [Size]int{4, 0, 0, 0}, 4},
		{"merge with trailing tile", [Size]int{2, 2, 2, 0}, [Size]int{4, 2, 0, 0}, 4},
		{"double merge", [Size]int{2, 2, 2, 2}, [Size]int{4, 4, 0, 0}, 8},
		{"no merge possible", [Size]int{2, 4, 8, 16}, [Size]int{2, 4, 8, 16}, 0},
		{"slide with gap", [Size]int{0, 0, 2, 2}, [Size]int{4, 0, 0, 0}, 4},
		{"slide with multiple gaps", [Size]int{2, 0, 0, 2}, [Size]int{4, 0, 0, 0}, 4},
		{"merged tile does not merge again", [Size]int{4, 4, 8, 0}, [Size]int{8, 8, 0, 0}, 8},
		{"two different merges", [Size]int{2, 2, 4, 4}, [Size]int{4, 8, 0, 0}, 12},
		{"empty row", [Size]int{0, 0, 0, 0}, [Size]int{0, 0, 0, 0}, 0},
		{"single tile", [Size]int{0, 4, 0, 0}, [Size]int{4, 0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := slideRow(tt.input)
			if result != tt.expected {
				t.Errorf("slideRow(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideRow(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestFullCompaction(t *testing.T) {
	rowsGrid := [Size][Size]int{
		{0, 0, 0, 2},
		{2, 2, 2, 2},
		{4, 2, 2, 0},
		{2, 4, 8, 16},
	}

	tests := []struct {
		name  string
		dir   Direction
		want  [Size][Size]int
		score int
	}{
		{
			name: "left",
			dir:  DirLeft,
			want: [Size][Size]int{
				{2, 0, 0, 0},
				{4, 4, 0, 0},
				{4, 4, 0, 0},
				{2, 4, 8, 16},
			},
			score: 12,
		},
		{
			name: "right",
			dir:  DirRight,
			want: [Size][Size]int{
				{0, 0, 0, 2},
				{0, 0, 4, 4},
				{0, 0, 4, 4},
				{2, 4, 8, 16},
			},
			score: 12,
		},
		{
			name: "up",
			dir:  DirUp,
			want: [Size][Size]int{
				{2, 4, 4, 4},
				{4, 4, 8, 16},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoardFromValues(rowsGrid, WithCompaction(CompactionFull))
			b.compact(scanFor(tt.dir))

			if got := b.Values(); got != tt.want {
				t.Errorf("%s:\ngot\n%s\nwant\n%s", tt.dir, FormatValues(got), FormatValues(tt.want))
			}
			if b.Score() != tt.score {
				t.Errorf("%s score = %d, want %d", tt.dir, b.Score(), tt.score)
			}
		})
	}
}

func TestNewBoardSpawnsTwoTwos(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		b := NewBoard(WithSource(rand.New(rand.NewSource(seed))))

		twos, empty := 0, 0
		for _, c := range b.Cells() {
			switch c.Value {
			case 0:
				empty++
			case 2:
				twos++
			default:
				t.Fatalf("seed %d: unexpected value %d at %v", seed, c.Value, c)
			}
		}
		if twos != 2 || empty != 14 {
			t.Errorf("seed %d: got %d twos and %d empty, want 2 and 14", seed, twos, empty)
		}
		if b.Score() != 0 || b.Terminal() {
			t.Errorf("seed %d: fresh board should have score 0 and not be terminal", seed)
		}
	}
}

func TestSpawnTwosSkipsOccupied(t *testing.T) {
	src := &scriptedSource{picks: []int{5, 5, 9}}
	b := NewEmptyBoard(WithSource(src))

	if placed := b.SpawnTwos(2); placed != 2 {
		t.Fatalf("SpawnTwos(2) placed %d, want 2", placed)
	}
	if b.cell(1, 1).Value != 2 || b.cell(2, 1).Value != 2 {
		t.Errorf("tiles should land at indices 5 and 9:\n%s", b)
	}
	if src.calls != 3 {
		t.Errorf("expected 3 attempts (one retry on the occupied cell), got %d", src.calls)
	}
	if b.EmptyCount() != 14 {
		t.Errorf("EmptyCount() = %d, want 14", b.EmptyCount())
	}
}

func TestSpawnExhaustionSetsTerminal(t *testing.T) {
	src := &scriptedSource{picks: []int{0, 7, 15}}
	b := NewBoardFromValues(fullDistinct, WithSource(src))

	placed := b.SpawnTwos(1)

	if placed != 0 {
		t.Errorf("SpawnTwos on a full board placed %d tiles", placed)
	}
	if !b.Terminal() {
		t.Error("exhausting spawn attempts should set terminal")
	}
	if src.calls != DefaultSpawnAttempts {
		t.Errorf("made %d attempts, want %d", src.calls, DefaultSpawnAttempts)
	}
	if b.Values() != fullDistinct {
		t.Errorf("grid changed during failed spawn:\n%s", b)
	}
}

func TestSpawnAttemptsOption(t *testing.T) {
	src := &scriptedSource{}
	b := NewBoardFromValues(fullDistinct, WithSource(src), WithSpawnAttempts(10))

	b.SpawnTwos(1)

	if src.calls != 10 || !b.Terminal() {
		t.Errorf("calls = %d terminal = %v, want 10 and true", src.calls, b.Terminal())
	}
}

func TestTerminalBoardIgnoresMoves(t *testing.T) {
	b := NewBoardFromValues([Size][Size]int{
		{2, 2, 4, 4},
		{8, 16, 32, 64},
		{128, 256, 512, 1024},
		{2048, 4096, 8192, 16384},
	}, WithSpawnAttempts(5))

	// Full board and a move that frees nothing: Up has no equal column pairs.
	b.Move(DirUp)
	if !b.Terminal() {
		t.Fatal("a move that cannot spawn should end the game")
	}

	before := b.Values()
	score := b.Score()
	moves := b.Moves()

	for _, dir := range Directions {
		if b.Move(dir) {
			t.Errorf("Move(%s) on a terminal board reported a change", dir)
		}
	}
	if b.SpawnTwos(3) != 0 {
		t.Error("terminal board should not spawn")
	}

	if b.Values() != before || b.Score() != score || b.Moves() != moves {
		t.Errorf("terminal board changed: score %d->%d moves %d->%d\n%s", score, b.Score(), moves, b.Moves(), b)
	}
}

func TestMoveLeftEndToEnd(t *testing.T) {
	b := NewBoardFromValues([Size][Size]int{{2, 2, 0, 0}}, WithSource(rand.New(rand.NewSource(7))))

	changed := b.Move(DirLeft)

	if !changed {
		t.Error("Move(Left) should report a change")
	}
	if b.cell(0, 0).Value != 4 {
		t.Errorf("cell (0,0) = %d, want 4", b.cell(0, 0).Value)
	}
	if b.Score() != 4 {
		t.Errorf("Score() = %d, want 4", b.Score())
	}

	twos := 0
	for _, c := range b.Cells() {
		if c.Row == 0 && c.Col == 0 {
			continue
		}
		switch c.Value {
		case 0:
		case 2:
			twos++
		default:
			t.Errorf("unexpected value %d at %v", c.Value, c)
		}
	}
	if twos != 1 {
		t.Errorf("expected exactly one spawned 2, found %d:\n%s", twos, b)
	}
	if b.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", b.Moves())
	}
}

func TestMoveSpawnsEvenWithoutChange(t *testing.T) {
	src := &scriptedSource{picks: []int{15}}
	b := NewBoardFromValues([Size][Size]int{{4, 2, 0, 0}}, WithSource(src))

	if b.Move(DirLeft) {
		t.Error("Move(Left) should report no change")
	}
	if b.cell(3, 3).Value != 2 {
		t.Errorf("spawn pass should still run, board:\n%s", b)
	}
}

func TestRandomPlayInvariants(t *testing.T) {
	for _, compaction := range []Compaction{CompactionSinglePass, CompactionFull} {
		t.Run(compaction.String(), func(t *testing.T) {
			for seed := int64(1); seed <= 25; seed++ {
				rng := rand.New(rand.NewSource(seed))
				b := NewBoard(WithSource(rng), WithCompaction(compaction))

				for i := 0; i < 400 && !b.Terminal(); i++ {
					prevScore := b.Score()
					prevSum := valueSum(b)

					b.Move(Directions[rng.Intn(len(Directions))])

					for _, c := range b.Cells() {
						if !isTileValue(c.Value) {
							t.Fatalf("seed %d move %d: illegal value %d at %v", seed, i, c.Value, c)
						}
					}
					if b.Score() < prevScore {
						t.Fatalf("seed %d move %d: score decreased %d -> %d", seed, i, prevScore, b.Score())
					}
					// Merges preserve the sum; only the spawned 2 adds to it.
					if d := valueSum(b) - prevSum; d != 0 && d != 2 {
						t.Fatalf("seed %d move %d: value sum changed by %d", seed, i, d)
					}
				}
			}
		})
	}
}

func TestContractViolationsPanic(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"invalid direction", func() { NewEmptyBoard().Move(Direction(9)) }},
		{"row out of range", func() { NewEmptyBoard().cell(4, 0) }},
		{"col out of range", func() { NewEmptyBoard().cell(0, -1) }},
		{"non power of two", func() { NewBoardFromValues([Size][Size]int{{3}}) }},
		{"value one", func() { NewBoardFromValues([Size][Size]int{{1}}) }},
		{"negative spawn count", func() { NewEmptyBoard().SpawnTwos(-1) }},
		{"zero attempts", func() { WithSpawnAttempts(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s should panic", tt.name)
				}
			}()
			tt.fn()
		})
	}
}

func TestCellPositionsAreFixed(t *testing.T) {
	b := NewBoard()
	for i, c := range b.Cells() {
		if c.Row != i/Size || c.Col != i%Size {
			t.Errorf("cell %d has position (%d,%d)", i, c.Row, c.Col)
		}
	}
}

func TestFormatValues(t *testing.T) {
	got := FormatValues([Size][Size]int{
		{2, 0, 0, 0},
		{0, 16, 0, 0},
		{0, 0, 128, 0},
		{0, 0, 0, 0},
	})
	want := "  2   .   .   .\n" +
		"  .  16   .   .\n" +
		"  .   . 128   .\n" +
		"  .   .   .   ."
	if got != want {
		t.Errorf("FormatValues:\n%q\nwant\n%q", got, want)
	}
}

func valueSum(b *Board) int {
	sum := 0
	for _, c := range b.Cells() {
		sum += c.Value
	}
	return sum
}
