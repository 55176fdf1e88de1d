package t2048

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// ErrUnknownDirection is returned when text does not name a direction.
var ErrUnknownDirection = errors.New("t2048: unknown direction")

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists all moves in a fixed order.
var Directions = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts a full name ("left") or its first letter ("L"),
// case-insensitively.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Directions {
		if full := d.String(); name != "" && (name == full || name == full[:1]) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownDirection, s)
}

// ParseMoves parses a compact move script such as "LLURD".
// Spaces and commas are ignored.
func ParseMoves(script string) ([]Direction, error) {
	var dirs []Direction
	pos := 0
	for _, r := range script {
		pos++
		if r == ' ' || r == ',' {
			continue
		}
		d, err := ParseDirection(string(r))
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", pos, err)
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// directionForAction maps a platform action to a board move.
func directionForAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	}
	return 0, false
}

// ActionFor maps a board move to the platform action that triggers it.
func ActionFor(d Direction) core.Action {
	switch d {
	case DirLeft:
		return core.ActionLeft
	case DirRight:
		return core.ActionRight
	case DirUp:
		return core.ActionUp
	case DirDown:
		return core.ActionDown
	}
	panic(fmt.Sprintf("t2048: invalid direction %d", int(d)))
}
