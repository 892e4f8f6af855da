package board

// A Position is a (row, column) grid coordinate. It carries no validity of
// its own; ask the board.
type Position struct {
	Row, Col int
}

// Direction is the axis a play is made along. Each direction defines two
// coordinate-transform pairs: Before/After move along the play direction,
// BeforeCross/AfterCross move perpendicular to it. Keeping the transforms
// here lets the search stay direction-agnostic.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// Directions lists both play directions, in generation order.
var Directions = [2]Direction{Across, Down}

// Before returns the position one step earlier along the play direction.
func (d Direction) Before(p Position) Position {
	if d == Across {
		return Position{p.Row, p.Col - 1}
	}
	return Position{p.Row - 1, p.Col}
}

// After returns the position one step later along the play direction.
func (d Direction) After(p Position) Position {
	if d == Across {
		return Position{p.Row, p.Col + 1}
	}
	return Position{p.Row + 1, p.Col}
}

// BeforeCross returns the position one step earlier along the
// perpendicular axis.
func (d Direction) BeforeCross(p Position) Position {
	if d == Across {
		return Position{p.Row - 1, p.Col}
	}
	return Position{p.Row, p.Col - 1}
}

// AfterCross returns the position one step later along the perpendicular
// axis.
func (d Direction) AfterCross(p Position) Position {
	if d == Across {
		return Position{p.Row + 1, p.Col}
	}
	return Position{p.Row, p.Col + 1}
}

// Vertical returns whether this is the down direction, for coordinate
// display.
func (d Direction) Vertical() bool {
	return d == Down
}
