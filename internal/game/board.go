package game

import "fmt"

// Board dimensions. The Barragoon board is 7 files (a-g) by 9 ranks (1-9).
const (
	BoardWidth  = 7
	BoardHeight = 9
)

var (
	rankNames = [BoardHeight]byte{'1', '2', '3', '4', '5', '6', '7', '8', '9'}
	fileNames = [BoardWidth]byte{'a', 'b', 'c', 'd', 'e', 'f', 'g'}
)

// Direction is one of the four orthogonal movement directions on the board.
// North points toward higher ranks, East toward higher files.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions returns all four directions in a stable order.
//
// Use this for iteration; the order determines stride generation order and
// therefore the order of generated moves.
func Directions() []Direction {
	return []Direction{North, West, South, East}
}

// TurnLeft returns the direction rotated 90 degrees counterclockwise.
func (d Direction) TurnLeft() Direction {
	switch d {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	default:
		return North
	}
}

// TurnRight returns the direction rotated 90 degrees clockwise.
func (d Direction) TurnRight() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

// Delta returns the unit coordinate offset of one step in this direction.
func (d Direction) Delta() Coordinate {
	switch d {
	case North:
		return Coordinate{Rank: 1}
	case East:
		return Coordinate{File: 1}
	case South:
		return Coordinate{Rank: -1}
	default:
		return Coordinate{File: -1}
	}
}

// String returns the direction name ("north", "east", "south", "west").
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "west"
	}
}

// Coordinate identifies a board square by rank and file index.
//
// Rank 0 / file 0 is square a1. Coordinates outside the board are legal
// values (they arise while walking strides); use [Contains] to test whether
// a coordinate names an actual square.
type Coordinate struct {
	Rank int
	File int
}

// Coord is shorthand for constructing a Coordinate.
func Coord(rank, file int) Coordinate {
	return Coordinate{Rank: rank, File: file}
}

// Add returns the component-wise sum of two coordinates.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{Rank: c.Rank + o.Rank, File: c.File + o.File}
}

// Scale returns the coordinate with both components multiplied by n.
func (c Coordinate) Scale(n int) Coordinate {
	return Coordinate{Rank: c.Rank * n, File: c.File * n}
}

// String returns the algebraic form of the coordinate (e.g. "b2").
// Off-board coordinates are rendered as "(rank,file)".
func (c Coordinate) String() string {
	if !Contains(c) {
		return fmt.Sprintf("(%d,%d)", c.Rank, c.File)
	}
	return string([]byte{fileNames[c.File], rankNames[c.Rank]})
}

// Contains reports whether the coordinate names a square on the board.
func Contains(c Coordinate) bool {
	return c.Rank >= 0 && c.Rank < BoardHeight && c.File >= 0 && c.File < BoardWidth
}
