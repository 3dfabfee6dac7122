package game

// Alignment distinguishes the two straight barragoon faces.
type Alignment uint8

const (
	Horizontal Alignment = iota
	Vertical
)

// FaceKind enumerates the barragoon face families.
type FaceKind uint8

const (
	FaceBlocking FaceKind = iota
	FaceStraight
	FaceOneWay
	FaceOneWayTurnLeft
	FaceOneWayTurnRight
	FaceForceTurn
)

// Face is one of the sixteen barragoon faces. Align is meaningful only for
// FaceStraight, Dir only for the one-way families. Face values are
// comparable, so they can be used directly as map keys and in move equality.
type Face struct {
	Kind  FaceKind
	Align Alignment
	Dir   Direction
}

// Face constructors.

func BlockingFace() Face { return Face{Kind: FaceBlocking} }

func StraightFace(a Alignment) Face { return Face{Kind: FaceStraight, Align: a} }

func OneWayFace(d Direction) Face { return Face{Kind: FaceOneWay, Dir: d} }

func TurnLeftFace(d Direction) Face { return Face{Kind: FaceOneWayTurnLeft, Dir: d} }

func TurnRightFace(d Direction) Face { return Face{Kind: FaceOneWayTurnRight, Dir: d} }

func ForceTurnFace() Face { return Face{Kind: FaceForceTurn} }

// AllFaces returns the sixteen barragoon faces in a stable order.
func AllFaces() []Face {
	return []Face{
		BlockingFace(),
		StraightFace(Horizontal),
		StraightFace(Vertical),
		OneWayFace(North),
		OneWayFace(South),
		OneWayFace(East),
		OneWayFace(West),
		TurnLeftFace(North),
		TurnLeftFace(South),
		TurnLeftFace(East),
		TurnLeftFace(West),
		TurnRightFace(North),
		TurnRightFace(South),
		TurnRightFace(East),
		TurnRightFace(West),
		ForceTurnFace(),
	}
}

// traversal shapes, classified from travel directions into and out of a square
type traversal uint8

const (
	traverseNone traversal = iota
	traverseHorizontal
	traverseVertical
	traverseLeftTurn
	traverseRightTurn
)

func classifyTraversal(enter, leave Direction) traversal {
	switch {
	case enter == leave && (enter == East || enter == West):
		return traverseHorizontal
	case enter == leave && (enter == North || enter == South):
		return traverseVertical
	case leave == enter.TurnLeft():
		return traverseLeftTurn
	case leave == enter.TurnRight():
		return traverseRightTurn
	default:
		// reversals cannot traverse anything
		return traverseNone
	}
}

// CanBeTraversed reports whether a tile may pass over this face, entering
// the square travelling in enter and leaving travelling in leave.
func (f Face) CanBeTraversed(enter, leave Direction) bool {
	shape := classifyTraversal(enter, leave)
	if shape == traverseNone {
		return false
	}

	switch f.Kind {
	case FaceBlocking:
		return false
	case FaceForceTurn:
		return shape == traverseLeftTurn || shape == traverseRightTurn
	case FaceStraight:
		if f.Align == Vertical {
			return shape == traverseVertical
		}
		return shape == traverseHorizontal
	case FaceOneWay:
		return enter == f.Dir && (shape == traverseHorizontal || shape == traverseVertical)
	case FaceOneWayTurnLeft:
		return shape == traverseLeftTurn && leave == f.Dir
	default: // FaceOneWayTurnRight
		return shape == traverseRightTurn && leave == f.Dir
	}
}

// CanBeCapturedFrom reports whether the face may be captured by a tile
// arriving on it travelling in enter. A face is vulnerable exactly from the
// directions it could legally be passed: one-way turn faces only from the
// single approach whose turn leaves in the face's direction.
func (f Face) CanBeCapturedFrom(enter Direction) bool {
	switch f.Kind {
	case FaceBlocking, FaceForceTurn:
		return true
	case FaceStraight:
		if f.Align == Vertical {
			return enter == North || enter == South
		}
		return enter == East || enter == West
	case FaceOneWay:
		return enter == f.Dir
	case FaceOneWayTurnLeft:
		return enter == f.Dir.TurnRight()
	default: // FaceOneWayTurnRight
		return enter == f.Dir.TurnLeft()
	}
}

// CanBeCapturedBy reports whether a tile of the given type may capture this
// face. Every face is capturable by every tile except the force-turn face,
// which a two cannot take.
func (f Face) CanBeCapturedBy(t TileType) bool {
	return t != Two || f.Kind != FaceForceTurn
}

// FENChar returns the face's FEN character.
func (f Face) FENChar() byte {
	switch f.Kind {
	case FaceBlocking:
		return 'x'
	case FaceForceTurn:
		return '+'
	case FaceStraight:
		if f.Align == Vertical {
			return '|'
		}
		return '-'
	case FaceOneWay:
		switch f.Dir {
		case North:
			return '^'
		case South:
			return 'Y'
		case East:
			return '>'
		default:
			return '<'
		}
	case FaceOneWayTurnLeft:
		switch f.Dir {
		case North:
			return 'N'
		case South:
			return 'S'
		case East:
			return 'E'
		default:
			return 'W'
		}
	default: // FaceOneWayTurnRight
		switch f.Dir {
		case North:
			return 'n'
		case South:
			return 's'
		case East:
			return 'e'
		default:
			return 'w'
		}
	}
}

// faceFromFEN maps a FEN character back to a face.
func faceFromFEN(c byte) (Face, bool) {
	switch c {
	case 'x':
		return BlockingFace(), true
	case '+':
		return ForceTurnFace(), true
	case '|':
		return StraightFace(Vertical), true
	case '-':
		return StraightFace(Horizontal), true
	case '^':
		return OneWayFace(North), true
	case 'Y':
		return OneWayFace(South), true
	case '>':
		return OneWayFace(East), true
	case '<':
		return OneWayFace(West), true
	case 'N':
		return TurnLeftFace(North), true
	case 'S':
		return TurnLeftFace(South), true
	case 'E':
		return TurnLeftFace(East), true
	case 'W':
		return TurnLeftFace(West), true
	case 'n':
		return TurnRightFace(North), true
	case 's':
		return TurnRightFace(South), true
	case 'e':
		return TurnRightFace(East), true
	case 'w':
		return TurnRightFace(West), true
	}
	return Face{}, false
}
