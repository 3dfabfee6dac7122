package game

// SquareKind tags the content of a board square.
type SquareKind uint8

const (
	SquareEmpty SquareKind = iota
	SquareTile
	SquareBarragoon
)

// Square is the content of one board square: empty, a tile, or a barragoon.
// The zero value is an empty square. Tile is meaningful only for SquareTile,
// Face only for SquareBarragoon.
type Square struct {
	Kind SquareKind
	Tile Tile
	Face Face
}

// EmptySquare returns an empty square.
func EmptySquare() Square { return Square{} }

// TileSquare returns a square occupied by the given tile.
func TileSquare(t Tile) Square { return Square{Kind: SquareTile, Tile: t} }

// BarragoonSquare returns a square occupied by a barragoon showing the
// given face.
func BarragoonSquare(f Face) Square { return Square{Kind: SquareBarragoon, Face: f} }

// IsEmpty reports whether the square holds nothing.
func (s Square) IsEmpty() bool { return s.Kind == SquareEmpty }

// FENChar returns the square's FEN character. Empty squares render as a
// space; FEN serialization encodes runs of them as digits instead.
func (s Square) FENChar() byte {
	switch s.Kind {
	case SquareTile:
		return s.Tile.FENChar()
	case SquareBarragoon:
		return s.Face.FENChar()
	default:
		return ' '
	}
}

// squareFromFEN maps a FEN character to square content. Digits and the rank
// separator are not square content and return ok=false.
func squareFromFEN(c byte) (Square, bool) {
	if t, ok := tileFromFEN(c); ok {
		return TileSquare(t), true
	}
	if f, ok := faceFromFEN(c); ok {
		return BarragoonSquare(f), true
	}
	return Square{}, false
}
