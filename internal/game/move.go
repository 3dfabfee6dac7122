package game

import (
	"fmt"
	"strings"
)

// MoveKind tags the four move shapes.
type MoveKind uint8

const (
	// MoveQuiet moves a tile to an empty square.
	MoveQuiet MoveKind = iota
	// MoveTileCapture moves a tile onto an enemy tile.
	MoveTileCapture
	// MoveBarragoonCapture moves a tile onto a barragoon and re-places
	// the barragoon elsewhere with a chosen face.
	MoveBarragoonCapture
	// MoveBarragoonPlacement puts a barragoon onto a square without
	// moving a tile.
	MoveBarragoonPlacement
)

// Move is a single move. Moves are plain comparable values: the field set
// in use depends on Kind, and all other fields hold zero values, so two
// moves are equal exactly when == says so.
//
//   - MoveQuiet: Tile, From, To
//   - MoveTileCapture: Tile, From, To, Victim
//   - MoveBarragoonCapture: Tile, From, To, VictimFace, Target, Placed
//   - MoveBarragoonPlacement: Target, Placed
type Move struct {
	Kind       MoveKind
	Tile       Tile
	From       Coordinate
	To         Coordinate
	Victim     Tile
	VictimFace Face
	Target     Coordinate
	Placed     Face
}

// String renders the move in engine notation:
//
//	Zb2b4          quiet move
//	Zb2xdb4        tile capture (victim tile named before the square)
//	Zb2oxb4!+c5    barragoon capture, with re-placement after "!"
//	!+c5           barragoon placement
func (m Move) String() string {
	var b strings.Builder
	switch m.Kind {
	case MoveQuiet:
		b.WriteByte(m.Tile.FENChar())
		b.WriteString(m.From.String())
		b.WriteString(m.To.String())
	case MoveTileCapture:
		b.WriteByte(m.Tile.FENChar())
		b.WriteString(m.From.String())
		b.WriteByte('x')
		b.WriteByte(m.Victim.FENChar())
		b.WriteString(m.To.String())
	case MoveBarragoonCapture:
		b.WriteByte(m.Tile.FENChar())
		b.WriteString(m.From.String())
		b.WriteByte('o')
		b.WriteByte(m.VictimFace.FENChar())
		b.WriteString(m.To.String())
		b.WriteByte('!')
		b.WriteByte(m.Placed.FENChar())
		b.WriteString(m.Target.String())
	case MoveBarragoonPlacement:
		b.WriteByte('!')
		b.WriteByte(m.Placed.FENChar())
		b.WriteString(m.Target.String())
	}
	return b.String()
}

// MoveFromString resolves engine notation against the current position's
// legal move set. There is no free-standing notation parser: a string names
// a move only if that move is legal right now, which is the same contract
// [Game.Apply] enforces.
func (g *Game) MoveFromString(s string) (Move, error) {
	for _, m := range g.ValidMoves() {
		if m.String() == s {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("%w: no legal move %q", ErrIllegalMove, s)
}
