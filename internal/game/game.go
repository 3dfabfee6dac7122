// Package game implements the Barragoon rules engine.
//
// Barragoon is played on a 7x9 board between white and brown. Each side
// moves tiles worth two, three, or four steps; barragoon pieces occupy
// squares and constrain movement depending on the face they show.
//
// Key types:
//   - [Game] holds a position, generates legal moves, and applies them
//   - [Move] is a single legal move in one of four shapes
//   - [Tile], [Face] and [Square] describe board content
//   - [Stride] describes the walk patterns a tile may make
//
// Positions are exchanged as FEN strings (see [FromFEN] and [Game.FEN]).
package game

import "errors"

// ErrIllegalMove is returned by [Game.Apply] for any move that is not in
// the current position's legal move set, including moves constructed by
// hand rather than taken from [Game.ValidMoves].
var ErrIllegalMove = errors.New("illegal move")

// Game is a Barragoon position: board content plus the side to move.
//
// The zero value is an empty board with white to move. Game is not safe for
// concurrent use; callers that share a game across goroutines must
// synchronize access.
type Game struct {
	board [BoardHeight][BoardWidth]Square
	turn  Player
}

// New returns a game set up in the standard start position.
func New() *Game {
	g, err := FromFEN(InitialFEN)
	if err != nil {
		panic("game: start position FEN is corrupted: " + err.Error())
	}
	return g
}

// NewEmpty returns a game with an empty board.
func NewEmpty() *Game {
	g, err := FromFEN(EmptyFEN)
	if err != nil {
		panic("game: empty position FEN is corrupted: " + err.Error())
	}
	return g
}

// Turn returns the side to move.
func (g *Game) Turn() Player {
	return g.turn
}

// SetTurn sets the side to move.
func (g *Game) SetTurn(p Player) {
	g.turn = p
}

// At returns the content of the square at c. c must be on the board.
func (g *Game) At(c Coordinate) Square {
	return g.board[c.Rank][c.File]
}

// Set replaces the content of the square at c. c must be on the board.
func (g *Game) Set(c Coordinate, s Square) {
	g.board[c.Rank][c.File] = s
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	clone := *g
	return &clone
}

// ValidMoves generates every legal move for the side to move.
//
// For each tile, every stride is walked square by square. A stride ends
// early at a friendly tile, at a tile hit before the final step, or at a
// barragoon that cannot be traversed in the stride's entry/exit directions.
// Landing on an enemy tile with a capturing stride yields a tile capture.
// Landing on a capturable barragoon yields one move per legal re-placement:
// the captured barragoon may be put on any empty square or the moving
// tile's own origin square, showing any of the sixteen faces.
//
// The returned slice contains no duplicates: destinations reachable by more
// than one stride are generated once.
func (g *Game) ValidMoves() []Move {
	var moves []Move

	for rank := 0; rank < BoardHeight; rank++ {
		for file := 0; file < BoardWidth; file++ {
			origin := Coord(rank, file)
			sq := g.At(origin)
			if sq.Kind != SquareTile || sq.Tile.Player != g.turn {
				continue
			}
			moves = g.appendTileMoves(moves, origin, sq.Tile)
		}
	}

	return moves
}

// appendTileMoves walks every stride of the tile at origin and appends the
// resulting moves.
func (g *Game) appendTileMoves(moves []Move, origin Coordinate, tile Tile) []Move {
	covered := make(map[Coordinate]struct{})

	for _, stride := range tile.Type.Strides() {
		destination := origin.Add(stride.FullDelta())
		if !Contains(destination) {
			continue
		}
		if _, ok := covered[destination]; ok {
			// another stride already reaches this square
			continue
		}

	walk:
		for _, step := range stride.Steps() {
			pos := origin.Add(step.Delta)
			if !Contains(pos) {
				continue
			}

			target := g.At(pos)
			switch target.Kind {
			case SquareTile:
				if target.Tile.Player == tile.Player || !step.Final || !stride.CanCapture() {
					break walk
				}
				moves = append(moves, Move{
					Kind:   MoveTileCapture,
					Tile:   tile,
					From:   origin,
					To:     pos,
					Victim: target.Tile,
				})
				covered[pos] = struct{}{}

			case SquareEmpty:
				if step.Final {
					moves = append(moves, Move{
						Kind: MoveQuiet,
						Tile: tile,
						From: origin,
						To:   pos,
					})
					covered[pos] = struct{}{}
				}

			case SquareBarragoon:
				if !step.Final {
					if !target.Face.CanBeTraversed(step.Enter, step.Leave) {
						break walk
					}
					continue
				}
				if !stride.CanCapture() ||
					!target.Face.CanBeCapturedBy(tile.Type) ||
					!target.Face.CanBeCapturedFrom(step.Enter) {
					break walk
				}
				moves = g.appendBarragoonCaptures(moves, origin, pos, tile, target.Face)
				covered[pos] = struct{}{}
			}
		}
	}

	return moves
}

// appendBarragoonCaptures appends one capture move per legal re-placement of
// the captured barragoon: every empty square plus the mover's origin, each
// with any of the sixteen faces.
func (g *Game) appendBarragoonCaptures(moves []Move, origin, capture Coordinate, tile Tile, victim Face) []Move {
	for rank := 0; rank < BoardHeight; rank++ {
		for file := 0; file < BoardWidth; file++ {
			placement := Coord(rank, file)
			if !g.At(placement).IsEmpty() && placement != origin {
				continue
			}
			for _, face := range AllFaces() {
				moves = append(moves, Move{
					Kind:       MoveBarragoonCapture,
					Tile:       tile,
					From:       origin,
					To:         capture,
					VictimFace: victim,
					Target:     placement,
					Placed:     face,
				})
			}
		}
	}
	return moves
}

// Apply plays a move, mutating the position and passing the turn.
//
// The move must be a member of the current [Game.ValidMoves] set; anything
// else returns [ErrIllegalMove] and leaves the position untouched.
func (g *Game) Apply(m Move) error {
	legal := false
	for _, candidate := range g.ValidMoves() {
		if candidate == m {
			legal = true
			break
		}
	}
	if !legal {
		return ErrIllegalMove
	}

	switch m.Kind {
	case MoveQuiet, MoveTileCapture:
		g.Set(m.To, TileSquare(m.Tile))
		g.Set(m.From, EmptySquare())
	case MoveBarragoonCapture:
		// Clear the origin before placing: re-placement onto the
		// vacated origin square is legal.
		g.Set(m.To, TileSquare(m.Tile))
		g.Set(m.From, EmptySquare())
		g.Set(m.Target, BarragoonSquare(m.Placed))
	case MoveBarragoonPlacement:
		g.Set(m.Target, BarragoonSquare(m.Placed))
	}

	g.turn = g.turn.Other()
	return nil
}
