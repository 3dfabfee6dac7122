package game

import (
	"errors"
	"fmt"
	"strings"
)

// Well-known positions.
const (
	// InitialFEN is the standard Barragoon start position.
	InitialFEN = "1vd1dv1/2zdz2/7/1x3x1/x1x1x1x/1x3x1/7/2ZDZ2/1VD1DV1"

	// EmptyFEN is a board with no pieces.
	EmptyFEN = "7/7/7/7/7/7/7/7/7"
)

// Sentinel errors for FEN parsing. Parse failures wrap one of these together
// with the byte index of the offending character.
var (
	ErrUnderfullRank = errors.New("fen rank holds too few squares")
	ErrOverfullRank  = errors.New("fen rank holds too many squares")
	ErrTooManyRanks  = errors.New("fen holds too many ranks")
	ErrInvalidChar   = errors.New("invalid fen character")
)

func fenError(sentinel error, index int) error {
	return fmt.Errorf("fen index %d: %w", index, sentinel)
}

// FromFEN parses a FEN string into a game.
//
// The board field lists ranks from rank 9 down to rank 1, separated by
// slashes; digits 1-7 skip that many empty files. An optional second field
// names the side to move ("w" or "b"); it defaults to white when absent.
func FromFEN(fen string) (*Game, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fenError(ErrUnderfullRank, 0)
	}

	g := &Game{turn: White}

	if len(fields) > 1 {
		switch fields[1] {
		case "w":
			g.turn = White
		case "b":
			g.turn = Brown
		default:
			return nil, fenError(ErrInvalidChar, strings.Index(fen, fields[1]))
		}
	}

	board := fields[0]
	rank := BoardHeight - 1
	file := 0

	for i := 0; i < len(board); i++ {
		c := board[i]
		switch {
		case c >= '1' && c <= '7':
			file += int(c - '0')
			if file > BoardWidth {
				return nil, fenError(ErrOverfullRank, i)
			}
		case c == '/':
			if file != BoardWidth {
				return nil, fenError(ErrUnderfullRank, i)
			}
			file = 0
			rank--
			if rank < 0 {
				return nil, fenError(ErrTooManyRanks, i)
			}
		default:
			content, ok := squareFromFEN(c)
			if !ok {
				return nil, fenError(ErrInvalidChar, i)
			}
			if file >= BoardWidth {
				return nil, fenError(ErrOverfullRank, i)
			}
			g.board[rank][file] = content
			file++
		}
	}

	if rank != 0 || file != BoardWidth {
		return nil, fenError(ErrUnderfullRank, len(board))
	}

	return g, nil
}

// FEN serializes the board field of the position. The side to move is not
// included, so the start position round-trips to [InitialFEN] exactly.
func (g *Game) FEN() string {
	var b strings.Builder

	for rank := BoardHeight - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < BoardWidth; file++ {
			sq := g.board[rank][file]
			if sq.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte(byte('0' + empty))
				empty = 0
			}
			b.WriteByte(sq.FENChar())
		}
		if empty > 0 {
			b.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}

	return b.String()
}
