package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove_String(t *testing.T) {
	whiteTwo := Tile{Type: Two, Player: White}
	brownThree := Tile{Type: Three, Player: Brown}

	tests := []struct {
		name string
		move Move
		want string
	}{
		{
			name: "quiet move",
			move: Move{Kind: MoveQuiet, Tile: whiteTwo, From: Coord(1, 1), To: Coord(3, 1)},
			want: "Zb2b4",
		},
		{
			name: "tile capture",
			move: Move{Kind: MoveTileCapture, Tile: whiteTwo, From: Coord(1, 1), To: Coord(3, 1), Victim: brownThree},
			want: "Zb2xdb4",
		},
		{
			name: "barragoon capture with re-placement",
			move: Move{
				Kind:       MoveBarragoonCapture,
				Tile:       whiteTwo,
				From:       Coord(1, 1),
				To:         Coord(3, 1),
				VictimFace: BlockingFace(),
				Target:     Coord(4, 2),
				Placed:     ForceTurnFace(),
			},
			want: "Zb2oxb4!+c5",
		},
		{
			name: "barragoon placement",
			move: Move{Kind: MoveBarragoonPlacement, Target: Coord(4, 2), Placed: ForceTurnFace()},
			want: "!+c5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.move.String())
		})
	}
}

func TestMoveFromString(t *testing.T) {
	g := New()

	move, err := g.MoveFromString("Zc2c4")
	require.NoError(t, err)
	assert.Equal(t, Move{
		Kind: MoveQuiet,
		Tile: Tile{Type: Two, Player: White},
		From: Coord(1, 2),
		To:   Coord(3, 2),
	}, move)
}

func TestMoveFromString_RejectsUnknown(t *testing.T) {
	g := New()

	tests := []string{
		"",
		"nonsense",
		"Zc2c9", // not reachable
		"zc7c5", // brown tile, white to move
	}

	for _, s := range tests {
		_, err := g.MoveFromString(s)
		assert.ErrorIs(t, err, ErrIllegalMove, "input %q", s)
	}
}

func TestMoveStrings_RoundTripThroughValidMoves(t *testing.T) {
	g := New()

	for _, m := range g.ValidMoves() {
		parsed, err := g.MoveFromString(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}
