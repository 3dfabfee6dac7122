package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileType_StrideLengths(t *testing.T) {
	tests := []struct {
		tileType  TileType
		wantFull  int
		wantShort int
	}{
		{tileType: Two, wantFull: 2, wantShort: 1},
		{tileType: Three, wantFull: 3, wantShort: 2},
		{tileType: Four, wantFull: 4, wantShort: 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.wantFull, tt.tileType.FullStrideLength())
		assert.Equal(t, tt.wantShort, tt.tileType.ShortStrideLength())
	}
}

func TestTileType_StrideCounts(t *testing.T) {
	// per length n: 4 straight strides plus 2*(n-1) bends per direction
	strideCount := func(n int) int { return 4 * (1 + 2*(n-1)) }

	tests := []struct {
		name     string
		tileType TileType
		want     int
	}{
		{name: "two", tileType: Two, want: strideCount(2) + strideCount(1)},
		{name: "three", tileType: Three, want: strideCount(3) + strideCount(2)},
		{name: "four", tileType: Four, want: strideCount(4) + strideCount(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strides := tt.tileType.Strides()
			assert.Len(t, strides, tt.want)

			capturing := 0
			for _, s := range strides {
				if s.CanCapture() {
					capturing++
					assert.Equal(t, tt.tileType.FullStrideLength(), s.Length())
				} else {
					assert.Equal(t, tt.tileType.ShortStrideLength(), s.Length())
				}
			}
			assert.Equal(t, strideCount(tt.tileType.FullStrideLength()), capturing,
				"exactly the full-length strides may capture")
		})
	}
}

func TestStride_StepsStraight(t *testing.T) {
	s := newStraightStride(North, 3, true)

	steps := s.Steps()
	require.Len(t, steps, 3)

	assert.Equal(t, Coord(1, 0), steps[0].Delta)
	assert.Equal(t, Coord(2, 0), steps[1].Delta)
	assert.Equal(t, Coord(3, 0), steps[2].Delta)

	for i, step := range steps {
		assert.Equal(t, North, step.Enter)
		assert.Equal(t, i == len(steps)-1, step.Final)
		if !step.Final {
			assert.Equal(t, North, step.Leave)
		}
	}
	assert.Equal(t, Coord(3, 0), s.FullDelta())
}

func TestStride_StepsBend(t *testing.T) {
	// one step east, then two steps north (a left bend)
	s := newBendStride(East, 1, North, 2, true)

	steps := s.Steps()
	require.Len(t, steps, 3)

	assert.Equal(t, Step{Delta: Coord(0, 1), Enter: East, Leave: North}, steps[0])
	assert.Equal(t, Step{Delta: Coord(1, 1), Enter: North, Leave: North}, steps[1])
	assert.Equal(t, Step{Delta: Coord(2, 1), Enter: North, Final: true}, steps[2])

	assert.Equal(t, Coord(2, 1), s.FullDelta())
}

func TestDirection_Turns(t *testing.T) {
	for _, d := range Directions() {
		assert.Equal(t, d, d.TurnLeft().TurnRight(), "%s", d)
		assert.Equal(t, d, d.TurnLeft().TurnLeft().TurnLeft().TurnLeft(), "%s", d)
	}
	assert.Equal(t, West, North.TurnLeft())
	assert.Equal(t, East, North.TurnRight())
}

func TestCoordinate_String(t *testing.T) {
	assert.Equal(t, "a1", Coord(0, 0).String())
	assert.Equal(t, "b2", Coord(1, 1).String())
	assert.Equal(t, "g9", Coord(8, 6).String())
	assert.Equal(t, "(9,0)", Coord(9, 0).String())
}
