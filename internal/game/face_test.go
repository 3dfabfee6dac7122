package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllFaces_Sixteen(t *testing.T) {
	faces := AllFaces()

	assert.Len(t, faces, 16)
	unique := make(map[Face]struct{})
	for _, f := range faces {
		unique[f] = struct{}{}
	}
	assert.Len(t, unique, 16)
}

func TestFace_ForceTurnCannotBeCapturedByTwo(t *testing.T) {
	assert.False(t, ForceTurnFace().CanBeCapturedBy(Two))
}

func TestFace_AllOtherFaceTypePairsAreCapturable(t *testing.T) {
	for _, face := range AllFaces() {
		for _, tileType := range TileTypes() {
			if face == ForceTurnFace() && tileType == Two {
				continue
			}
			assert.True(t, face.CanBeCapturedBy(tileType),
				"face %c should be capturable by %d", face.FENChar(), tileType)
		}
	}
}

func TestFace_CanBeCapturedFrom(t *testing.T) {
	tests := []struct {
		name string
		face Face
		want map[Direction]bool
	}{
		{
			name: "blocking from anywhere",
			face: BlockingFace(),
			want: map[Direction]bool{North: true, East: true, South: true, West: true},
		},
		{
			name: "force turn from anywhere",
			face: ForceTurnFace(),
			want: map[Direction]bool{North: true, East: true, South: true, West: true},
		},
		{
			name: "vertical straight along its axis",
			face: StraightFace(Vertical),
			want: map[Direction]bool{North: true, South: true},
		},
		{
			name: "horizontal straight along its axis",
			face: StraightFace(Horizontal),
			want: map[Direction]bool{East: true, West: true},
		},
		{
			name: "one-way only in its direction",
			face: OneWayFace(North),
			want: map[Direction]bool{North: true},
		},
		{
			name: "left turn to south only from west",
			face: TurnLeftFace(South),
			want: map[Direction]bool{West: true},
		},
		{
			name: "right turn to north only from west",
			face: TurnRightFace(North),
			want: map[Direction]bool{West: true},
		},
		{
			name: "left turn to east only from south",
			face: TurnLeftFace(East),
			want: map[Direction]bool{South: true},
		},
		{
			name: "right turn to east only from north",
			face: TurnRightFace(East),
			want: map[Direction]bool{North: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, dir := range Directions() {
				assert.Equal(t, tt.want[dir], tt.face.CanBeCapturedFrom(dir),
					"capture of %c arriving %s", tt.face.FENChar(), dir)
			}
		})
	}
}

func TestFace_CanBeTraversed(t *testing.T) {
	tests := []struct {
		name         string
		face         Face
		enter, leave Direction
		want         bool
	}{
		{name: "blocking never", face: BlockingFace(), enter: North, leave: North, want: false},
		{name: "force turn refuses straight", face: ForceTurnFace(), enter: North, leave: North, want: false},
		{name: "force turn allows left turn", face: ForceTurnFace(), enter: North, leave: West, want: true},
		{name: "force turn allows right turn", face: ForceTurnFace(), enter: North, leave: East, want: true},
		{name: "vertical straight passes vertically", face: StraightFace(Vertical), enter: South, leave: South, want: true},
		{name: "vertical straight refuses horizontal", face: StraightFace(Vertical), enter: East, leave: East, want: false},
		{name: "vertical straight refuses turns", face: StraightFace(Vertical), enter: North, leave: East, want: false},
		{name: "horizontal straight passes horizontally", face: StraightFace(Horizontal), enter: West, leave: West, want: true},
		{name: "horizontal straight refuses vertical", face: StraightFace(Horizontal), enter: North, leave: North, want: false},
		{name: "one-way passes in its direction", face: OneWayFace(East), enter: East, leave: East, want: true},
		{name: "one-way refuses the opposite direction", face: OneWayFace(East), enter: West, leave: West, want: false},
		{name: "one-way refuses turning on it", face: OneWayFace(East), enter: East, leave: North, want: false},
		{name: "left turn face matches its turn", face: TurnLeftFace(West), enter: North, leave: West, want: true},
		{name: "left turn face refuses other left turns", face: TurnLeftFace(West), enter: South, leave: East, want: false},
		{name: "left turn face refuses the mirror right turn", face: TurnLeftFace(West), enter: South, leave: West, want: false},
		{name: "right turn face matches its turn", face: TurnRightFace(East), enter: North, leave: East, want: true},
		{name: "right turn face refuses straight", face: TurnRightFace(East), enter: East, leave: East, want: false},
		{name: "reversal is never a traversal", face: ForceTurnFace(), enter: North, leave: South, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.face.CanBeTraversed(tt.enter, tt.leave))
		})
	}
}
