package game

// Player identifies one of the two sides.
type Player uint8

const (
	White Player = iota
	Brown
)

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == White {
		return Brown
	}
	return White
}

// String returns "white" or "brown".
func (p Player) String() string {
	if p == White {
		return "white"
	}
	return "brown"
}

// TileType is the face value of a tile. The underlying value is the tile's
// full stride length.
type TileType uint8

const (
	Two   TileType = 2
	Three TileType = 3
	Four  TileType = 4
)

// TileTypes returns all tile types in ascending order.
func TileTypes() []TileType {
	return []TileType{Two, Three, Four}
}

// FullStrideLength is the exact number of squares a capturing move covers.
func (t TileType) FullStrideLength() int {
	return int(t)
}

// ShortStrideLength is the exact number of squares a non-capturing short
// move covers: one less than the full stride.
func (t TileType) ShortStrideLength() int {
	return int(t) - 1
}

// Strides returns every stride this tile type may walk: all full-length
// strides (which may capture) followed by all short strides (which may not).
func (t TileType) Strides() []Stride {
	full := stridesOfLength(t.FullStrideLength(), true)
	short := stridesOfLength(t.ShortStrideLength(), false)
	return append(full, short...)
}

// Tile is a playing piece: a face value owned by a player.
type Tile struct {
	Type   TileType
	Player Player
}

// FENChar returns the tile's FEN character: Z/D/V for white two/three/four,
// z/d/v for brown.
func (t Tile) FENChar() byte {
	var c byte
	switch t.Type {
	case Two:
		c = 'Z'
	case Three:
		c = 'D'
	default:
		c = 'V'
	}
	if t.Player == Brown {
		c += 'a' - 'A'
	}
	return c
}

// tileFromFEN maps a FEN character back to a tile.
func tileFromFEN(c byte) (Tile, bool) {
	switch c {
	case 'Z':
		return Tile{Type: Two, Player: White}, true
	case 'z':
		return Tile{Type: Two, Player: Brown}, true
	case 'D':
		return Tile{Type: Three, Player: White}, true
	case 'd':
		return Tile{Type: Three, Player: Brown}, true
	case 'V':
		return Tile{Type: Four, Player: White}, true
	case 'v':
		return Tile{Type: Four, Player: Brown}, true
	}
	return Tile{}, false
}
