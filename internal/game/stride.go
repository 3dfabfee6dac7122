package game

// Stride is a single movement pattern: a run of steps in a start direction,
// optionally followed by a run in a perpendicular bend direction. A stride
// with bendLen 0 is a straight move.
//
// Only full-length strides may capture; the shorter strides a tile is also
// allowed to walk are quiet moves only.
type Stride struct {
	startDir Direction
	startLen int
	bendDir  Direction
	bendLen  int
	capture  bool
}

// Step is one square of a stride walk.
//
// Delta is the cumulative offset from the stride's origin. Enter is the
// direction of travel into the square. Leave is the direction of travel out
// of it and is only meaningful when Final is false; on the last step of the
// stride Final is true and the walk ends on the square.
type Step struct {
	Delta Coordinate
	Enter Direction
	Leave Direction
	Final bool
}

func newStraightStride(dir Direction, length int, capture bool) Stride {
	return Stride{startDir: dir, startLen: length, bendDir: dir, capture: capture}
}

func newBendStride(startDir Direction, startLen int, bendDir Direction, bendLen int, capture bool) Stride {
	return Stride{startDir: startDir, startLen: startLen, bendDir: bendDir, bendLen: bendLen, capture: capture}
}

// stridesOfLength generates every stride of exactly the given length: one
// straight stride per direction plus, for each intermediate step, a left
// bend and a right bend.
func stridesOfLength(length int, capture bool) []Stride {
	var strides []Stride
	for _, dir := range Directions() {
		strides = append(strides, newStraightStride(dir, length, capture))
		for bend := 1; bend < length; bend++ {
			strides = append(strides,
				newBendStride(dir, bend, dir.TurnLeft(), length-bend, capture),
				newBendStride(dir, bend, dir.TurnRight(), length-bend, capture),
			)
		}
	}
	return strides
}

// CanCapture reports whether a walk of this stride may end in a capture.
func (s Stride) CanCapture() bool {
	return s.capture
}

// Length returns the total number of squares the stride covers.
func (s Stride) Length() int {
	return s.startLen + s.bendLen
}

// FullDelta returns the offset from the origin to the stride's final square.
func (s Stride) FullDelta() Coordinate {
	return s.startDir.Delta().Scale(s.startLen).Add(s.bendDir.Delta().Scale(s.bendLen))
}

// Steps returns the stride's walk, one entry per square visited in order.
func (s Stride) Steps() []Step {
	steps := make([]Step, 0, s.Length())
	pos := Coordinate{}
	for i := 0; i < s.Length(); i++ {
		dir := s.startDir
		if i >= s.startLen {
			dir = s.bendDir
		}
		pos = pos.Add(dir.Delta())

		step := Step{Delta: pos, Enter: dir}
		if i == s.Length()-1 {
			step.Final = true
		} else {
			next := s.startDir
			if i+1 >= s.startLen {
				next = s.bendDir
			}
			step.Leave = next
		}
		steps = append(steps, step)
	}
	return steps
}
