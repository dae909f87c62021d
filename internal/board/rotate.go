package board

// Angle is a clockwise rotation, restricted to the four canonical values.
type Angle int

const (
	Angle0   Angle = 0
	Angle90  Angle = 90
	Angle180 Angle = 180
	Angle270 Angle = 270
)

// Valid reports whether the angle is one of the four canonical values.
func (a Angle) Valid() bool {
	return a == Angle0 || a == Angle90 || a == Angle180 || a == Angle270
}

// Add composes two rotations.
func (a Angle) Add(b Angle) Angle {
	return Angle(((int(a)+int(b))%360 + 360) % 360)
}

// Inverse returns the angle that undoes this rotation.
func (a Angle) Inverse() Angle {
	return Angle((360 - int(a)) % 360)
}

// Turns returns the number of quarter turns (0-3).
func (a Angle) Turns() int {
	return (int(a) / 90) % 4
}

// RotatePoint rotates a coordinate clockwise within a size x size grid.
// The angle must be canonical; other values return the point unchanged.
func RotatePoint(c Coord, a Angle, size int) Coord {
	switch a {
	case Angle90:
		return C(size-1-c.Y, c.X)
	case Angle180:
		return C(size-1-c.X, size-1-c.Y)
	case Angle270:
		return C(c.Y, size-1-c.X)
	default:
		return c
	}
}

// RotateSide rotates a cell side clockwise. Sides form the cyclic sequence
// top, right, bottom, left, so each quarter turn is a shift by one.
func RotateSide(s Side, a Angle) Side {
	return Side((int(s) + a.Turns()) % int(SideCount))
}

// RotateDir rotates a slide direction clockwise, same cycle as RotateSide.
func RotateDir(d Dir, a Angle) Dir {
	return Dir((int(d) + a.Turns()) % int(DirCount))
}

// RotateSlant rotates a refractor diagonal. Quarter turns swap the two
// diagonals; half turns map each diagonal onto itself.
func RotateSlant(s Slant, a Angle) Slant {
	if a == Angle90 || a == Angle270 {
		return s.Flipped()
	}
	return s
}

// RotationBetween returns the clockwise rotation that moves corner from
// onto corner to.
func RotationBetween(from, to Corner) Angle {
	turns := (int(to) - int(from) + int(cornerCount)) % int(cornerCount)
	return Angle(turns * 90)
}
