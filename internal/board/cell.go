package board

// WallSet is a bitmask of blocked cell sides, indexed by Side.
type WallSet uint8

// Has reports whether the given side is walled.
func (w WallSet) Has(s Side) bool {
	return w&(1<<s) != 0
}

// With returns the set with the given side walled.
func (w WallSet) With(s Side) WallSet {
	return w | (1 << s)
}

// FullWallSet returns a set with all four sides walled.
func FullWallSet() WallSet {
	return 1<<SideTop | 1<<SideRight | 1<<SideBottom | 1<<SideLeft
}

// Count returns the number of walled sides.
func (w WallSet) Count() int {
	n := 0
	for _, s := range AllSides() {
		if w.Has(s) {
			n++
		}
	}
	return n
}

// Slant is the diagonal orientation of a refractor.
type Slant uint8

const (
	SlantBack    Slant = iota // '\' top-left to bottom-right
	SlantForward              // '/' bottom-left to top-right
)

// String returns the diagonal as a one-character string.
func (s Slant) String() string {
	if s == SlantForward {
		return "/"
	}
	return `\`
}

// Flipped returns the other diagonal.
func (s Slant) Flipped() Slant {
	if s == SlantBack {
		return SlantForward
	}
	return SlantBack
}

// ParseSlant converts a string to a Slant.
// Returns SlantBack and false if the string is not recognized.
func ParseSlant(str string) (Slant, bool) {
	switch str {
	case `\`, "back", "backslash":
		return SlantBack, true
	case "/", "forward", "slash":
		return SlantForward, true
	default:
		return SlantBack, false
	}
}

// Deflect returns the direction a token of a non-matching color continues
// in after entering a refractor of this slant while moving in d.
//
// For '\': right and down swap, left and up swap.
// For '/': right and up swap, left and down swap.
func (s Slant) Deflect(d Dir) Dir {
	if s == SlantBack {
		switch d {
		case DirRight:
			return DirDown
		case DirDown:
			return DirRight
		case DirLeft:
			return DirUp
		case DirUp:
			return DirLeft
		}
		return d
	}
	switch d {
	case DirRight:
		return DirUp
	case DirUp:
		return DirRight
	case DirLeft:
		return DirDown
	case DirDown:
		return DirLeft
	}
	return d
}

// Refractor is a colored diagonal cell feature. Tokens of the same color
// pass straight through; all other tokens are deflected by 90 degrees.
type Refractor struct {
	Pos   Coord
	Slant Slant
	Color Color
}

// Shape is the printed symbol of a goal cell.
type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeTriangle
	ShapeSquare
	ShapeHexagon
	ShapeSpiral
	ShapeCount // Sentinel value for iteration
)

// String returns the string representation of a shape.
func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeTriangle:
		return "triangle"
	case ShapeSquare:
		return "square"
	case ShapeHexagon:
		return "hexagon"
	case ShapeSpiral:
		return "spiral"
	default:
		return "unknown"
	}
}

// ParseShape converts a string to a Shape.
// Returns ShapeCircle and false if the string is not recognized.
func ParseShape(str string) (Shape, bool) {
	switch str {
	case "circle":
		return ShapeCircle, true
	case "triangle":
		return ShapeTriangle, true
	case "square":
		return ShapeSquare, true
	case "hexagon":
		return ShapeHexagon, true
	case "spiral":
		return ShapeSpiral, true
	default:
		return ShapeCircle, false
	}
}

// Goal is a destination cell. Color may be ColorAny for wildcard goals that
// accept any token. ID is unique within an assembled board.
type Goal struct {
	Pos   Coord
	Shape Shape
	Color Color
	ID    string
}

// Accepts reports whether a token of the given color may claim this goal.
func (g Goal) Accepts(c Color) bool {
	return g.Color == ColorAny || g.Color == c
}

// Cell is the immutable content of one board position: up to four walls,
// at most one refractor and at most one goal.
type Cell struct {
	Walls     WallSet
	Refractor *Refractor
	Goal      *Goal
}
