// Package board implements the composite puzzle board: four authored 8x8
// modules assembled into a single 16x16 grid of cells carrying walls,
// refractors and goals. This package is UI-agnostic and deterministic.
package board

import "fmt"

// Coord is a cell position. (0,0) is the top-left corner; Y grows downward.
type Coord struct {
	X, Y int
}

// C is a shorthand constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the coordinate one cell away in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Dir represents a slide direction.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
	DirCount // Sentinel value for iteration
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// Side returns the cell side a token leaves through when sliding in this
// direction. Dir and Side share the same cyclic ordering, so the conversion
// is positional.
func (d Dir) Side() Side {
	return Side(d)
}

// AllDirs returns all four slide directions in canonical order.
func AllDirs() []Dir {
	return []Dir{DirUp, DirRight, DirDown, DirLeft}
}

// Side identifies one of the four sides of a cell.
type Side uint8

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
	SideCount // Sentinel value for iteration
)

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Opposite returns the side facing this one from the adjacent cell.
func (s Side) Opposite() Side {
	return Side((s + 2) % SideCount)
}

// Delta returns the (dx, dy) offset of the neighbor across this side.
func (s Side) Delta() (dx, dy int) {
	return Dir(s).Delta()
}

// ParseSide converts a string to a Side.
// Returns SideTop and false if the string is not recognized.
func ParseSide(str string) (Side, bool) {
	switch str {
	case "top", "up":
		return SideTop, true
	case "right":
		return SideRight, true
	case "bottom", "down":
		return SideBottom, true
	case "left":
		return SideLeft, true
	default:
		return SideTop, false
	}
}

// AllSides returns all four sides in canonical order.
func AllSides() []Side {
	return []Side{SideTop, SideRight, SideBottom, SideLeft}
}

// Corner identifies one of the four corners of a module or board.
// Corners are ordered clockwise so that rotation math stays cyclic.
type Corner uint8

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
	cornerCount
)

// String returns the string representation of a corner.
func (c Corner) String() string {
	switch c {
	case CornerTopLeft:
		return "top-left"
	case CornerTopRight:
		return "top-right"
	case CornerBottomRight:
		return "bottom-right"
	case CornerBottomLeft:
		return "bottom-left"
	default:
		return "unknown"
	}
}

// ParseCorner converts a string to a Corner.
// Accepts both "top-left" and "top_left" spellings.
// Returns CornerTopLeft and false if the string is not recognized.
func ParseCorner(str string) (Corner, bool) {
	switch str {
	case "top-left", "top_left":
		return CornerTopLeft, true
	case "top-right", "top_right":
		return CornerTopRight, true
	case "bottom-right", "bottom_right":
		return CornerBottomRight, true
	case "bottom-left", "bottom_left":
		return CornerBottomLeft, true
	default:
		return CornerTopLeft, false
	}
}

// Quadrant identifies one of the four 8x8 regions of the composite board.
// The ordering matches the board configuration order: top-left, top-right,
// bottom-left, bottom-right.
type Quadrant uint8

const (
	QuadrantTopLeft Quadrant = iota
	QuadrantTopRight
	QuadrantBottomLeft
	QuadrantBottomRight
	QuadrantCount // Sentinel value for iteration
)

// String returns the string representation of a quadrant.
func (q Quadrant) String() string {
	switch q {
	case QuadrantTopLeft:
		return "top-left"
	case QuadrantTopRight:
		return "top-right"
	case QuadrantBottomLeft:
		return "bottom-left"
	case QuadrantBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// Offset returns the top-left board coordinate of this quadrant.
func (q Quadrant) Offset() Coord {
	switch q {
	case QuadrantTopLeft:
		return C(0, 0)
	case QuadrantTopRight:
		return C(ModuleSize, 0)
	case QuadrantBottomLeft:
		return C(0, ModuleSize)
	case QuadrantBottomRight:
		return C(ModuleSize, ModuleSize)
	default:
		return C(0, 0)
	}
}

// GapCorner returns the corner of this quadrant that touches the board
// center. A module placed here must have its authored gap corner rotated
// onto this corner.
func (q Quadrant) GapCorner() Corner {
	switch q {
	case QuadrantTopLeft:
		return CornerBottomRight
	case QuadrantTopRight:
		return CornerBottomLeft
	case QuadrantBottomLeft:
		return CornerTopRight
	case QuadrantBottomRight:
		return CornerTopLeft
	default:
		return CornerTopLeft
	}
}

// AllQuadrants returns the quadrants in configuration order.
func AllQuadrants() []Quadrant {
	return []Quadrant{QuadrantTopLeft, QuadrantTopRight, QuadrantBottomLeft, QuadrantBottomRight}
}
