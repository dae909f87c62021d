package board

import "fmt"

// ModuleSize is the edge length of an authored module tile.
const ModuleSize = 8

// FaceCount is the number of selectable faces per module.
const FaceCount = 2

// WallSpec is one authored wall record: a cell and the sides blocked on it.
type WallSpec struct {
	Pos   Coord
	Sides []Side
}

// Face is one authored side of a module: walls, refractors and goals, all in
// the module's own unrotated 8x8 coordinate space. Faces carry no implicit
// perimeter walls; the assembler owns the board boundary.
type Face struct {
	Walls      []WallSpec
	Refractors []Refractor
	Goals      []Goal
}

// Module is an authored 8x8 puzzle tile with two faces. GapCorner records
// which corner of the tile was adjacent to the board's central gap at
// authoring time; the assembler rotates the tile so that corner lands on the
// target quadrant's center corner.
type Module struct {
	ID        string
	Color     Color
	GapCorner Corner
	Faces     [FaceCount]Face
}

// Tile is a fully materialized square grid of cells. It is the intermediate
// product between an authored face and the assembled board.
type Tile struct {
	size  int
	cells []Cell
}

// NewTile creates an empty tile of the given edge length.
func NewTile(size int) *Tile {
	return &Tile{size: size, cells: make([]Cell, size*size)}
}

// Size returns the tile edge length.
func (t *Tile) Size() int {
	return t.size
}

// InBounds reports whether the coordinate lies within the tile.
func (t *Tile) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < t.size && c.Y >= 0 && c.Y < t.size
}

func (t *Tile) index(c Coord) int {
	return c.Y*t.size + c.X
}

// Cell returns the cell at the given coordinate.
// Returns a zero cell if out of bounds.
func (t *Tile) Cell(c Coord) Cell {
	if !t.InBounds(c) {
		return Cell{}
	}
	return t.cells[t.index(c)]
}

// SetWall records a wall on one side of a cell and mirrors it onto the
// adjacent cell's opposite side, keeping adjacency symmetric.
func (t *Tile) SetWall(c Coord, s Side) {
	if !t.InBounds(c) {
		return
	}
	t.cells[t.index(c)].Walls = t.cells[t.index(c)].Walls.With(s)
	dx, dy := s.Delta()
	n := C(c.X+dx, c.Y+dy)
	if t.InBounds(n) {
		t.cells[t.index(n)].Walls = t.cells[t.index(n)].Walls.With(s.Opposite())
	}
}

// SetRefractor places a refractor at its recorded coordinate.
func (t *Tile) SetRefractor(r Refractor) {
	if !t.InBounds(r.Pos) {
		return
	}
	rc := r
	t.cells[t.index(r.Pos)].Refractor = &rc
}

// SetGoal places a goal at its recorded coordinate.
func (t *Tile) SetGoal(g Goal) {
	if !t.InBounds(g.Pos) {
		return
	}
	gc := g
	t.cells[t.index(g.Pos)].Goal = &gc
}

// Rotate returns a new tile with every wall, refractor and goal individually
// rotated clockwise by the given angle and re-inserted at its rotated
// coordinate. Wall sides, refractor slants and positions all rotate
// consistently.
func (t *Tile) Rotate(a Angle) *Tile {
	if a == Angle0 {
		return t.clone()
	}
	out := NewTile(t.size)
	for y := 0; y < t.size; y++ {
		for x := 0; x < t.size; x++ {
			c := C(x, y)
			cell := t.cells[t.index(c)]
			rc := RotatePoint(c, a, t.size)
			for _, s := range AllSides() {
				if cell.Walls.Has(s) {
					out.SetWall(rc, RotateSide(s, a))
				}
			}
			if cell.Refractor != nil {
				out.SetRefractor(Refractor{
					Pos:   rc,
					Slant: RotateSlant(cell.Refractor.Slant, a),
					Color: cell.Refractor.Color,
				})
			}
			if cell.Goal != nil {
				g := *cell.Goal
				g.Pos = rc
				out.SetGoal(g)
			}
		}
	}
	return out
}

func (t *Tile) clone() *Tile {
	out := NewTile(t.size)
	copy(out.cells, t.cells)
	return out
}

// Materialize builds the 8x8 cell grid of one face strictly from the face's
// explicit wall list, mirroring each recorded wall onto the adjacent cell so
// adjacency is symmetric within the module.
func (m *Module) Materialize(face int) (*Tile, error) {
	if face < 0 || face >= FaceCount {
		return nil, &BuildError{
			Code:    ErrCodeUnknownFace,
			Message: fmt.Sprintf("module %q has no face %d", m.ID, face),
		}
	}
	f := m.Faces[face]
	t := NewTile(ModuleSize)
	for _, w := range f.Walls {
		for _, s := range w.Sides {
			t.SetWall(w.Pos, s)
		}
	}
	for _, r := range f.Refractors {
		t.SetRefractor(r)
	}
	for _, g := range f.Goals {
		t.SetGoal(g)
	}
	return t, nil
}

// MaterializeRotated materializes a face and rotates the result.
func (m *Module) MaterializeRotated(face int, a Angle) (*Tile, error) {
	t, err := m.Materialize(face)
	if err != nil {
		return nil, err
	}
	return t.Rotate(a), nil
}

// RotationFor returns the clockwise rotation that moves the module's
// authored gap corner onto the target quadrant's center-facing corner.
func (m *Module) RotationFor(q Quadrant) Angle {
	return RotationBetween(m.GapCorner, q.GapCorner())
}
