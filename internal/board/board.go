package board

import (
	"fmt"
	"sort"
	"strings"
)

// Size is the edge length of the assembled composite board.
const Size = 2 * ModuleSize

// deadZoneMin and deadZoneMax bound the sealed central region, inclusive.
const (
	deadZoneMin = ModuleSize - 1
	deadZoneMax = ModuleSize
)

// Placement selects one module face for a quadrant.
type Placement struct {
	ModuleID string
	Face     int
}

// Config is the ordered quadrant assignment for a board, in the fixed order
// top-left, top-right, bottom-left, bottom-right.
type Config struct {
	Quadrants [QuadrantCount]Placement
}

// Board is the assembled 16x16 play surface. It is immutable after Build and
// safe for concurrent readers.
type Board struct {
	cells     []Cell
	goals     []Goal
	config    Config
	quadrants [QuadrantCount]*Module
}

// Build assembles a board from a configuration and a module catalogue.
//
// The four quadrant references must resolve to four modules with pairwise
// distinct colors. Each module is rotated so its authored gap corner faces
// the board center, copied into its quadrant with seam-preserving wall
// mirroring, and the central 2x2 dead zone is sealed and emptied.
func Build(cfg Config, catalogue []*Module) (*Board, error) {
	byID := make(map[string]*Module, len(catalogue))
	for _, m := range catalogue {
		byID[m.ID] = m
	}

	b := &Board{
		cells:  make([]Cell, Size*Size),
		config: cfg,
	}

	// True outer boundary on the four real edges.
	for i := 0; i < Size; i++ {
		b.addWall(C(i, 0), SideTop)
		b.addWall(C(i, Size-1), SideBottom)
		b.addWall(C(0, i), SideLeft)
		b.addWall(C(Size-1, i), SideRight)
	}

	// Resolve quadrant modules and require four distinct colors.
	seen := make(map[Color]string, QuadrantCount)
	for _, q := range AllQuadrants() {
		p := cfg.Quadrants[q]
		m, ok := byID[p.ModuleID]
		if !ok {
			return nil, &BuildError{
				Code:    ErrCodeUnknownModule,
				Message: fmt.Sprintf("quadrant %s references unknown module %q", q, p.ModuleID),
			}
		}
		if prev, dup := seen[m.Color]; dup {
			return nil, &BuildError{
				Code:    ErrCodeDuplicateColor,
				Message: fmt.Sprintf("modules %q and %q share color %s", prev, m.ID, m.Color),
			}
		}
		seen[m.Color] = m.ID
		b.quadrants[q] = m
	}

	for _, q := range AllQuadrants() {
		m := b.quadrants[q]
		tile, err := m.MaterializeRotated(cfg.Quadrants[q].Face, m.RotationFor(q))
		if err != nil {
			return nil, err
		}
		b.copyTile(tile, q.Offset())
	}

	b.sealDeadZone()
	b.indexGoals()
	return b, nil
}

// copyTile translates a materialized quadrant tile onto the board. Walls
// that coincide with the true outer boundary are skipped (already set);
// seam walls between quadrants are kept and mirrored across the seam.
func (b *Board) copyTile(t *Tile, offset Coord) {
	for y := 0; y < t.Size(); y++ {
		for x := 0; x < t.Size(); x++ {
			local := C(x, y)
			cell := t.Cell(local)
			global := C(local.X+offset.X, local.Y+offset.Y)
			for _, s := range AllSides() {
				if !cell.Walls.Has(s) || b.isOuterBoundary(global, s) {
					continue
				}
				b.addWall(global, s)
			}
			if cell.Refractor != nil {
				r := *cell.Refractor
				r.Pos = global
				rc := r
				b.cells[b.index(global)].Refractor = &rc
			}
			if cell.Goal != nil {
				g := *cell.Goal
				g.Pos = global
				gc := g
				b.cells[b.index(global)].Goal = &gc
			}
		}
	}
}

// isOuterBoundary reports whether the wall (c, s) lies on a true edge of the
// global board.
func (b *Board) isOuterBoundary(c Coord, s Side) bool {
	switch s {
	case SideTop:
		return c.Y == 0
	case SideBottom:
		return c.Y == Size-1
	case SideLeft:
		return c.X == 0
	case SideRight:
		return c.X == Size-1
	}
	return false
}

// addWall sets a wall flag and mirrors it onto the neighbor's opposite side.
func (b *Board) addWall(c Coord, s Side) {
	b.cells[b.index(c)].Walls = b.cells[b.index(c)].Walls.With(s)
	dx, dy := s.Delta()
	n := C(c.X+dx, c.Y+dy)
	if b.InBounds(n) {
		b.cells[b.index(n)].Walls = b.cells[b.index(n)].Walls.With(s.Opposite())
	}
}

// sealDeadZone walls every side of every central cell, mirrors the inward
// flags onto the surrounding ring, and strips any content inside.
func (b *Board) sealDeadZone() {
	for y := deadZoneMin; y <= deadZoneMax; y++ {
		for x := deadZoneMin; x <= deadZoneMax; x++ {
			c := C(x, y)
			for _, s := range AllSides() {
				b.addWall(c, s)
			}
			i := b.index(c)
			b.cells[i].Refractor = nil
			b.cells[i].Goal = nil
		}
	}
}

// indexGoals collects every goal cell into the board's flat goal list,
// ordered by position for determinism.
func (b *Board) indexGoals() {
	b.goals = b.goals[:0]
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g := b.cells[b.index(C(x, y))].Goal; g != nil {
				b.goals = append(b.goals, *g)
			}
		}
	}
	sort.SliceStable(b.goals, func(i, j int) bool {
		if b.goals[i].Pos.Y != b.goals[j].Pos.Y {
			return b.goals[i].Pos.Y < b.goals[j].Pos.Y
		}
		return b.goals[i].Pos.X < b.goals[j].Pos.X
	})
}

func (b *Board) index(c Coord) int {
	return c.Y*Size + c.X
}

// InBounds reports whether the coordinate lies on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

// InDeadZone reports whether the coordinate lies inside the sealed central
// 2x2 region.
func InDeadZone(c Coord) bool {
	return c.X >= deadZoneMin && c.X <= deadZoneMax &&
		c.Y >= deadZoneMin && c.Y <= deadZoneMax
}

// Cell returns the cell at the given coordinate.
// Returns a zero cell if out of bounds.
func (b *Board) Cell(c Coord) Cell {
	if !b.InBounds(c) {
		return Cell{}
	}
	return b.cells[b.index(c)]
}

// HasWall reports whether the cell at c is walled on the given side.
func (b *Board) HasWall(c Coord, s Side) bool {
	return b.Cell(c).Walls.Has(s)
}

// Goals returns the board's goal index in position order.
func (b *Board) Goals() []Goal {
	out := make([]Goal, len(b.goals))
	copy(out, b.goals)
	return out
}

// GoalAt returns the goal at the given coordinate, if any.
func (b *Board) GoalAt(c Coord) (Goal, bool) {
	if g := b.Cell(c).Goal; g != nil {
		return *g, true
	}
	return Goal{}, false
}

// GoalByID returns the goal with the given id, if any.
func (b *Board) GoalByID(id string) (Goal, bool) {
	for _, g := range b.goals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}

// Config returns the quadrant configuration the board was built from.
func (b *Board) Config() Config {
	return b.config
}

// QuadrantModule returns the module placed in the given quadrant.
func (b *Board) QuadrantModule(q Quadrant) *Module {
	return b.quadrants[q]
}

// Signature returns a stable textual identity for the board layout, derived
// from the quadrant assignment. Used as a storage key for solve records.
func (b *Board) Signature() string {
	parts := make([]string, 0, QuadrantCount)
	for _, q := range AllQuadrants() {
		p := b.config.Quadrants[q]
		parts = append(parts, fmt.Sprintf("%s:%d", p.ModuleID, p.Face))
	}
	return strings.Join(parts, "|")
}
