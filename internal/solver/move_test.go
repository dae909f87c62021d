package solver_test

import (
	"testing"

	"github.com/vovakirdan/prismslide/internal/board"
	"github.com/vovakirdan/prismslide/internal/solver"
)

// plainModule returns a module with two empty faces.
func plainModule(id string, color board.Color, gap board.Corner) *board.Module {
	return &board.Module{ID: id, Color: color, GapCorner: gap}
}

// buildBoard assembles a board whose top-left quadrant holds the given face
// content unrotated (gap corner bottom-right) and whose other quadrants are
// empty. Face coordinates below 8 are therefore also board coordinates.
func buildBoard(t *testing.T, face board.Face) *board.Board {
	t.Helper()
	red := &board.Module{
		ID:        "m-red",
		Color:     board.ColorRed,
		GapCorner: board.CornerBottomRight,
		Faces:     [board.FaceCount]board.Face{face, {}},
	}
	cat := []*board.Module{
		red,
		plainModule("m-green", board.ColorGreen, board.CornerBottomLeft),
		plainModule("m-blue", board.ColorBlue, board.CornerTopLeft),
		plainModule("m-yellow", board.ColorYellow, board.CornerTopRight),
	}
	cfg := board.Config{Quadrants: [board.QuadrantCount]board.Placement{
		{ModuleID: "m-red"},
		{ModuleID: "m-green"},
		{ModuleID: "m-blue"},
		{ModuleID: "m-yellow"},
	}}
	b, err := board.Build(cfg, cat)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	return b
}

func openBoard(t *testing.T) *board.Board {
	t.Helper()
	return buildBoard(t, board.Face{})
}

func TestSlideUntilBoundary(t *testing.T) {
	b := openBoard(t)
	tokens := []board.Token{{Color: board.ColorRed, Pos: board.C(0, 0)}}

	mv, err := solver.Simulate(b, tokens, board.ColorRed, board.DirRight)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if !mv.Moved {
		t.Fatal("expected the token to move")
	}
	if mv.Final != board.C(15, 0) {
		t.Errorf("final = %v, want (15,0)", mv.Final)
	}
	if len(mv.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(mv.Segments))
	}
	seg := mv.Segments[0]
	if seg.From != board.C(0, 0) || seg.Dir != board.DirRight || seg.To != board.C(15, 0) {
		t.Errorf("segment = %+v", seg)
	}
}

func TestSlideBlockedByToken(t *testing.T) {
	// Tokens at (0,0) and (5,0) on an otherwise open row: sliding the
	// first one right must stop one cell short of the occupied cell.
	b := openBoard(t)
	tokens := []board.Token{
		{Color: board.ColorRed, Pos: board.C(0, 0)},
		{Color: board.ColorGreen, Pos: board.C(5, 0)},
	}

	mv, err := solver.Simulate(b, tokens, board.ColorRed, board.DirRight)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if mv.Final != board.C(4, 0) {
		t.Errorf("final = %v, want (4,0)", mv.Final)
	}
}

func TestSlideBlockedByDeadZone(t *testing.T) {
	b := openBoard(t)
	tokens := []board.Token{{Color: board.ColorRed, Pos: board.C(7, 0)}}

	mv, err := solver.Simulate(b, tokens, board.ColorRed, board.DirDown)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	// Column 7 runs into the dead zone at row 7.
	if mv.Final != board.C(7, 6) {
		t.Errorf("final = %v, want (7,6)", mv.Final)
	}
}

func TestSlideBlockedByWall(t *testing.T) {
	face := board.Face{
		Walls: []board.WallSpec{{Pos: board.C(5, 2), Sides: []board.Side{board.SideRight}}},
	}
	b := buildBoard(t, face)
	tokens := []board.Token{{Color: board.ColorRed, Pos: board.C(0, 2)}}

	mv, err := solver.Simulate(b, tokens, board.ColorRed, board.DirRight)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if mv.Final != board.C(5, 2) {
		t.Errorf("final = %v, want (5,2)", mv.Final)
	}
}

func TestSlideZeroDisplacement(t *testing.T) {
	b := openBoard(t)
	tokens := []board.Token{{Color: board.ColorRed, Pos: board.C(0, 0)}}

	mv, err := solver.Simulate(b, tokens, board.ColorRed, board.DirUp)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if mv.Moved {
		t.Error("expected zero displacement against the boundary")
	}
	if mv.Final != board.C(0, 0) {
		t.Errorf("final = %v, want (0,0)", mv.Final)
	}
	if len(mv.Segments) != 0 {
		t.Errorf("expected no segments, got %d", len(mv.Segments))
	}
}

func TestSlideUnknownToken(t *testing.T) {
	b := openBoard(t)
	tokens := []board.Token{{Color: board.ColorRed, Pos: board.C(0, 0)}}

	if _, err := solver.Simulate(b, tokens, board.ColorBlue, board.DirRight); err == nil {
		t.Error("expected an error for a color with no token")
	}
}

func TestRefractionSameColorTransparent(t *testing.T) {
	// Refractor at (3,3), slant '\', yellow: a yellow token sliding right
	// through it continues right unaffected.
	face := board.Face{
		Refractors: []board.Refractor{{Pos: board.C(3, 3), Slant: board.SlantBack, Color: board.ColorYellow}},
	}
	b := buildBoard(t, face)
	tokens := []board.Token{{Color: board.ColorYellow, Pos: board.C(0, 3)}}

	mv, err := solver.Simulate(b, tokens, board.ColorYellow, board.DirRight)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if mv.Final != board.C(15, 3) {
		t.Errorf("final = %v, want (15,3)", mv.Final)
	}
	if len(mv.Segments) != 1 {
		t.Errorf("same-color pass-through must not break segments, got %d", len(mv.Segments))
	}
}

func TestRefractionDeflectsOtherColor(t *testing.T) {
	// The same refractor turns a red token sliding right downward at (3,3).
	face := board.Face{
		Refractors: []board.Refractor{{Pos: board.C(3, 3), Slant: board.SlantBack, Color: board.ColorYellow}},
	}
	b := buildBoard(t, face)
	tokens := []board.Token{{Color: board.ColorRed, Pos: board.C(0, 3)}}

	mv, err := solver.Simulate(b, tokens, board.ColorRed, board.DirRight)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if mv.Final != board.C(3, 15) {
		t.Errorf("final = %v, want (3,15)", mv.Final)
	}
	if len(mv.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(mv.Segments))
	}
	first, second := mv.Segments[0], mv.Segments[1]
	if first.From != board.C(0, 3) || first.Dir != board.DirRight || first.To != board.C(3, 3) {
		t.Errorf("first segment = %+v", first)
	}
	if second.From != board.C(3, 3) || second.Dir != board.DirDown || second.To != board.C(3, 15) {
		t.Errorf("second segment = %+v", second)
	}
}

func TestRefractionTable(t *testing.T) {
	tests := []struct {
		slant board.Slant
		in    board.Dir
		want  board.Dir
	}{
		{board.SlantBack, board.DirRight, board.DirDown},
		{board.SlantBack, board.DirDown, board.DirRight},
		{board.SlantBack, board.DirLeft, board.DirUp},
		{board.SlantBack, board.DirUp, board.DirLeft},
		{board.SlantForward, board.DirRight, board.DirUp},
		{board.SlantForward, board.DirUp, board.DirRight},
		{board.SlantForward, board.DirLeft, board.DirDown},
		{board.SlantForward, board.DirDown, board.DirLeft},
	}

	for _, tt := range tests {
		if got := tt.slant.Deflect(tt.in); got != tt.want {
			t.Errorf("%s deflect %s = %s, want %s", tt.slant, tt.in, got, tt.want)
		}
	}
}

func TestRefractionCycleStops(t *testing.T) {
	// Five refractors forming a closed clockwise circuit. A red token
	// dropped into the circuit at (3,2) loops once and must stop where the
	// (position, direction) pair first repeats.
	face := board.Face{
		Refractors: []board.Refractor{
			{Pos: board.C(3, 2), Slant: board.SlantBack, Color: board.ColorYellow},    // entry, down -> right
			{Pos: board.C(5, 2), Slant: board.SlantBack, Color: board.ColorYellow},    // right -> down
			{Pos: board.C(5, 5), Slant: board.SlantForward, Color: board.ColorYellow}, // down -> left
			{Pos: board.C(1, 5), Slant: board.SlantBack, Color: board.ColorYellow},    // left -> up
			{Pos: board.C(1, 2), Slant: board.SlantForward, Color: board.ColorYellow}, // up -> right
		},
	}
	b := buildBoard(t, face)
	tokens := []board.Token{{Color: board.ColorRed, Pos: board.C(3, 0)}}

	mv, err := solver.Simulate(b, tokens, board.ColorRed, board.DirDown)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if !mv.Moved {
		t.Fatal("expected the token to move")
	}
	if mv.Final != board.C(3, 2) {
		t.Errorf("final = %v, want (3,2)", mv.Final)
	}
	want := []solver.Segment{
		{From: board.C(3, 0), Dir: board.DirDown, To: board.C(3, 2)},
		{From: board.C(3, 2), Dir: board.DirRight, To: board.C(5, 2)},
		{From: board.C(5, 2), Dir: board.DirDown, To: board.C(5, 5)},
		{From: board.C(5, 5), Dir: board.DirLeft, To: board.C(1, 5)},
		{From: board.C(1, 5), Dir: board.DirUp, To: board.C(1, 2)},
		{From: board.C(1, 2), Dir: board.DirRight, To: board.C(3, 2)},
	}
	if len(mv.Segments) != len(want) {
		t.Fatalf("expected %d segments, got %d: %+v", len(want), len(mv.Segments), mv.Segments)
	}
	for i, seg := range mv.Segments {
		if seg != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, seg, want[i])
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	face := board.Face{
		Refractors: []board.Refractor{{Pos: board.C(3, 3), Slant: board.SlantBack, Color: board.ColorYellow}},
		Walls:      []board.WallSpec{{Pos: board.C(3, 6), Sides: []board.Side{board.SideBottom}}},
	}
	b := buildBoard(t, face)
	tokens := []board.Token{
		{Color: board.ColorRed, Pos: board.C(0, 3)},
		{Color: board.ColorGreen, Pos: board.C(9, 3)},
	}

	first, err := solver.Simulate(b, tokens, board.ColorRed, board.DirRight)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := solver.Simulate(b, tokens, board.ColorRed, board.DirRight)
		if err != nil {
			t.Fatalf("Simulate() failed: %v", err)
		}
		if again.Final != first.Final || len(again.Segments) != len(first.Segments) {
			t.Fatalf("run %d diverged: %+v vs %+v", i, again, first)
		}
		for j := range again.Segments {
			if again.Segments[j] != first.Segments[j] {
				t.Fatalf("run %d segment %d diverged", i, j)
			}
		}
	}
}
