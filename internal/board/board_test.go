package board

import (
	"errors"
	"testing"
)

func testCatalogue() []*Module {
	return []*Module{
		testModule("m-red", ColorRed, CornerBottomRight),
		testModule("m-green", ColorGreen, CornerBottomLeft),
		testModule("m-blue", ColorBlue, CornerTopLeft),
		testModule("m-yellow", ColorYellow, CornerTopRight),
	}
}

func testConfig() Config {
	return Config{Quadrants: [QuadrantCount]Placement{
		{ModuleID: "m-red"},
		{ModuleID: "m-green"},
		{ModuleID: "m-blue"},
		{ModuleID: "m-yellow"},
	}}
}

func mustBuild(t *testing.T) *Board {
	t.Helper()
	b, err := Build(testConfig(), testCatalogue())
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	return b
}

func TestBuildOuterBoundary(t *testing.T) {
	b := mustBuild(t)

	for i := 0; i < Size; i++ {
		if !b.HasWall(C(i, 0), SideTop) {
			t.Errorf("missing top boundary wall at (%d,0)", i)
		}
		if !b.HasWall(C(i, Size-1), SideBottom) {
			t.Errorf("missing bottom boundary wall at (%d,%d)", i, Size-1)
		}
		if !b.HasWall(C(0, i), SideLeft) {
			t.Errorf("missing left boundary wall at (0,%d)", i)
		}
		if !b.HasWall(C(Size-1, i), SideRight) {
			t.Errorf("missing right boundary wall at (%d,%d)", Size-1, i)
		}
	}
}

func TestBuildWallSymmetry(t *testing.T) {
	b := mustBuild(t)

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			c := C(x, y)
			for _, s := range AllSides() {
				dx, dy := s.Delta()
				n := C(x+dx, y+dy)
				if !b.InBounds(n) {
					continue
				}
				if b.HasWall(c, s) != b.HasWall(n, s.Opposite()) {
					t.Fatalf("asymmetric wall between %v (%s) and %v (%s)", c, s, n, s.Opposite())
				}
			}
		}
	}
}

func TestBuildDeadZoneSealed(t *testing.T) {
	b := mustBuild(t)

	for y := deadZoneMin; y <= deadZoneMax; y++ {
		for x := deadZoneMin; x <= deadZoneMax; x++ {
			c := C(x, y)
			cell := b.Cell(c)
			if cell.Walls != FullWallSet() {
				t.Errorf("dead zone cell %v not fully walled: %04b", c, cell.Walls)
			}
			if cell.Refractor != nil || cell.Goal != nil {
				t.Errorf("dead zone cell %v carries content", c)
			}
		}
	}

	// The ring outside the dead zone faces it with walls.
	if !b.HasWall(C(7, 6), SideBottom) {
		t.Error("cell above dead zone is not walled toward it")
	}
	if !b.HasWall(C(6, 7), SideRight) {
		t.Error("cell left of dead zone is not walled toward it")
	}
	if !b.HasWall(C(9, 8), SideLeft) {
		t.Error("cell right of dead zone is not walled toward it")
	}
	if !b.HasWall(C(8, 9), SideTop) {
		t.Error("cell below dead zone is not walled toward it")
	}
}

func TestInDeadZone(t *testing.T) {
	tests := []struct {
		c    Coord
		want bool
	}{
		{C(7, 7), true},
		{C(8, 8), true},
		{C(7, 8), true},
		{C(8, 7), true},
		{C(6, 7), false},
		{C(9, 8), false},
		{C(0, 0), false},
	}
	for _, tt := range tests {
		if got := InDeadZone(tt.c); got != tt.want {
			t.Errorf("InDeadZone(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestBuildUnknownModule(t *testing.T) {
	cfg := testConfig()
	cfg.Quadrants[2].ModuleID = "m-missing"

	_, err := Build(cfg, testCatalogue())
	var be *BuildError
	if !errors.As(err, &be) {
		t.Fatalf("Build() error = %v, want *BuildError", err)
	}
	if be.Code != ErrCodeUnknownModule {
		t.Errorf("error code = %s, want %s", be.Code, ErrCodeUnknownModule)
	}
}

func TestBuildUnknownFace(t *testing.T) {
	cfg := testConfig()
	cfg.Quadrants[0].Face = 5

	_, err := Build(cfg, testCatalogue())
	var be *BuildError
	if !errors.As(err, &be) {
		t.Fatalf("Build() error = %v, want *BuildError", err)
	}
	if be.Code != ErrCodeUnknownFace {
		t.Errorf("error code = %s, want %s", be.Code, ErrCodeUnknownFace)
	}
}

func TestBuildDuplicateColor(t *testing.T) {
	cat := testCatalogue()
	cat[1].Color = ColorRed // clash with m-red

	_, err := Build(testConfig(), cat)
	var be *BuildError
	if !errors.As(err, &be) {
		t.Fatalf("Build() error = %v, want *BuildError", err)
	}
	if be.Code != ErrCodeDuplicateColor {
		t.Errorf("error code = %s, want %s", be.Code, ErrCodeDuplicateColor)
	}
}

func TestBuildGoalIndex(t *testing.T) {
	b := mustBuild(t)

	goals := b.Goals()
	// Each quadrant module contributes two goals on face 0.
	if len(goals) != 8 {
		t.Fatalf("expected 8 goals, got %d", len(goals))
	}
	for _, g := range goals {
		cellGoal, ok := b.GoalAt(g.Pos)
		if !ok {
			t.Errorf("goal %q not found at its indexed position %v", g.ID, g.Pos)
			continue
		}
		if cellGoal.ID != g.ID {
			t.Errorf("goal at %v has id %q, index says %q", g.Pos, cellGoal.ID, g.ID)
		}
		if InDeadZone(g.Pos) {
			t.Errorf("goal %q indexed inside the dead zone", g.ID)
		}
	}
}

func TestBuildSeamWallsKept(t *testing.T) {
	// A module wall on the tile edge that faces a neighboring quadrant
	// must survive assembly and be mirrored across the seam.
	cat := testCatalogue()
	// m-red has gap corner bottom-right and goes to the top-left quadrant
	// unrotated. Author a wall on its right edge, facing the seam.
	cat[0].Faces[0].Walls = append(cat[0].Faces[0].Walls, WallSpec{Pos: C(7, 2), Sides: []Side{SideRight}})

	b, err := Build(testConfig(), cat)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if !b.HasWall(C(7, 2), SideRight) {
		t.Error("seam wall dropped during assembly")
	}
	if !b.HasWall(C(8, 2), SideLeft) {
		t.Error("seam wall not mirrored into the neighboring quadrant")
	}
}

func TestBoardSignatureStable(t *testing.T) {
	b := mustBuild(t)
	want := "m-red:0|m-green:0|m-blue:0|m-yellow:0"
	if got := b.Signature(); got != want {
		t.Errorf("Signature() = %q, want %q", got, want)
	}
}

func TestValidateTokens(t *testing.T) {
	b := mustBuild(t)

	valid := []Token{
		{Color: ColorRed, Pos: C(0, 0)},
		{Color: ColorGreen, Pos: C(15, 0)},
		{Color: ColorBlue, Pos: C(0, 15)},
		{Color: ColorYellow, Pos: C(15, 15)},
	}
	if err := ValidateTokens(b, valid); err != nil {
		t.Fatalf("ValidateTokens() on valid layout failed: %v", err)
	}

	tests := []struct {
		name   string
		tokens []Token
		code   string
	}{
		{"off board", []Token{{Color: ColorRed, Pos: C(-1, 3)}}, ErrCodeOutOfBounds},
		{"dead zone", []Token{{Color: ColorRed, Pos: C(8, 8)}}, ErrCodeInDeadZone},
		{"overlap", []Token{
			{Color: ColorRed, Pos: C(1, 1)},
			{Color: ColorGreen, Pos: C(1, 1)},
		}, ErrCodeOverlap},
		{"repeat color", []Token{
			{Color: ColorRed, Pos: C(1, 1)},
			{Color: ColorRed, Pos: C(2, 1)},
		}, ErrCodeRepeatColor},
		{"wildcard token", []Token{{Color: ColorAny, Pos: C(1, 1)}}, ErrCodeBadColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTokens(b, tt.tokens)
			var pe *PlacementError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *PlacementError, got %v", err)
			}
			if pe.Code != tt.code {
				t.Errorf("error code = %s, want %s", pe.Code, tt.code)
			}
		})
	}
}

func TestValidateTokensOnRefractor(t *testing.T) {
	b := mustBuild(t)

	// m-red's face 0 refractor sits at (4,2) in the unrotated top-left
	// quadrant, so it lands at (4,2) on the board.
	if b.Cell(C(4, 2)).Refractor == nil {
		t.Fatal("expected a refractor at (4,2) in the assembled board")
	}
	err := ValidateTokens(b, []Token{{Color: ColorRed, Pos: C(4, 2)}})
	var pe *PlacementError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PlacementError, got %v", err)
	}
	if pe.Code != ErrCodeOnRefractor {
		t.Errorf("error code = %s, want %s", pe.Code, ErrCodeOnRefractor)
	}
}
