package catalog

import (
	"errors"
	"testing"

	"github.com/vovakirdan/prismslide/internal/board"
)

func TestDefaultCatalogueParses(t *testing.T) {
	modules, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	if len(modules) != 4 {
		t.Fatalf("expected 4 modules, got %d", len(modules))
	}

	colors := make(map[board.Color]bool)
	for _, m := range modules {
		colors[m.Color] = true
		for f := 0; f < board.FaceCount; f++ {
			if _, err := m.Materialize(f); err != nil {
				t.Errorf("module %q face %d does not materialize: %v", m.ID, f, err)
			}
		}
	}
	if len(colors) != 4 {
		t.Errorf("expected 4 distinct module colors, got %d", len(colors))
	}
}

func TestDefaultCatalogueBuildsBoard(t *testing.T) {
	modules, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	cfg, err := StandardConfig(modules)
	if err != nil {
		t.Fatalf("StandardConfig() failed: %v", err)
	}
	b, err := board.Build(cfg, modules)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if len(b.Goals()) == 0 {
		t.Error("default board has no goals")
	}

	// Wall symmetry must hold across the assembled default board.
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			c := board.C(x, y)
			for _, s := range board.AllSides() {
				dx, dy := s.Delta()
				n := board.C(x+dx, y+dy)
				if !b.InBounds(n) {
					continue
				}
				if b.HasWall(c, s) != b.HasWall(n, s.Opposite()) {
					t.Fatalf("asymmetric wall between %v and %v", c, n)
				}
			}
		}
	}

	// Default token corners must be playable.
	tokens := []board.Token{
		{Color: board.ColorRed, Pos: board.C(0, 0)},
		{Color: board.ColorGreen, Pos: board.C(15, 0)},
		{Color: board.ColorBlue, Pos: board.C(0, 15)},
		{Color: board.ColorYellow, Pos: board.C(15, 15)},
	}
	if err := board.ValidateTokens(b, tokens); err != nil {
		t.Errorf("default corner tokens rejected: %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code string
	}{
		{
			name: "missing id",
			yaml: "modules:\n  - color: red\n    gap_corner: bottom_right\n    faces: [{}, {}]\n",
			code: ErrCodeBadModule,
		},
		{
			name: "duplicate id",
			yaml: "modules:\n" +
				"  - {id: m, color: red, gap_corner: bottom_right, faces: [{}, {}]}\n" +
				"  - {id: m, color: blue, gap_corner: bottom_right, faces: [{}, {}]}\n",
			code: ErrCodeDupModule,
		},
		{
			name: "wildcard module color",
			yaml: "modules:\n  - {id: m, color: wildcard, gap_corner: bottom_right, faces: [{}, {}]}\n",
			code: ErrCodeBadColor,
		},
		{
			name: "bad corner",
			yaml: "modules:\n  - {id: m, color: red, gap_corner: middle, faces: [{}, {}]}\n",
			code: ErrCodeBadCorner,
		},
		{
			name: "wrong face count",
			yaml: "modules:\n  - {id: m, color: red, gap_corner: bottom_right, faces: [{}]}\n",
			code: ErrCodeBadFaces,
		},
		{
			name: "coordinate out of range",
			yaml: "modules:\n  - id: m\n    color: red\n    gap_corner: bottom_right\n    faces:\n" +
				"      - walls: [{x: 8, y: 0, sides: [top]}]\n      - {}\n",
			code: ErrCodeBadCoord,
		},
		{
			name: "bad side",
			yaml: "modules:\n  - id: m\n    color: red\n    gap_corner: bottom_right\n    faces:\n" +
				"      - walls: [{x: 1, y: 0, sides: [diagonal]}]\n      - {}\n",
			code: ErrCodeBadSide,
		},
		{
			name: "bad slant",
			yaml: "modules:\n  - id: m\n    color: red\n    gap_corner: bottom_right\n    faces:\n" +
				"      - refractors: [{x: 1, y: 1, slant: x, color: red}]\n      - {}\n",
			code: ErrCodeBadSlant,
		},
		{
			name: "goal id reused",
			yaml: "modules:\n  - id: m\n    color: red\n    gap_corner: bottom_right\n    faces:\n" +
				"      - goals:\n" +
				"          - {x: 1, y: 1, shape: circle, color: red, id: g}\n" +
				"          - {x: 2, y: 2, shape: square, color: blue, id: g}\n" +
				"      - {}\n",
			code: ErrCodeDupGoal,
		},
		{
			name: "refractor and goal stacked",
			yaml: "modules:\n  - id: m\n    color: red\n    gap_corner: bottom_right\n    faces:\n" +
				"      - refractors: [{x: 1, y: 1, slant: /, color: red}]\n" +
				"        goals: [{x: 1, y: 1, shape: circle, color: red, id: g}]\n" +
				"      - {}\n",
			code: ErrCodeCellBusy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if ve.Code != tt.code {
				t.Errorf("error code = %s, want %s", ve.Code, tt.code)
			}
		})
	}
}

func TestStandardConfigNeedsFourModules(t *testing.T) {
	modules, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	if _, err := StandardConfig(modules[:2]); err == nil {
		t.Error("expected an error for a short catalogue")
	}
}
