// Package catalog loads authored module definitions from YAML and turns
// them into board modules. The catalogue carries only authored data; all
// assembly rules live in the board package.
package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/prismslide/internal/board"
)

// Validation error codes for authored catalogue data.
const (
	ErrCodeBadModule   = "BAD_MODULE"
	ErrCodeDupModule   = "DUP_MODULE"
	ErrCodeBadColor    = "BAD_COLOR"
	ErrCodeBadCorner   = "BAD_CORNER"
	ErrCodeBadFaces    = "BAD_FACES"
	ErrCodeBadCoord    = "BAD_COORD"
	ErrCodeBadSide     = "BAD_SIDE"
	ErrCodeBadSlant    = "BAD_SLANT"
	ErrCodeBadShape    = "BAD_SHAPE"
	ErrCodeDupGoal     = "DUP_GOAL"
	ErrCodeCellBusy    = "CELL_BUSY"
)

// ValidationError contains details about a catalogue validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// YAML document structure.

type fileCatalogue struct {
	Modules []moduleYAML `yaml:"modules"`
}

type moduleYAML struct {
	ID        string     `yaml:"id"`
	Color     string     `yaml:"color"`
	GapCorner string     `yaml:"gap_corner"`
	Faces     []faceYAML `yaml:"faces"`
}

type faceYAML struct {
	Walls      []wallYAML      `yaml:"walls"`
	Refractors []refractorYAML `yaml:"refractors"`
	Goals      []goalYAML      `yaml:"goals"`
}

type wallYAML struct {
	X     int      `yaml:"x"`
	Y     int      `yaml:"y"`
	Sides []string `yaml:"sides"`
}

type refractorYAML struct {
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Slant string `yaml:"slant"`
	Color string `yaml:"color"`
}

type goalYAML struct {
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Shape string `yaml:"shape"`
	Color string `yaml:"color"`
	ID    string `yaml:"id"`
}

// Parse decodes and validates a YAML catalogue.
func Parse(data []byte) ([]*board.Module, error) {
	var file fileCatalogue
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("catalog: yaml unmarshal: %w", err)
	}

	seenIDs := make(map[string]bool)
	seenGoals := make(map[string]string)

	modules := make([]*board.Module, 0, len(file.Modules))
	for _, my := range file.Modules {
		m, err := convertModule(my, seenGoals)
		if err != nil {
			return nil, err
		}
		if seenIDs[m.ID] {
			return nil, &ValidationError{
				Code:    ErrCodeDupModule,
				Message: fmt.Sprintf("module id %q appears twice", m.ID),
			}
		}
		seenIDs[m.ID] = true
		modules = append(modules, m)
	}
	return modules, nil
}

func convertModule(my moduleYAML, seenGoals map[string]string) (*board.Module, error) {
	if my.ID == "" {
		return nil, &ValidationError{Code: ErrCodeBadModule, Message: "module without an id"}
	}
	color, ok := board.ParseColor(my.Color)
	if !ok || color == board.ColorAny {
		return nil, &ValidationError{
			Code:    ErrCodeBadColor,
			Message: fmt.Sprintf("module %q: color %q is not a concrete color", my.ID, my.Color),
		}
	}
	corner, ok := board.ParseCorner(my.GapCorner)
	if !ok {
		return nil, &ValidationError{
			Code:    ErrCodeBadCorner,
			Message: fmt.Sprintf("module %q: unknown gap corner %q", my.ID, my.GapCorner),
		}
	}
	if len(my.Faces) != board.FaceCount {
		return nil, &ValidationError{
			Code:    ErrCodeBadFaces,
			Message: fmt.Sprintf("module %q: has %d faces, want %d", my.ID, len(my.Faces), board.FaceCount),
		}
	}

	m := &board.Module{ID: my.ID, Color: color, GapCorner: corner}
	for i, fy := range my.Faces {
		face, err := convertFace(my.ID, i, fy, seenGoals)
		if err != nil {
			return nil, err
		}
		m.Faces[i] = face
	}
	return m, nil
}

func convertFace(moduleID string, faceIdx int, fy faceYAML, seenGoals map[string]string) (board.Face, error) {
	where := fmt.Sprintf("module %q face %d", moduleID, faceIdx)
	var face board.Face

	for _, wy := range fy.Walls {
		pos, err := checkCoord(where, wy.X, wy.Y)
		if err != nil {
			return face, err
		}
		spec := board.WallSpec{Pos: pos}
		for _, sn := range wy.Sides {
			side, ok := board.ParseSide(sn)
			if !ok {
				return face, &ValidationError{
					Code:    ErrCodeBadSide,
					Message: fmt.Sprintf("%s: unknown wall side %q at %s", where, sn, pos),
				}
			}
			spec.Sides = append(spec.Sides, side)
		}
		face.Walls = append(face.Walls, spec)
	}

	occupied := make(map[board.Coord]bool)
	for _, ry := range fy.Refractors {
		pos, err := checkCoord(where, ry.X, ry.Y)
		if err != nil {
			return face, err
		}
		slant, ok := board.ParseSlant(ry.Slant)
		if !ok {
			return face, &ValidationError{
				Code:    ErrCodeBadSlant,
				Message: fmt.Sprintf("%s: unknown slant %q at %s", where, ry.Slant, pos),
			}
		}
		color, ok := board.ParseColor(ry.Color)
		if !ok || color == board.ColorAny {
			return face, &ValidationError{
				Code:    ErrCodeBadColor,
				Message: fmt.Sprintf("%s: refractor at %s has color %q", where, pos, ry.Color),
			}
		}
		if occupied[pos] {
			return face, &ValidationError{
				Code:    ErrCodeCellBusy,
				Message: fmt.Sprintf("%s: two features share cell %s", where, pos),
			}
		}
		occupied[pos] = true
		face.Refractors = append(face.Refractors, board.Refractor{Pos: pos, Slant: slant, Color: color})
	}

	for _, gy := range fy.Goals {
		pos, err := checkCoord(where, gy.X, gy.Y)
		if err != nil {
			return face, err
		}
		shape, ok := board.ParseShape(gy.Shape)
		if !ok {
			return face, &ValidationError{
				Code:    ErrCodeBadShape,
				Message: fmt.Sprintf("%s: unknown shape %q at %s", where, gy.Shape, pos),
			}
		}
		color, ok := board.ParseColor(gy.Color)
		if !ok {
			return face, &ValidationError{
				Code:    ErrCodeBadColor,
				Message: fmt.Sprintf("%s: goal at %s has color %q", where, pos, gy.Color),
			}
		}
		if gy.ID == "" {
			return face, &ValidationError{
				Code:    ErrCodeDupGoal,
				Message: fmt.Sprintf("%s: goal at %s has no id", where, pos),
			}
		}
		if prev, dup := seenGoals[gy.ID]; dup {
			return face, &ValidationError{
				Code:    ErrCodeDupGoal,
				Message: fmt.Sprintf("%s: goal id %q already used in %s", where, gy.ID, prev),
			}
		}
		seenGoals[gy.ID] = where
		if occupied[pos] {
			return face, &ValidationError{
				Code:    ErrCodeCellBusy,
				Message: fmt.Sprintf("%s: two features share cell %s", where, pos),
			}
		}
		occupied[pos] = true
		face.Goals = append(face.Goals, board.Goal{Pos: pos, Shape: shape, Color: color, ID: gy.ID})
	}

	return face, nil
}

func checkCoord(where string, x, y int) (board.Coord, error) {
	if x < 0 || x >= board.ModuleSize || y < 0 || y >= board.ModuleSize {
		return board.Coord{}, &ValidationError{
			Code:    ErrCodeBadCoord,
			Message: fmt.Sprintf("%s: coordinate (%d,%d) outside the %dx%d face", where, x, y, board.ModuleSize, board.ModuleSize),
		}
	}
	return board.C(x, y), nil
}

// StandardConfig assigns the first four catalogue modules to the quadrants
// in declaration order, all on face 0.
func StandardConfig(modules []*board.Module) (board.Config, error) {
	if len(modules) < int(board.QuadrantCount) {
		return board.Config{}, &ValidationError{
			Code:    ErrCodeBadModule,
			Message: fmt.Sprintf("need %d modules for a board, catalogue has %d", board.QuadrantCount, len(modules)),
		}
	}
	var cfg board.Config
	for i := range cfg.Quadrants {
		cfg.Quadrants[i] = board.Placement{ModuleID: modules[i].ID}
	}
	return cfg, nil
}
