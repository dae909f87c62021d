// Package config provides YAML-based configuration for the solver limits
// and the default game setup (quadrant assignment and token layout).
package config

import (
	"fmt"

	"github.com/vovakirdan/prismslide/internal/board"
)

// Config is the top-level prismslide configuration.
type Config struct {
	Solver SolverConfig `yaml:"solver"`
	Game   GameConfig   `yaml:"game"`
}

// SolverConfig bounds the search engine.
type SolverConfig struct {
	MaxStates int `yaml:"max_states"` // Ceiling on dequeued joint states
}

// GameConfig describes the board arrangement and token layout.
type GameConfig struct {
	Quadrants []PlacementConfig `yaml:"quadrants"` // Fixed order: TL, TR, BL, BR
	Tokens    []TokenConfig     `yaml:"tokens"`
}

// PlacementConfig selects a module face for one quadrant.
type PlacementConfig struct {
	Module string `yaml:"module"`
	Face   int    `yaml:"face"`
}

// TokenConfig is one token's color and starting cell.
type TokenConfig struct {
	Color string `yaml:"color"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
}

// BoardConfig converts the quadrant list into a board configuration.
func (g GameConfig) BoardConfig() (board.Config, error) {
	if len(g.Quadrants) != int(board.QuadrantCount) {
		return board.Config{}, fmt.Errorf("config: need %d quadrants, got %d", board.QuadrantCount, len(g.Quadrants))
	}
	var cfg board.Config
	for i, p := range g.Quadrants {
		cfg.Quadrants[i] = board.Placement{ModuleID: p.Module, Face: p.Face}
	}
	return cfg, nil
}

// TokenList converts the token list into board tokens.
func (g GameConfig) TokenList() ([]board.Token, error) {
	tokens := make([]board.Token, 0, len(g.Tokens))
	for _, tc := range g.Tokens {
		color, ok := board.ParseColor(tc.Color)
		if !ok || color == board.ColorAny {
			return nil, fmt.Errorf("config: token color %q is not a concrete color", tc.Color)
		}
		tokens = append(tokens, board.Token{Color: color, Pos: board.C(tc.X, tc.Y)})
	}
	return tokens, nil
}
