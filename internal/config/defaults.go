package config

import (
	_ "embed"
)

//go:embed defaults/prismslide.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Solver: SolverConfig{
			MaxStates: 2_000_000,
		},
		Game: GameConfig{
			Quadrants: []PlacementConfig{
				{Module: "m-red", Face: 0},
				{Module: "m-green", Face: 0},
				{Module: "m-blue", Face: 0},
				{Module: "m-yellow", Face: 0},
			},
			Tokens: []TokenConfig{
				{Color: "red", X: 0, Y: 0},
				{Color: "green", X: 15, Y: 0},
				{Color: "blue", X: 0, Y: 15},
				{Color: "yellow", X: 15, Y: 15},
			},
		},
	}
}
