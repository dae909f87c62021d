// Package solver computes slide-with-refraction moves and minimal-action
// solutions on an assembled board. Like the board package it is
// UI-agnostic and deterministic; all state lives in per-call values, so a
// single board can serve many concurrent searches.
package solver

import (
	"fmt"

	"github.com/vovakirdan/prismslide/internal/board"
)

// Segment is one straight stretch of a slide: the cell and direction it
// started from and the cell it ended on. A refraction closes the current
// segment and opens the next one.
type Segment struct {
	From board.Coord
	Dir  board.Dir
	To   board.Coord
}

// Move is the outcome of one slide request. A move with Moved == false
// produced zero displacement and must be rejected by callers; no-op moves
// are never counted as actions.
type Move struct {
	Moved    bool
	Final    board.Coord
	Segments []Segment
}

// occupancy tracks which cells hold a token during one simulation.
type occupancy [board.Size * board.Size]bool

func cellIndex(c board.Coord) int {
	return c.Y*board.Size + c.X
}

func makeOccupancy(tokens []board.Token) occupancy {
	var occ occupancy
	for _, t := range tokens {
		occ[cellIndex(t.Pos)] = true
	}
	return occ
}

// Simulate computes the full slide-and-refract trajectory for the token of
// the given color. The token slides until obstructed by the boundary, the
// dead zone, a wall, or another token; entering a refractor of a different
// color deflects it by 90 degrees and starts a new segment. Revisiting a
// (position, direction) pair within one move is an infinite refraction
// cycle and stops the slide at that cell.
func Simulate(b *board.Board, tokens []board.Token, color board.Color, dir board.Dir) (Move, error) {
	idx := -1
	for i, t := range tokens {
		if t.Color == color {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Move{}, fmt.Errorf("solver: no %s token on the board", color)
	}
	occ := makeOccupancy(tokens)
	occ[cellIndex(tokens[idx].Pos)] = false // the mover never blocks itself
	return slide(b, &occ, tokens[idx].Pos, color, dir), nil
}

// slide runs the simulation loop. occ must not contain the mover itself.
func slide(b *board.Board, occ *occupancy, start board.Coord, color board.Color, dir board.Dir) Move {
	// One bit per direction per cell, for cycle detection.
	var visited [board.Size * board.Size]uint8

	cur := start
	curDir := dir
	segFrom := start
	segDir := dir
	moved := false
	var segs []Segment

	visited[cellIndex(cur)] |= 1 << curDir

	for {
		if b.HasWall(cur, curDir.Side()) {
			break
		}
		next := cur.Step(curDir)
		if !b.InBounds(next) || board.InDeadZone(next) || occ[cellIndex(next)] {
			break
		}
		cur = next
		moved = true
		if visited[cellIndex(cur)]&(1<<curDir) != 0 {
			break
		}
		visited[cellIndex(cur)] |= 1 << curDir

		r := b.Cell(cur).Refractor
		if r == nil || r.Color == color {
			// Empty cell or a transparent same-color refractor: the
			// slide continues with no segment break.
			continue
		}
		deflected := r.Slant.Deflect(curDir)
		segs = append(segs, Segment{From: segFrom, Dir: segDir, To: cur})
		segFrom = cur
		segDir = deflected
		curDir = deflected
		if visited[cellIndex(cur)]&(1<<curDir) != 0 {
			break
		}
		visited[cellIndex(cur)] |= 1 << curDir
	}

	if !moved {
		return Move{Moved: false, Final: start}
	}
	// Close the in-flight segment. It is zero-length only when a
	// refraction landed on this cell and nothing could follow.
	segs = append(segs, Segment{From: segFrom, Dir: segDir, To: cur})
	return Move{Moved: true, Final: cur, Segments: segs}
}
