package solver

import (
	"fmt"
	"sort"
	"time"

	"github.com/vovakirdan/prismslide/internal/board"
)

// DefaultMaxStates is the default ceiling on dequeued joint states before a
// search gives up. Generous for a 16x16 board with four tokens.
const DefaultMaxStates = 2_000_000

// MinWinActions is the smallest action count a solution may have. A win on
// the very first slide does not count; the rule is preserved from the game
// exactly as played.
const MinWinActions = 2

// Options tunes a search.
type Options struct {
	// MaxStates overrides DefaultMaxStates when positive.
	MaxStates int
}

// Action is one accepted move of a solution.
type Action struct {
	Color    board.Color
	Dir      board.Dir
	From     board.Coord
	To       board.Coord
	Segments []Segment
}

// String renders the action as "red right (0,0)->(4,0)".
func (a Action) String() string {
	return fmt.Sprintf("%s %s %s->%s", a.Color, a.Dir, a.From, a.To)
}

// Result is a successful search outcome. A zero-length Actions slice means
// the target token already sat on the goal cell.
type Result struct {
	Actions        []Action
	StatesExplored int
	Elapsed        time.Duration
}

// ActionCount returns the number of actions in the solution.
func (r *Result) ActionCount() int {
	return len(r.Actions)
}

// Reason classifies a search failure.
type Reason uint8

const (
	ReasonUnknownToken Reason = iota
	ReasonInvalidGoal
	ReasonExhausted
	ReasonNoPath
)

// String returns the string representation of a failure reason.
func (r Reason) String() string {
	switch r {
	case ReasonUnknownToken:
		return "unknown target token"
	case ReasonInvalidGoal:
		return "invalid goal cell"
	case ReasonExhausted:
		return "search space exhausted"
	case ReasonNoPath:
		return "no path found"
	default:
		return "unknown"
	}
}

// SearchError is a structured search failure. Partial diagnostics are
// attached even on failure.
type SearchError struct {
	Reason         Reason
	Message        string
	StatesExplored int
	Elapsed        time.Duration
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("solver: %s: %s", e.Reason, e.Message)
}

// maxTokens is the largest joint state the packed key supports.
const maxTokens = 8

// node is one BFS arena entry. Parent links reconstruct the move sequence;
// moves are re-simulated afterwards to recover their segments.
type node struct {
	positions [maxTokens]uint8
	parent    int32
	depth     uint16
	tokenIdx  int8
	dir       board.Dir
}

// stateKey packs the joint token positions into one integer, in ascending
// color order so the key is independent of the caller's token ordering.
func stateKey(positions *[maxTokens]uint8, order []int) uint64 {
	var key uint64
	for i, idx := range order {
		key |= uint64(positions[idx]) << (8 * i)
	}
	key |= uint64(len(order)) << 56
	return key
}

// Solve performs a breadth-first search for the shortest action sequence
// that relocates the target-colored token onto the goal cell. Token
// positions are copied; the caller's slice is never mutated.
//
// Failures are returned as *SearchError with a reason code. If the target
// token already occupies the goal, Solve returns a trivial zero-action
// result.
func Solve(b *board.Board, tokens []board.Token, target board.Color, goal board.Coord, opts Options) (*Result, error) {
	start := time.Now()

	targetIdx := -1
	for i, t := range tokens {
		if t.Color == target {
			targetIdx = i
		}
	}
	if targetIdx < 0 {
		return nil, &SearchError{
			Reason:  ReasonUnknownToken,
			Message: fmt.Sprintf("no %s token among the %d supplied", target, len(tokens)),
			Elapsed: time.Since(start),
		}
	}
	if !b.InBounds(goal) || board.InDeadZone(goal) {
		return nil, &SearchError{
			Reason:  ReasonInvalidGoal,
			Message: fmt.Sprintf("goal cell %s is off the board or inside the dead zone", goal),
			Elapsed: time.Since(start),
		}
	}
	if tokens[targetIdx].Pos == goal {
		return &Result{Elapsed: time.Since(start)}, nil
	}
	if len(tokens) > maxTokens {
		return nil, &SearchError{
			Reason:  ReasonUnknownToken,
			Message: fmt.Sprintf("at most %d tokens supported, got %d", maxTokens, len(tokens)),
			Elapsed: time.Since(start),
		}
	}

	maxStates := opts.MaxStates
	if maxStates <= 0 {
		maxStates = DefaultMaxStates
	}

	// Canonical ordering of tokens by color for state keys.
	order := make([]int, len(tokens))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return tokens[order[i]].Color < tokens[order[j]].Color
	})

	var root node
	root.parent = -1
	root.tokenIdx = -1
	for i, t := range tokens {
		root.positions[i] = uint8(cellIndex(t.Pos))
	}

	arena := make([]node, 1, 1024)
	arena[0] = root
	visited := map[uint64]struct{}{stateKey(&root.positions, order): {}}

	explored := 0
	goalIdx := uint8(cellIndex(goal))

	for head := 0; head < len(arena); head++ {
		if explored >= maxStates {
			return nil, &SearchError{
				Reason:         ReasonExhausted,
				Message:        fmt.Sprintf("gave up after %d states", explored),
				StatesExplored: explored,
				Elapsed:        time.Since(start),
			}
		}
		cur := arena[head]
		explored++

		var occ occupancy
		for i := range tokens {
			occ[cur.positions[i]] = true
		}

		for i := range tokens {
			from := coordOf(cur.positions[i])
			occ[cur.positions[i]] = false
			for _, dir := range board.AllDirs() {
				mv := slide(b, &occ, from, tokens[i].Color, dir)
				if !mv.Moved {
					continue
				}
				next := cur.positions
				next[i] = uint8(cellIndex(mv.Final))

				if i == targetIdx && next[i] == goalIdx {
					// A solution may not consist of a single action;
					// a first-slide landing is not even enqueued.
					if int(cur.depth)+1 < MinWinActions {
						continue
					}
					arena = append(arena, node{
						positions: next,
						parent:    int32(head),
						depth:     cur.depth + 1,
						tokenIdx:  int8(i),
						dir:       dir,
					})
					actions := reconstruct(b, tokens, arena, len(arena)-1)
					return &Result{
						Actions:        actions,
						StatesExplored: explored,
						Elapsed:        time.Since(start),
					}, nil
				}

				key := stateKey(&next, order)
				if _, seen := visited[key]; seen {
					continue
				}
				visited[key] = struct{}{}
				arena = append(arena, node{
					positions: next,
					parent:    int32(head),
					depth:     cur.depth + 1,
					tokenIdx:  int8(i),
					dir:       dir,
				})
			}
			occ[cur.positions[i]] = true
		}
	}

	return nil, &SearchError{
		Reason:         ReasonNoPath,
		Message:        fmt.Sprintf("explored all %d reachable states", explored),
		StatesExplored: explored,
		Elapsed:        time.Since(start),
	}
}

func coordOf(i uint8) board.Coord {
	return board.C(int(i)%board.Size, int(i)/board.Size)
}

// reconstruct walks parent links back to the root and re-simulates each
// move in order to recover its segments.
func reconstruct(b *board.Board, tokens []board.Token, arena []node, last int) []Action {
	var chain []int
	for i := last; arena[i].parent >= 0; i = int(arena[i].parent) {
		chain = append(chain, i)
	}

	state := make([]board.Token, len(tokens))
	copy(state, tokens)

	actions := make([]Action, 0, len(chain))
	for k := len(chain) - 1; k >= 0; k-- {
		n := arena[chain[k]]
		idx := int(n.tokenIdx)
		occ := makeOccupancy(state)
		occ[cellIndex(state[idx].Pos)] = false
		mv := slide(b, &occ, state[idx].Pos, state[idx].Color, n.dir)
		actions = append(actions, Action{
			Color:    state[idx].Color,
			Dir:      n.dir,
			From:     state[idx].Pos,
			To:       mv.Final,
			Segments: mv.Segments,
		})
		state[idx].Pos = mv.Final
	}
	return actions
}
