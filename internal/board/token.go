package board

import "fmt"

// Token is a movable colored marker occupying exactly one cell. Token
// positions are owned by the caller; the board never stores them.
type Token struct {
	Color Color
	Pos   Coord
}

// ValidateTokens checks a starting configuration against the board. A valid
// token sits on the board, outside the dead zone, off every refractor, on a
// cell no other token occupies, and carries a concrete color no other token
// carries. The first violation is returned as a *PlacementError.
func ValidateTokens(b *Board, tokens []Token) error {
	byPos := make(map[Coord]Color, len(tokens))
	byColor := make(map[Color]Coord, len(tokens))
	for _, t := range tokens {
		if t.Color == ColorAny || t.Color >= ColorCount {
			return &PlacementError{
				Code:    ErrCodeBadColor,
				Message: fmt.Sprintf("token color %s is not a concrete color", t.Color),
			}
		}
		if _, dup := byColor[t.Color]; dup {
			return &PlacementError{
				Code:    ErrCodeRepeatColor,
				Message: fmt.Sprintf("two tokens share color %s", t.Color),
			}
		}
		byColor[t.Color] = t.Pos

		if !b.InBounds(t.Pos) {
			return &PlacementError{
				Code:    ErrCodeOutOfBounds,
				Message: fmt.Sprintf("%s token at %s is off the board", t.Color, t.Pos),
			}
		}
		if InDeadZone(t.Pos) {
			return &PlacementError{
				Code:    ErrCodeInDeadZone,
				Message: fmt.Sprintf("%s token at %s is inside the dead zone", t.Color, t.Pos),
			}
		}
		if b.Cell(t.Pos).Refractor != nil {
			return &PlacementError{
				Code:    ErrCodeOnRefractor,
				Message: fmt.Sprintf("%s token at %s starts on a refractor", t.Color, t.Pos),
			}
		}
		if other, occupied := byPos[t.Pos]; occupied {
			return &PlacementError{
				Code:    ErrCodeOverlap,
				Message: fmt.Sprintf("%s and %s tokens both occupy %s", other, t.Color, t.Pos),
			}
		}
		byPos[t.Pos] = t.Color
	}
	return nil
}
