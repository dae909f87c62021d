package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/prismslide/internal/board"
)

// colorStyles maps token colors to lipgloss styles.
var colorStyles = map[board.Color]lipgloss.Style{
	board.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	board.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	board.ColorBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	board.ColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	board.ColorAny:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

var (
	wallStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	gridStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	deadZoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("57")).Bold(true)
	goalMarkStyle = lipgloss.NewStyle().Background(lipgloss.Color("236"))
)

// shapeRunes maps goal shapes to their printed symbols.
var shapeRunes = map[board.Shape]rune{
	board.ShapeCircle:   '○',
	board.ShapeTriangle: '△',
	board.ShapeSquare:   '□',
	board.ShapeHexagon:  '⬡',
	board.ShapeSpiral:   '✹',
}

// tokenRune is the printed symbol for a sliding token.
const tokenRune = '●'

// RenderBoard draws the full grid with walls, refractors, goals and tokens.
// The selected token (by index into tokens, -1 for none) is highlighted, as
// is the currently targeted goal cell.
func RenderBoard(b *board.Board, tokens []board.Token, selected int, target board.Coord) string {
	var sb strings.Builder

	occupant := make(map[board.Coord]int, len(tokens))
	for i, t := range tokens {
		occupant[t.Pos] = i
	}

	for y := 0; y < board.Size; y++ {
		sb.WriteString(renderWallRow(b, y))
		sb.WriteByte('\n')
		sb.WriteString(renderCellRow(b, y, tokens, occupant, selected, target))
		sb.WriteByte('\n')
	}
	sb.WriteString(renderWallRow(b, board.Size))

	return sb.String()
}

// renderWallRow draws the horizontal wall line above row y. Row board.Size
// is the bottom border.
func renderWallRow(b *board.Board, y int) string {
	var sb strings.Builder
	for x := 0; x < board.Size; x++ {
		sb.WriteString(gridStyle.Render("·"))

		walled := false
		if y < board.Size {
			walled = b.HasWall(board.C(x, y), board.SideTop)
		} else {
			walled = b.HasWall(board.C(x, y-1), board.SideBottom)
		}
		if walled {
			sb.WriteString(wallStyle.Render("──"))
		} else {
			sb.WriteString("  ")
		}
	}
	sb.WriteString(gridStyle.Render("·"))
	return sb.String()
}

// renderCellRow draws the content line of row y with its vertical walls.
func renderCellRow(b *board.Board, y int, tokens []board.Token, occupant map[board.Coord]int, selected int, target board.Coord) string {
	var sb strings.Builder
	for x := 0; x < board.Size; x++ {
		c := board.C(x, y)
		if b.HasWall(c, board.SideLeft) {
			sb.WriteString(wallStyle.Render("│"))
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteString(renderCell(b, c, tokens, occupant, selected, target))
	}
	if b.HasWall(board.C(board.Size-1, y), board.SideRight) {
		sb.WriteString(wallStyle.Render("│"))
	}
	return sb.String()
}

// renderCell draws the two-column content of a single cell.
func renderCell(b *board.Board, c board.Coord, tokens []board.Token, occupant map[board.Coord]int, selected int, target board.Coord) string {
	if idx, ok := occupant[c]; ok {
		style := colorStyles[tokens[idx].Color]
		body := string(tokenRune) + " "
		if idx == selected {
			return selectedStyle.Inherit(style).Render(body)
		}
		return style.Render(body)
	}

	if board.InDeadZone(c) {
		return deadZoneStyle.Render("░░")
	}

	cell := b.Cell(c)
	if cell.Refractor != nil {
		return colorStyles[cell.Refractor.Color].Render(cell.Refractor.Slant.String() + " ")
	}
	if cell.Goal != nil {
		style := colorStyles[cell.Goal.Color]
		body := string(shapeRunes[cell.Goal.Shape]) + " "
		if c == target {
			return goalMarkStyle.Inherit(style).Render(body)
		}
		return style.Render(body)
	}

	return "  "
}
