// Package render draws game boards for the terminal.
//
// Two styles are supported: a "fancy" box-drawing board styled with lipgloss
// and a plain "ascii" board for dumb terminals. [Renderer] is configured once
// and reused across boards.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"barragoon/internal/game"
)

// Theme holds the styles applied to board cells and labels.
type Theme struct {
	White     lipgloss.Style
	Brown     lipgloss.Style
	Barragoon lipgloss.Style
	Empty     lipgloss.Style
	Label     lipgloss.Style
	Border    lipgloss.Style
}

// DefaultTheme returns the colored theme used for fancy output.
func DefaultTheme() Theme {
	return Theme{
		White:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Brown:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("130")),
		Barragoon: lipgloss.NewStyle().Foreground(lipgloss.Color("36")),
		Empty:     lipgloss.NewStyle().Faint(true),
		Label:     lipgloss.NewStyle().Faint(true),
		Border:    lipgloss.NewStyle().Faint(true),
	}
}

// PlainTheme returns a theme with no styling at all.
func PlainTheme() Theme {
	return Theme{
		White:     lipgloss.NewStyle(),
		Brown:     lipgloss.NewStyle(),
		Barragoon: lipgloss.NewStyle(),
		Empty:     lipgloss.NewStyle(),
		Label:     lipgloss.NewStyle(),
		Border:    lipgloss.NewStyle(),
	}
}

// Renderer draws boards in a fixed style.
type Renderer struct {
	theme       Theme
	ascii       bool
	coordinates bool
}

// New returns a Renderer for the given style name ("fancy" or "ascii").
// Unknown styles fall back to ascii. Color only applies to fancy output.
func New(style string, color, coordinates bool) *Renderer {
	r := &Renderer{
		theme:       PlainTheme(),
		ascii:       style != "fancy",
		coordinates: coordinates,
	}
	if !r.ascii && color {
		r.theme = DefaultTheme()
	}
	return r
}

// Render draws the board with rank 9 at the top, files a through g left
// to right.
func (r *Renderer) Render(g *game.Game) string {
	if r.ascii {
		return r.renderASCII(g)
	}
	return r.renderFancy(g)
}

func (r *Renderer) renderASCII(g *game.Game) string {
	var b strings.Builder

	for rank := game.BoardHeight - 1; rank >= 0; rank-- {
		if r.coordinates {
			b.WriteByte(byte('1' + rank))
			b.WriteByte(' ')
		}
		for file := 0; file < game.BoardWidth; file++ {
			if file > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(cellChar(g.At(game.Coord(rank, file))))
		}
		b.WriteByte('\n')
	}
	if r.coordinates {
		b.WriteString("  a b c d e f g\n")
	}

	return b.String()
}

func (r *Renderer) renderFancy(g *game.Game) string {
	var b strings.Builder

	margin := ""
	if r.coordinates {
		margin = "  "
	}

	b.WriteString(margin)
	b.WriteString(r.borderRow("┌", "┬", "┐"))

	for rank := game.BoardHeight - 1; rank >= 0; rank-- {
		if r.coordinates {
			b.WriteString(r.theme.Label.Render(string(byte('1' + rank))))
			b.WriteByte(' ')
		}
		for file := 0; file < game.BoardWidth; file++ {
			b.WriteString(r.theme.Border.Render("│"))
			b.WriteString(r.cell(g.At(game.Coord(rank, file))))
		}
		b.WriteString(r.theme.Border.Render("│"))
		b.WriteByte('\n')

		b.WriteString(margin)
		if rank > 0 {
			b.WriteString(r.borderRow("├", "┼", "┤"))
		} else {
			b.WriteString(r.borderRow("└", "┴", "┘"))
		}
	}
	if r.coordinates {
		b.WriteString(r.theme.Label.Render("    a   b   c   d   e   f   g"))
		b.WriteByte('\n')
	}

	return b.String()
}

func (r *Renderer) borderRow(left, mid, right string) string {
	parts := make([]string, 0, game.BoardWidth+1)
	parts = append(parts, left)
	for file := 1; file < game.BoardWidth; file++ {
		parts = append(parts, mid)
	}
	parts = append(parts, right)
	return r.theme.Border.Render(strings.Join(parts, "───")) + "\n"
}

func (r *Renderer) cell(sq game.Square) string {
	text := " " + string(cellChar(sq)) + " "
	switch sq.Kind {
	case game.SquareTile:
		if sq.Tile.Player == game.White {
			return r.theme.White.Render(text)
		}
		return r.theme.Brown.Render(text)
	case game.SquareBarragoon:
		return r.theme.Barragoon.Render(text)
	default:
		return r.theme.Empty.Render(text)
	}
}

func cellChar(sq game.Square) byte {
	if sq.IsEmpty() {
		return '.'
	}
	return sq.FENChar()
}
