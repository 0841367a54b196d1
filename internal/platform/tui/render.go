package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]lipgloss.Color{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
	core.ColorDarkGray:      lipgloss.Color("238"),
	core.ColorBlack:         lipgloss.Color("16"),
	core.ColorPink:          lipgloss.Color("218"),
}

// Renderer converts Screen buffers to styled strings.
// Styles are built once per foreground/background pair.
type Renderer struct {
	styles *intmap.Map[uint16, lipgloss.Style]
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: intmap.New[uint16, lipgloss.Style](32)}
}

func styleKey(fg, bg core.Color) uint16 {
	return uint16(fg)<<8 | uint16(bg)
}

// style returns the cached style for a color pair.
func (r *Renderer) style(fg, bg core.Color) lipgloss.Style {
	k := styleKey(fg, bg)
	if s, ok := r.styles.Get(k); ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c, ok := colorCodes[fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := colorCodes[bg]; ok {
		s = s.Background(c)
	}
	r.styles.Put(k, s)
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != first.Fg || cell.Bg != first.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if first.Fg == core.ColorDefault && first.Bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(first.Fg, first.Bg).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen converts a Screen buffer to a styled string with a fresh
// style cache.
func RenderScreen(s *core.Screen) string {
	return NewRenderer().Render(s)
}
