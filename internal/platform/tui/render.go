package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// paletteColors maps core.Color to ANSI color codes.
var paletteColors = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// styleKey identifies the style of a cell.
type styleKey struct {
	tinted bool
	tint   core.RGB
	color  core.Color
}

func keyOf(c core.Cell) styleKey {
	if c.Tinted {
		return styleKey{tinted: true, tint: c.Tint}
	}
	return styleKey{color: c.Color}
}

// HexColor formats an RGB tint as a lipgloss color.
func HexColor(c core.RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// styler builds and caches lipgloss styles for one render pass.
type styler struct {
	renderer *lipgloss.Renderer
	styles   map[styleKey]lipgloss.Style
}

func (s *styler) style(k styleKey) lipgloss.Style {
	if st, ok := s.styles[k]; ok {
		return st
	}
	st := s.renderer.NewStyle()
	switch {
	case k.tinted:
		st = st.Foreground(HexColor(k.tint))
	case k.color != core.ColorDefault:
		if code, ok := paletteColors[k.color]; ok {
			st = st.Foreground(lipgloss.Color(code)).Bold(true)
		}
	}
	s.styles[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
// A nil renderer uses the lipgloss default renderer.
func RenderScreen(renderer *lipgloss.Renderer, s *core.Screen) string {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	st := &styler{renderer: renderer, styles: make(map[styleKey]lipgloss.Style)}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := keyOf(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if keyOf(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(st.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
