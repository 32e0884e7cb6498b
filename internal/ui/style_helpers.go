package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle renders text segments over one background colour. Every space
// between words is styled too, otherwise the reset codes between segments
// leave unpainted gaps in header bars.
type BgStyle struct {
	fill lipgloss.Style
}

// NewBgStyle returns a helper painting over bgColor.
func NewBgStyle(bgColor string) BgStyle {
	return BgStyle{fill: lipgloss.NewStyle().Background(lipgloss.Color(bgColor))}
}

// Render applies style word by word over the background.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	word := style.Inherit(b.fill)
	parts := strings.Split(text, " ")
	for i, p := range parts {
		if p != "" {
			parts[i] = word.Render(p)
		}
	}
	return strings.Join(parts, b.fill.Render(" "))
}

// Spaces returns n painted spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return b.fill.Render(strings.Repeat(" ", n))
}

// slider draws a track with a knob at v's position within [min, max].
func slider(v, min, max float64, width int, filled, empty lipgloss.Style) string {
	if width <= 1 {
		return ""
	}
	pos := 0
	if max > min {
		ratio := (v - min) / (max - min)
		switch {
		case ratio < 0 || math.IsNaN(ratio):
			ratio = 0
		case ratio > 1:
			ratio = 1
		}
		pos = int(ratio * float64(width-1))
	}
	return filled.Render(strings.Repeat("━", pos)+"●") + empty.Render(strings.Repeat("─", width-1-pos))
}
