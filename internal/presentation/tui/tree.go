// Package tui renders space trees for the terminal.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/aretw0/alcove/pkg/domain"
)

var (
	spaceStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#818cf8"))
	rootStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c084fc"))
	itemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// NewRenderer returns a tree renderer for the current terminal. Dumb
// terminals and pipes get the plain renderer so output stays greppable.
func NewRenderer() func(*domain.Space) string {
	if termenv.ColorProfile() == termenv.Ascii {
		return RenderPlain
	}
	return Render
}

// Render returns the styled indented tree for the given space and all of its
// descendants.
func Render(space *domain.Space) string {
	var b strings.Builder
	renderTree(&b, space, 0, true)
	return b.String()
}

// RenderPlain is Render without any styling applied.
func RenderPlain(space *domain.Space) string {
	var b strings.Builder
	renderTree(&b, space, 0, false)
	return b.String()
}

// renderTree walks the tree pre-order: the space line, its items, then each
// child one level deeper. Two spaces per level, matching the listing format
// of the CLI.
func renderTree(b *strings.Builder, space *domain.Space, indent int, styled bool) {
	padding := strings.Repeat("  ", indent)

	name := space.Name
	if styled {
		if space.Root {
			name = rootStyle.Render(name)
		} else {
			name = spaceStyle.Render(name)
		}
	}
	b.WriteString(padding)
	b.WriteString(name)
	b.WriteString("\n")

	for _, item := range space.Items {
		line := "- " + item.Name
		if styled {
			line = itemStyle.Render(line)
		}
		b.WriteString(padding)
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	for _, child := range space.Spaces {
		renderTree(b, child, indent+1, styled)
	}
}
